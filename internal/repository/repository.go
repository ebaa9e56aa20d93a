package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// ContentRepository is the read side of the content library plus the
// usage-counter writes the generator performs on every selection.
type ContentRepository interface {
	ListActiveTemplateSteps(ctx context.Context, d Discipline) ([]TemplateStep, error)
	ListActiveCategories(ctx context.Context, d Discipline) ([]Category, error)
	// ListActiveScripts returns active scripts of active categories,
	// with Category populated.
	ListActiveScripts(ctx context.Context, d Discipline) ([]Script, error)
	ListActiveQuotes(ctx context.Context, d Discipline) ([]Quote, error)
	MarkScriptSelected(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkQuoteUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type SessionScriptInput struct {
	ScriptID           uuid.UUID
	SequenceOrder      int
	IsSpecialInsertion bool
}

type CreateSessionInput struct {
	Discipline      Discipline
	Goal            Goal
	Title           string
	TargetDuration  float64
	TimeFlexibility float64
	TotalDuration   float64
	CompiledScript  string
	Additions       AdditionsSummary
	Warnings        GenerationWarnings
	CreatedAt       time.Time
	Scripts         []SessionScriptInput
}

type SessionFilter struct {
	Discipline Discipline
	Goal       Goal
	IsUsed     *bool
	Limit      int
}

type UpdateSessionUsageInput struct {
	SessionID uuid.UUID
	IsUsed    *bool
	Notes     *string
}

type SessionRepository interface {
	// CreateSession persists the session and its ordered script rows in
	// one transaction.
	CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, filter SessionFilter) ([]Session, error)
	ListSessionScripts(ctx context.Context, sessionID uuid.UUID) ([]SessionScript, error)
	UpdateSessionUsage(ctx context.Context, input UpdateSessionUsageInput) error
}

// AdminRepository is the write side used by the seed loader; the
// generator never touches it.
type AdminRepository interface {
	UpsertCategory(ctx context.Context, input UpsertCategoryInput) (*Category, error)
	UpsertScript(ctx context.Context, input UpsertScriptInput) (*Script, error)
	UpsertTemplateStep(ctx context.Context, input UpsertTemplateStepInput) (*TemplateStep, error)
	UpsertQuote(ctx context.Context, input UpsertQuoteInput) (*Quote, error)
}

type UpsertCategoryInput struct {
	Name            string
	DisplayName     string
	Discipline      Discipline
	Role            CategoryRole
	DifficultyLevel int
	Active          bool
}

type UpsertScriptInput struct {
	Title           string
	Discipline      Discipline
	CategoryID      uuid.UUID
	Goal            Goal
	Body            string
	DurationMinutes float64
	Active          bool
}

type UpsertTemplateStepInput struct {
	Discipline             Discipline
	SequenceOrder          int
	PrimaryCategoryID      uuid.UUID
	AlternativeCategoryIDs []uuid.UUID
	Required               bool
	Active                 bool
	Insertion              InsertionKind
	TransitionType         TransitionType
}

type UpsertQuoteInput struct {
	Discipline       Discipline
	Text             string
	TargetCategoryID *uuid.UUID
	Active           bool
}

type Repository interface {
	ContentRepository
	SessionRepository
	AdminRepository
}
