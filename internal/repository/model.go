package repository

import (
	"time"

	"github.com/google/uuid"
)

type Discipline string

const (
	DisciplineKickboxing   Discipline = "kickboxing"
	DisciplinePowerYoga    Discipline = "power_yoga"
	DisciplineCalisthenics Discipline = "calisthenics"
)

func (d Discipline) Valid() bool {
	switch d {
	case DisciplineKickboxing, DisciplinePowerYoga, DisciplineCalisthenics:
		return true
	}
	return false
}

func (d Discipline) Label() string {
	switch d {
	case DisciplineKickboxing:
		return "Kickboxing Heavybag"
	case DisciplinePowerYoga:
		return "Power Yoga"
	case DisciplineCalisthenics:
		return "Calisthenics"
	}
	return string(d)
}

type Goal string

const (
	// GoalAllround is the generic goal: scripts tagged with it match any
	// requested goal during selection.
	GoalAllround    Goal = "allround"
	GoalEndurance   Goal = "endurance"
	GoalStrength    Goal = "strength"
	GoalFlexibility Goal = "flexibility"
	GoalTechnique   Goal = "technique"
)

func (g Goal) Valid() bool {
	switch g {
	case GoalAllround, GoalEndurance, GoalStrength, GoalFlexibility, GoalTechnique:
		return true
	}
	return false
}

func (g Goal) Label() string {
	switch g {
	case GoalAllround:
		return "All-round"
	case GoalEndurance:
		return "Endurance"
	case GoalStrength:
		return "Strength"
	case GoalFlexibility:
		return "Flexibility"
	case GoalTechnique:
		return "Technique"
	}
	return string(g)
}

// CategoryRole marks the special categories the generator discovers for
// automatic insertions. Set once at content-authoring time; everything
// else is RoleNone.
type CategoryRole string

const (
	RoleNone            CategoryRole = "none"
	RoleBonusRound      CategoryRole = "bonus_round"
	RoleChallenge       CategoryRole = "challenge"
	RoleTransitionS2S   CategoryRole = "transition_s2s"
	RoleTransitionS2Sit CategoryRole = "transition_s2sit"
)

func (r CategoryRole) Special() bool {
	return r != RoleNone && r != ""
}

// InsertionKind is a template step's directive for what to append
// automatically after the step's own block.
type InsertionKind string

const (
	InsertionNone       InsertionKind = "none"
	InsertionBonusRound InsertionKind = "bonus_round"
	InsertionChallenge  InsertionKind = "challenge"
	InsertionTransition InsertionKind = "transition"
)

type TransitionType string

const (
	TransitionStandingToStanding TransitionType = "standing_to_standing"
	TransitionStandingToSeated   TransitionType = "standing_to_seated"
)

// Difficulty levels carried on categories; level 3 and up counts as
// advanced for the calisthenics ordering pass.
const (
	DifficultyBasic        = 1
	DifficultyIntermediate = 2
	DifficultyAdvanced     = 3
)

type Category struct {
	ID              uuid.UUID
	Name            string
	DisplayName     string
	Discipline      Discipline
	Role            CategoryRole
	DifficultyLevel int
	Active          bool
	CreatedAt       time.Time
}

type Script struct {
	ID              uuid.UUID
	Title           string
	Discipline      Discipline
	CategoryID      uuid.UUID
	Category        Category
	Goal            Goal
	Body            string
	DurationMinutes float64
	TimesSelected   int
	LastSelected    *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TemplateStep struct {
	ID                     uuid.UUID
	Discipline             Discipline
	SequenceOrder          int
	PrimaryCategoryID      uuid.UUID
	AlternativeCategoryIDs []uuid.UUID
	Required               bool
	Active                 bool
	Insertion              InsertionKind
	TransitionType         TransitionType
}

// AllCategoryIDs returns the step's OR-set, primary first.
func (s TemplateStep) AllCategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1+len(s.AlternativeCategoryIDs))
	ids = append(ids, s.PrimaryCategoryID)
	ids = append(ids, s.AlternativeCategoryIDs...)
	return ids
}

type Quote struct {
	ID               uuid.UUID
	Discipline       Discipline
	Text             string
	TargetCategoryID *uuid.UUID
	TimesUsed        int
	LastUsed         *time.Time
	Active           bool
}

// ExerciseSpecific reports whether the quote is bound to one category;
// general quotes have no target category.
func (q Quote) ExerciseSpecific() bool {
	return q.TargetCategoryID != nil
}

// AdditionsSummary counts the automatic insertions applied during one
// generation run.
type AdditionsSummary struct {
	BonusRounds         int  `json:"bonus_rounds_added"`
	Challenges          int  `json:"max_challenges_added"`
	Transitions         int  `json:"transitions_added"`
	DifficultyReordered bool `json:"difficulty_reordered"`
}

type Substitution struct {
	SequenceOrder   int    `json:"sequence_order"`
	WantedCategory  string `json:"wanted_category"`
	SubstituteTitle string `json:"substitute_title"`
}

// GenerationWarnings accumulates non-fatal degradations; returned with a
// successful result, never thrown.
type GenerationWarnings struct {
	MissingCategories []string       `json:"missing_categories,omitempty"`
	Substitutions     []Substitution `json:"substitutions_made,omitempty"`
	GoalFallbacks     int            `json:"goal_fallbacks,omitempty"`
}

func (w GenerationWarnings) Empty() bool {
	return len(w.MissingCategories) == 0 && len(w.Substitutions) == 0 && w.GoalFallbacks == 0
}

type Session struct {
	ID              uuid.UUID
	Discipline      Discipline
	Goal            Goal
	Title           string
	TargetDuration  float64
	TimeFlexibility float64
	TotalDuration   float64
	CompiledScript  string
	Additions       AdditionsSummary
	Warnings        GenerationWarnings
	IsUsed          bool
	Notes           string
	CreatedAt       time.Time
}

type SessionScript struct {
	SessionID           uuid.UUID
	ScriptID            uuid.UUID
	SequenceOrder       int
	IsSpecialInsertion  bool
	Title               string
	CategoryDisplayName string
	DurationMinutes     float64
}
