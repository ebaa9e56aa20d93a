package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

const (
	MinTargetDuration     = 15.0
	MaxTargetDuration     = 120.0
	defaultTargetDuration = 60.0
)

// Generator builds complete timed workout sessions from the authored
// content library. Safe for concurrent use; all per-run state lives in
// a runContext.
type Generator struct {
	repo   repository.Repository
	now    func() time.Time
	newRNG func() *rand.Rand
}

type Option func(*Generator)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandSource overrides the random source factory, for tests.
func WithRandSource(newRNG func() *rand.Rand) Option {
	return func(g *Generator) { g.newRNG = newRNG }
}

func New(repo repository.Repository, opts ...Option) *Generator {
	g := &Generator{
		repo: repo,
		now:  time.Now,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type GenerateInput struct {
	Discipline     repository.Discipline `json:"discipline"`
	Goal           repository.Goal       `json:"goal"`
	TargetDuration float64               `json:"target_duration"`
}

type ResultScript struct {
	Title              string  `json:"title"`
	Category           string  `json:"script_category"`
	Duration           float64 `json:"duration"`
	IsSpecialInsertion bool    `json:"is_special_insertion"`
}

type Result struct {
	SessionID       uuid.UUID                     `json:"session_id"`
	Title           string                        `json:"title"`
	Discipline      repository.Discipline         `json:"discipline"`
	Goal            repository.Goal               `json:"goal"`
	TargetDuration  float64                       `json:"target_duration"`
	TimeFlexibility float64                       `json:"time_flexibility"`
	TotalDuration   float64                       `json:"total_duration"`
	TimeStatus      string                        `json:"time_status"`
	Scripts         []ResultScript                `json:"scripts"`
	CompiledScript  string                        `json:"compiled_script"`
	Additions       repository.AdditionsSummary   `json:"sport_specific_additions"`
	Warnings        repository.GenerationWarnings `json:"warnings"`
}

// timeFlexibility returns the allowed deviation from the target: short
// sessions get a tighter window than long ones.
func timeFlexibility(target float64) float64 {
	switch {
	case target <= 30:
		return 3
	case target <= 45:
		return 4
	default:
		return 5
	}
}

func (in *GenerateInput) normalize() error {
	if !in.Discipline.Valid() {
		return fmt.Errorf("%w: unknown discipline %q", ErrInvalidInput, in.Discipline)
	}
	if in.Goal == "" {
		in.Goal = repository.GoalAllround
	}
	if !in.Goal.Valid() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, in.Goal)
	}
	if in.TargetDuration == 0 {
		in.TargetDuration = defaultTargetDuration
	}
	if in.TargetDuration < MinTargetDuration || in.TargetDuration > MaxTargetDuration {
		return fmt.Errorf("%w: target duration %.0f outside %.0f-%.0f minutes",
			ErrInvalidInput, in.TargetDuration, MinTargetDuration, MaxTargetDuration)
	}
	return nil
}

// Generate runs one full generation: template walk, discipline
// ordering, duration balancing, script compilation and persistence.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	c, err := g.loadContent(ctx, input.Discipline)
	if err != nil {
		return nil, err
	}
	if len(c.steps) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoTemplate, input.Discipline)
	}

	flexibility := timeFlexibility(input.TargetDuration)
	rc := newRunContext(g.now(), g.newRNG())
	strat := strategyFor(input.Discipline)

	blocks := g.walkTemplate(ctx, rc, c, input.Goal, input.TargetDuration+flexibility)
	ordered := strat.Order(blocks)
	if !sameOrder(blocks, ordered) {
		rc.additions.DifficultyReordered = true
	}

	balance := g.balance(ctx, rc, c, input.Discipline, input.Goal, input.TargetDuration, flexibility)
	blocks = strat.Order(balance(ordered))
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoScripts, input.Discipline)
	}

	compiled := g.compile(ctx, rc, c, input.Discipline, blocks)
	total := totalDuration(blocks)
	title := fmt.Sprintf("%s - %s (%.0fmin) - %s",
		input.Discipline.Label(), input.Goal.Label(), input.TargetDuration,
		rc.now.Format("2006-01-02 15:04"))

	scriptInputs := make([]repository.SessionScriptInput, len(blocks))
	resultScripts := make([]ResultScript, len(blocks))
	for i, b := range blocks {
		scriptInputs[i] = repository.SessionScriptInput{
			ScriptID:           b.script.ID,
			SequenceOrder:      i + 1,
			IsSpecialInsertion: b.special,
		}
		resultScripts[i] = ResultScript{
			Title:              b.script.Title,
			Category:           b.script.Category.DisplayName,
			Duration:           b.script.DurationMinutes,
			IsSpecialInsertion: b.special,
		}
	}

	session, err := g.repo.CreateSession(ctx, repository.CreateSessionInput{
		Discipline:      input.Discipline,
		Goal:            input.Goal,
		Title:           title,
		TargetDuration:  input.TargetDuration,
		TimeFlexibility: flexibility,
		TotalDuration:   total,
		CompiledScript:  compiled,
		Additions:       rc.additions,
		Warnings:        rc.warnings,
		CreatedAt:       rc.now,
		Scripts:         scriptInputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	slog.Info("workout session generated",
		"session_id", session.ID,
		"discipline", input.Discipline,
		"goal", input.Goal,
		"target_minutes", input.TargetDuration,
		"total_minutes", total,
		"blocks", len(blocks))

	return &Result{
		SessionID:       session.ID,
		Title:           title,
		Discipline:      input.Discipline,
		Goal:            input.Goal,
		TargetDuration:  input.TargetDuration,
		TimeFlexibility: flexibility,
		TotalDuration:   total,
		TimeStatus:      timeStatus(total, input.TargetDuration, flexibility),
		Scripts:         resultScripts,
		CompiledScript:  compiled,
		Additions:       rc.additions,
		Warnings:        rc.warnings,
	}, nil
}

func timeStatus(total, target, flexibility float64) string {
	switch {
	case total < target-flexibility:
		return fmt.Sprintf("Short (%.1fmin, -%.1fmin from target)", total, target-total)
	case total > target+flexibility:
		return fmt.Sprintf("Long (%.1fmin, +%.1fmin over target)", total, total-target)
	default:
		return fmt.Sprintf("Perfect (%.1fmin within ±%.0fmin target)", total, flexibility)
	}
}
