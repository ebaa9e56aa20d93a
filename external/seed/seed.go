// Package seed loads authored content fixtures from YAML files into the
// database through the admin repository. Fixtures reference categories
// by discipline and name so they can be re-applied idempotently.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

type Fixture struct {
	Categories    []CategoryFixture     `yaml:"categories"`
	Scripts       []ScriptFixture       `yaml:"scripts"`
	TemplateSteps []TemplateStepFixture `yaml:"template_steps"`
	Quotes        []QuoteFixture        `yaml:"quotes"`
}

type CategoryFixture struct {
	Name            string `yaml:"name"`
	DisplayName     string `yaml:"display_name"`
	Discipline      string `yaml:"discipline"`
	Role            string `yaml:"role"`
	DifficultyLevel int    `yaml:"difficulty_level"`
}

type ScriptFixture struct {
	Title           string  `yaml:"title"`
	Discipline      string  `yaml:"discipline"`
	Category        string  `yaml:"category"`
	Goal            string  `yaml:"goal"`
	Body            string  `yaml:"body"`
	DurationMinutes float64 `yaml:"duration_minutes"`
}

type TemplateStepFixture struct {
	Discipline    string   `yaml:"discipline"`
	SequenceOrder int      `yaml:"sequence_order"`
	Category      string   `yaml:"category"`
	Alternatives  []string `yaml:"alternatives"`
	Required      *bool    `yaml:"required"`
	Insertion     string   `yaml:"insertion"`
	Transition    string   `yaml:"transition"`
}

type QuoteFixture struct {
	Discipline     string `yaml:"discipline"`
	Text           string `yaml:"text"`
	TargetCategory string `yaml:"target_category"`
}

type Loader struct {
	repo repository.AdminRepository
}

func NewLoader(repo repository.AdminRepository) *Loader {
	return &Loader{repo: repo}
}

func (l *Loader) ApplyFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return l.Apply(ctx, fixture)
}

// Apply upserts all fixture content. Categories go first so scripts,
// steps and quotes can resolve them by name.
func (l *Loader) Apply(ctx context.Context, fixture Fixture) error {
	categoryIDs := make(map[string]uuid.UUID, len(fixture.Categories))

	for _, f := range fixture.Categories {
		role := repository.CategoryRole(f.Role)
		if f.Role == "" {
			role = repository.RoleNone
		}
		level := f.DifficultyLevel
		if level == 0 {
			level = repository.DifficultyBasic
		}
		cat, err := l.repo.UpsertCategory(ctx, repository.UpsertCategoryInput{
			Name:            f.Name,
			DisplayName:     f.DisplayName,
			Discipline:      repository.Discipline(f.Discipline),
			Role:            role,
			DifficultyLevel: level,
			Active:          true,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert category %q: %w", f.Name, err)
		}
		categoryIDs[categoryKey(f.Discipline, f.Name)] = cat.ID
	}

	resolve := func(discipline, name string) (uuid.UUID, error) {
		if id, ok := categoryIDs[categoryKey(discipline, name)]; ok {
			return id, nil
		}
		return uuid.Nil, fmt.Errorf("unknown category %q for discipline %q", name, discipline)
	}

	for _, f := range fixture.Scripts {
		catID, err := resolve(f.Discipline, f.Category)
		if err != nil {
			return err
		}
		goal := repository.Goal(f.Goal)
		if f.Goal == "" {
			goal = repository.GoalAllround
		}
		_, err = l.repo.UpsertScript(ctx, repository.UpsertScriptInput{
			Title:           CleanTitle(f.Title),
			Discipline:      repository.Discipline(f.Discipline),
			CategoryID:      catID,
			Goal:            goal,
			Body:            f.Body,
			DurationMinutes: f.DurationMinutes,
			Active:          true,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert script %q: %w", f.Title, err)
		}
	}

	for _, f := range fixture.TemplateSteps {
		catID, err := resolve(f.Discipline, f.Category)
		if err != nil {
			return err
		}
		var altIDs []uuid.UUID
		for _, alt := range f.Alternatives {
			altID, err := resolve(f.Discipline, alt)
			if err != nil {
				return err
			}
			altIDs = append(altIDs, altID)
		}
		required := true
		if f.Required != nil {
			required = *f.Required
		}
		insertion := repository.InsertionKind(f.Insertion)
		if f.Insertion == "" {
			insertion = repository.InsertionNone
		}
		_, err = l.repo.UpsertTemplateStep(ctx, repository.UpsertTemplateStepInput{
			Discipline:             repository.Discipline(f.Discipline),
			SequenceOrder:          f.SequenceOrder,
			PrimaryCategoryID:      catID,
			AlternativeCategoryIDs: altIDs,
			Required:               required,
			Active:                 true,
			Insertion:              insertion,
			TransitionType:         repository.TransitionType(f.Transition),
		})
		if err != nil {
			return fmt.Errorf("failed to upsert template step %d for %q: %w", f.SequenceOrder, f.Discipline, err)
		}
	}

	for _, f := range fixture.Quotes {
		var target *uuid.UUID
		if f.TargetCategory != "" {
			id, err := resolve(f.Discipline, f.TargetCategory)
			if err != nil {
				return err
			}
			target = &id
		}
		_, err := l.repo.UpsertQuote(ctx, repository.UpsertQuoteInput{
			Discipline:       repository.Discipline(f.Discipline),
			Text:             f.Text,
			TargetCategoryID: target,
			Active:           true,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert quote %q: %w", f.Text, err)
		}
	}

	slog.Info("fixture applied",
		"categories", len(fixture.Categories),
		"scripts", len(fixture.Scripts),
		"template_steps", len(fixture.TemplateSteps),
		"quotes", len(fixture.Quotes))
	return nil
}

func categoryKey(discipline, name string) string {
	return discipline + "/" + name
}

// Legacy authored titles start with a hardcoded round number; the
// compiler numbers rounds itself, so it gets stripped on import.
var roundPrefixPattern = regexp.MustCompile(`(?i)^\s*(?:Ronde|Round)\s+\d+\s*:\s*`)

func CleanTitle(title string) string {
	return strings.TrimSpace(roundPrefixPattern.ReplaceAllString(title, ""))
}
