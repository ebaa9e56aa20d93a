package generator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// content is the in-memory snapshot of one discipline's library, loaded
// once per run. All selection filtering happens against this snapshot;
// only usage-counter updates go back to the repository during a run.
type content struct {
	steps        []repository.TemplateStep
	categories   []repository.Category
	categoryByID map[uuid.UUID]repository.Category
	scripts      []repository.Script
	quotes       []repository.Quote
}

func (g *Generator) loadContent(ctx context.Context, d repository.Discipline) (*content, error) {
	steps, err := g.repo.ListActiveTemplateSteps(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to load template steps: %w", err)
	}
	categories, err := g.repo.ListActiveCategories(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	scripts, err := g.repo.ListActiveScripts(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to load scripts: %w", err)
	}
	quotes, err := g.repo.ListActiveQuotes(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	byID := make(map[uuid.UUID]repository.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &content{
		steps:        steps,
		categories:   categories,
		categoryByID: byID,
		scripts:      scripts,
		quotes:       quotes,
	}, nil
}

func (c *content) category(id uuid.UUID) (repository.Category, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

// sessionBlock is one selected script in the session under construction,
// flagged when it arrived via a special insertion rather than the walk.
type sessionBlock struct {
	script  repository.Script
	special bool
}

func totalDuration(blocks []sessionBlock) float64 {
	var total float64
	for _, b := range blocks {
		total += b.script.DurationMinutes
	}
	return total
}

func sameOrder(a, b []sessionBlock) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].script.ID != b[i].script.ID {
			return false
		}
	}
	return true
}
