package generator

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// minMeaningfulSectionMinutes is the floor below which an optional step
// is skipped outright; a shorter block is not a meaningful section.
const minMeaningfulSectionMinutes = 3.0

// walkTemplate visits the discipline's active template steps in sequence
// order, selecting one script per step and appending any configured
// special insertion immediately after it. Required steps are always
// attempted with the overall remaining time as ceiling; optional steps
// additionally compete for the optional budget left after the mandatory
// skeleton's estimate.
func (g *Generator) walkTemplate(ctx context.Context, rc *runContext, c *content, goal repository.Goal, maxAllowed float64) []sessionBlock {
	var blocks []sessionBlock
	var total float64
	optionalBudget := math.Max(0, maxAllowed-estimateRequiredMinutes(c, goal))

	for _, step := range c.steps {
		remaining := maxAllowed - total

		var selected *repository.Script
		if step.Required {
			selected = g.selectScript(rc, c, step.AllCategoryIDs(), goal, remaining)
			if selected == nil {
				selected = g.requiredFallback(rc, c, step, goal, remaining)
			}
		} else {
			available := math.Min(optionalBudget, remaining)
			if available < minMeaningfulSectionMinutes {
				slog.Debug("skipping optional step, no budget left",
					"sequence_order", step.SequenceOrder, "available_minutes", available)
				continue
			}
			selected = g.selectScript(rc, c, step.AllCategoryIDs(), goal, available)
			if selected != nil {
				optionalBudget -= selected.DurationMinutes
			}
		}
		if selected == nil {
			continue
		}

		g.commitScript(ctx, rc, *selected)
		blocks = append(blocks, sessionBlock{script: *selected})
		total += selected.DurationMinutes

		if step.Insertion == repository.InsertionNone {
			continue
		}
		if special := g.insertSpecial(ctx, rc, c, step, goal, maxAllowed-total); special != nil {
			blocks = append(blocks, sessionBlock{script: *special, special: true})
			total += special.DurationMinutes
		}
	}
	return blocks
}

// requiredFallback widens the search for an unfulfilled required step to
// any non-special category of the discipline. Special categories are
// reserved for the insertion mechanism and never substitute for
// ordinary content. The degradation is recorded for the caller.
func (g *Generator) requiredFallback(rc *runContext, c *content, step repository.TemplateStep, goal repository.Goal, remaining float64) *repository.Script {
	wanted := "unknown"
	if cat, ok := c.category(step.PrimaryCategoryID); ok {
		wanted = cat.Name
	}
	rc.warnings.MissingCategories = append(rc.warnings.MissingCategories, wanted)

	var pool []repository.Script
	for _, s := range c.scripts {
		if rc.scriptUsed(s.ID) {
			continue
		}
		if s.Category.Role.Special() {
			continue
		}
		if s.Goal != goal && s.Goal != repository.GoalAllround {
			continue
		}
		if s.DurationMinutes > remaining {
			continue
		}
		pool = append(pool, s)
	}
	if len(pool) == 0 {
		slog.Warn("required step unfulfilled, no fallback available",
			"sequence_order", step.SequenceOrder, "wanted_category", wanted)
		return nil
	}
	s := pickFreshest(rc, pool)
	rc.warnings.Substitutions = append(rc.warnings.Substitutions, repository.Substitution{
		SequenceOrder:   step.SequenceOrder,
		WantedCategory:  wanted,
		SubstituteTitle: s.Title,
	})
	return &s
}

// insertSpecial resolves the step's directive to a special category and
// selects one script from it, bounded only by overall remaining time.
// A missing category mapping is a silent no-op.
func (g *Generator) insertSpecial(ctx context.Context, rc *runContext, c *content, step repository.TemplateStep, goal repository.Goal, remaining float64) *repository.Script {
	cat := resolveSpecialCategory(c, step)
	if cat == nil {
		slog.Debug("no category configured for special insertion",
			"sequence_order", step.SequenceOrder, "insertion", step.Insertion)
		return nil
	}
	selected := g.selectScript(rc, c, []uuid.UUID{cat.ID}, goal, remaining)
	if selected == nil {
		return nil
	}
	g.commitScript(ctx, rc, *selected)
	switch step.Insertion {
	case repository.InsertionBonusRound:
		rc.additions.BonusRounds++
	case repository.InsertionChallenge:
		rc.additions.Challenges++
	case repository.InsertionTransition:
		rc.additions.Transitions++
	}
	return selected
}
