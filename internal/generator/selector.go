package generator

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// selectScript picks one unused script for a template step's OR-set.
// Categories are tried strictly left to right: the first one that yields
// a candidate wins and later alternatives are never scanned. Per
// category the goal-matched pool (requested goal or allround) is tried
// first; when it is empty the goal filter is dropped so structural
// requirements can still be met, which is counted as a goal fallback in
// the run's warnings.
func (g *Generator) selectScript(rc *runContext, c *content, categoryIDs []uuid.UUID, goal repository.Goal, ceiling float64) *repository.Script {
	for _, catID := range categoryIDs {
		if _, ok := c.category(catID); !ok {
			continue
		}
		pool := candidatePool(rc, c, catID, &goal, ceiling)
		if len(pool) == 0 {
			pool = candidatePool(rc, c, catID, nil, ceiling)
			if len(pool) == 0 {
				continue
			}
			rc.warnings.GoalFallbacks++
		}
		s := pickFreshest(rc, pool)
		return &s
	}
	return nil
}

// candidatePool filters the snapshot to unused scripts of one category,
// optionally goal-matched, within the duration ceiling.
func candidatePool(rc *runContext, c *content, categoryID uuid.UUID, goal *repository.Goal, ceiling float64) []repository.Script {
	var pool []repository.Script
	for _, s := range c.scripts {
		if s.CategoryID != categoryID {
			continue
		}
		if rc.scriptUsed(s.ID) {
			continue
		}
		if goal != nil && s.Goal != *goal && s.Goal != repository.GoalAllround {
			continue
		}
		if s.DurationMinutes > ceiling {
			continue
		}
		pool = append(pool, s)
	}
	return pool
}

// pickFreshest ranks by freshness, descending, and chooses uniformly at
// random among the top three. The bounded random choice trades perfect
// rotation for variety. Ties rank by ID so runs with a seeded source
// are reproducible.
func pickFreshest(rc *runContext, pool []repository.Script) repository.Script {
	sort.Slice(pool, func(i, j int) bool {
		si := freshnessScore(pool[i].LastSelected, rc.now)
		sj := freshnessScore(pool[j].LastSelected, rc.now)
		if si != sj {
			return si > sj
		}
		return pool[i].ID.String() < pool[j].ID.String()
	})
	top := pool
	if len(top) > 3 {
		top = top[:3]
	}
	return top[rc.rng.Intn(len(top))]
}

// commitScript records the selection: once in the run's used set and
// once in the repository's usage counters. A failed counter write is
// logged and does not abort the run.
func (g *Generator) commitScript(ctx context.Context, rc *runContext, s repository.Script) {
	rc.usedScripts[s.ID] = struct{}{}
	if err := g.repo.MarkScriptSelected(ctx, s.ID, rc.now); err != nil {
		slog.Warn("failed to record script selection", "error", err, "script_id", s.ID)
	}
}
