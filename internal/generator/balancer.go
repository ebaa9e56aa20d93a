package generator

import (
	"context"
	"log/slog"
	"sort"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// fillStopThresholdMinutes stops filler selection once the session is
// within this many minutes of the target.
const fillStopThresholdMinutes = 1.0

// balance brings the session duration inside the flexibility window:
// fill with short extra scripts when under target, trim optional blocks
// when over.
func (g *Generator) balance(ctx context.Context, rc *runContext, c *content, d repository.Discipline, goal repository.Goal, target, flexibility float64) func(blocks []sessionBlock) []sessionBlock {
	return func(blocks []sessionBlock) []sessionBlock {
		total := totalDuration(blocks)
		switch {
		case total < target-flexibility:
			return g.fill(ctx, rc, c, goal, blocks, target)
		case total > target+flexibility:
			return trim(blocks, d, target, flexibility)
		default:
			return blocks
		}
	}
}

// fill appends unused scripts shortest-first until the shortfall drops
// to the stop threshold or candidates run out. Special-role categories
// are never used as filler.
func (g *Generator) fill(ctx context.Context, rc *runContext, c *content, goal repository.Goal, blocks []sessionBlock, target float64) []sessionBlock {
	shortfall := target - totalDuration(blocks)

	var candidates []repository.Script
	for _, s := range c.scripts {
		if rc.scriptUsed(s.ID) || s.Category.Role.Special() {
			continue
		}
		if s.Goal != goal && s.Goal != repository.GoalAllround {
			continue
		}
		candidates = append(candidates, s)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DurationMinutes != candidates[j].DurationMinutes {
			return candidates[i].DurationMinutes < candidates[j].DurationMinutes
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})

	for _, s := range candidates {
		if shortfall <= fillStopThresholdMinutes {
			break
		}
		if s.DurationMinutes > shortfall {
			continue
		}
		g.commitScript(ctx, rc, s)
		blocks = append(blocks, sessionBlock{script: s})
		shortfall -= s.DurationMinutes
	}
	if shortfall > fillStopThresholdMinutes {
		slog.Debug("filler exhausted before reaching target", "remaining_shortfall", shortfall)
	}
	return blocks
}

// trim removes optional blocks until the session fits under the upper
// bound, then greedily re-adds removed optionals that still fit, and
// finally restores the canonical warmup-first/cooldown-last shape.
// Special insertions and warmup/cooldown-class blocks are essential and
// never removed.
func trim(blocks []sessionBlock, d repository.Discipline, target, flexibility float64) []sessionBlock {
	maxAllowed := target + flexibility

	var essential, optional []sessionBlock
	for _, b := range blocks {
		if b.special || b.script.Category.Role.Special() || isEssentialCategory(b.script.Category.Name) {
			essential = append(essential, b)
		} else {
			optional = append(optional, b)
		}
	}

	kept := essential
	total := totalDuration(essential)
	for _, b := range optional {
		if total+b.script.DurationMinutes <= maxAllowed {
			kept = append(kept, b)
			total += b.script.DurationMinutes
		}
	}

	if len(kept) < len(blocks) {
		slog.Debug("trimmed session to fit target",
			"removed", len(blocks)-len(kept), "total_minutes", total)
	}
	return strategyFor(d).Canonical(kept)
}
