package generator

import (
	"math"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// fallbackStepEstimateMinutes stands in for a step or insertion whose
// pool is empty at planning time.
const fallbackStepEstimateMinutes = 5.0

// estimateRequiredMinutes sums the minimum time the mandatory template
// skeleton will consume: per required step the shortest currently
// eligible script across its OR-set, plus the shortest eligible special
// script for the step's insertion directive. This is a forward estimate,
// not a selection, so the run's used set does not apply. The result
// bounds how much of the duration budget optional steps may consume.
func estimateRequiredMinutes(c *content, goal repository.Goal) float64 {
	var estimate float64
	for _, step := range c.steps {
		if !step.Required {
			continue
		}
		estimate += shortestForStep(c, step, goal)
		if step.Insertion != repository.InsertionNone {
			estimate += shortestSpecial(c, step)
		}
	}
	return estimate
}

func shortestForStep(c *content, step repository.TemplateStep, goal repository.Goal) float64 {
	shortest := math.Inf(1)
	for _, s := range c.scripts {
		if !inORSet(step, s.CategoryID) {
			continue
		}
		if s.Goal != goal && s.Goal != repository.GoalAllround {
			continue
		}
		shortest = math.Min(shortest, s.DurationMinutes)
	}
	if math.IsInf(shortest, 1) {
		// Goal-specific content may be thin; the walk will widen the
		// goal filter, so do the same here.
		for _, s := range c.scripts {
			if inORSet(step, s.CategoryID) {
				shortest = math.Min(shortest, s.DurationMinutes)
			}
		}
	}
	if math.IsInf(shortest, 1) {
		return fallbackStepEstimateMinutes
	}
	return shortest
}

func shortestSpecial(c *content, step repository.TemplateStep) float64 {
	cat := resolveSpecialCategory(c, step)
	if cat == nil {
		return fallbackStepEstimateMinutes
	}
	shortest := math.Inf(1)
	for _, s := range c.scripts {
		if s.CategoryID == cat.ID {
			shortest = math.Min(shortest, s.DurationMinutes)
		}
	}
	if math.IsInf(shortest, 1) {
		return fallbackStepEstimateMinutes
	}
	return shortest
}

func inORSet(step repository.TemplateStep, categoryID uuid.UUID) bool {
	if step.PrimaryCategoryID == categoryID {
		return true
	}
	for _, alt := range step.AlternativeCategoryIDs {
		if alt == categoryID {
			return true
		}
	}
	return false
}
