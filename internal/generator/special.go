package generator

import (
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// roleForStep maps a step's insertion directive to the category role the
// resolver must find.
func roleForStep(step repository.TemplateStep) repository.CategoryRole {
	switch step.Insertion {
	case repository.InsertionBonusRound:
		return repository.RoleBonusRound
	case repository.InsertionChallenge:
		return repository.RoleChallenge
	case repository.InsertionTransition:
		switch step.TransitionType {
		case repository.TransitionStandingToSeated:
			return repository.RoleTransitionS2Sit
		case repository.TransitionStandingToStanding:
			return repository.RoleTransitionS2S
		}
	}
	return repository.RoleNone
}

// resolveSpecialCategory finds the active category carrying the step's
// directive role. Content admins could in principle assign a role twice;
// the lowest name wins so resolution stays deterministic. A missing role
// means no insertion happens, which is not an error.
func resolveSpecialCategory(c *content, step repository.TemplateStep) *repository.Category {
	role := roleForStep(step)
	if role == repository.RoleNone {
		return nil
	}
	var match *repository.Category
	for i := range c.categories {
		cat := &c.categories[i]
		if cat.Role != role {
			continue
		}
		if match == nil || cat.Name < match.Name {
			match = cat
		}
	}
	return match
}
