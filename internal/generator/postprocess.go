package generator

import (
	"sort"
	"strings"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

var warmupNamePatterns = []string{"warmup", "warm-up", "connecting", "sun_greeting"}

var cooldownNamePatterns = []string{"cooldown", "cool-down", "stretch", "relax", "savasana", "mindfulness"}

func matchesAny(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func isWarmupCategory(name string) bool {
	return matchesAny(name, warmupNamePatterns)
}

func isCooldownCategory(name string) bool {
	return matchesAny(name, cooldownNamePatterns)
}

// isEssentialCategory marks blocks the balancer must never trim.
func isEssentialCategory(name string) bool {
	return isWarmupCategory(name) || isCooldownCategory(name)
}

// orderingStrategy is the per-discipline ordering pass applied after the
// walk and again after balancing. Order enforces safety/flow rules and
// must be idempotent; Canonical forces a warmup-first/cooldown-last
// shape after trimming.
type orderingStrategy interface {
	Order(blocks []sessionBlock) []sessionBlock
	Canonical(blocks []sessionBlock) []sessionBlock
}

func strategyFor(d repository.Discipline) orderingStrategy {
	if s, ok := orderingStrategies[d]; ok {
		return s
	}
	return identityOrdering{}
}

var orderingStrategies = map[repository.Discipline]orderingStrategy{
	repository.DisciplineKickboxing:   identityOrdering{},
	repository.DisciplinePowerYoga:    identityOrdering{},
	repository.DisciplineCalisthenics: calisthenicsOrdering{},
}

// identityOrdering is for disciplines whose template order is already
// the intended session order.
type identityOrdering struct{}

func (identityOrdering) Order(blocks []sessionBlock) []sessionBlock {
	return blocks
}

func (identityOrdering) Canonical(blocks []sessionBlock) []sessionBlock {
	return warmupFirstCooldownLast(blocks, nil)
}

// calisthenicsOrdering enforces difficulty progression for safety:
// warmup first, basic before advanced, cooldown-class blocks last.
// Challenge-role blocks keep their original relative position among the
// main blocks rather than being forced to the end; where the challenge
// goes is the template author's call.
type calisthenicsOrdering struct{}

func (calisthenicsOrdering) Order(blocks []sessionBlock) []sessionBlock {
	var warmup, basic, advanced, cooldown []sessionBlock
	type pinned struct {
		pos   int
		block sessionBlock
	}
	var pins []pinned

	for _, b := range blocks {
		name := b.script.Category.Name
		switch {
		case isWarmupCategory(name):
			warmup = append(warmup, b)
		case isCooldownCategory(name):
			cooldown = append(cooldown, b)
		case b.script.Category.Role == repository.RoleChallenge:
			pins = append(pins, pinned{pos: len(warmup) + len(basic) + len(advanced), block: b})
		case b.script.Category.DifficultyLevel >= repository.DifficultyAdvanced:
			advanced = append(advanced, b)
		default:
			basic = append(basic, b)
		}
	}

	ordered := make([]sessionBlock, 0, len(blocks))
	ordered = append(ordered, warmup...)
	ordered = append(ordered, basic...)
	ordered = append(ordered, advanced...)
	for _, p := range pins {
		at := min(p.pos, len(ordered))
		ordered = append(ordered[:at], append([]sessionBlock{p.block}, ordered[at:]...)...)
	}
	return append(ordered, cooldown...)
}

func (calisthenicsOrdering) Canonical(blocks []sessionBlock) []sessionBlock {
	return warmupFirstCooldownLast(blocks, func(main []sessionBlock) {
		sort.SliceStable(main, func(i, j int) bool {
			return main[i].script.Category.DifficultyLevel < main[j].script.Category.DifficultyLevel
		})
	})
}

// warmupFirstCooldownLast partitions into warmup, main and cooldown
// groups, preserving relative order inside each; mainSort, when given,
// reorders the middle group in place.
func warmupFirstCooldownLast(blocks []sessionBlock, mainSort func([]sessionBlock)) []sessionBlock {
	var warmup, main, cooldown []sessionBlock
	for _, b := range blocks {
		name := b.script.Category.Name
		switch {
		case isWarmupCategory(name):
			warmup = append(warmup, b)
		case isCooldownCategory(name):
			cooldown = append(cooldown, b)
		default:
			main = append(main, b)
		}
	}
	if mainSort != nil {
		mainSort(main)
	}
	out := make([]sessionBlock, 0, len(blocks))
	out = append(out, warmup...)
	out = append(out, main...)
	return append(out, cooldown...)
}
