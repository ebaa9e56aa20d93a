package generator

import (
	"testing"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func blockTitles(blocks []sessionBlock) []string {
	titles := make([]string, len(blocks))
	for i, b := range blocks {
		titles[i] = b.script.Title
	}
	return titles
}

func assertOrder(t *testing.T, blocks []sessionBlock, want []string) {
	t.Helper()
	got := blockTitles(blocks)
	if len(got) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %v", i, want[i], got)
		}
	}
}

func TestCalisthenicsOrder_DifficultyProgression(t *testing.T) {
	warmup := testCategory("warmup", "Warming Up", repository.RoleNone, 1)
	pushups := testCategory("pushups", "Push-ups", repository.RoleNone, repository.DifficultyBasic)
	planche := testCategory("planche_work", "Planche Work", repository.RoleNone, repository.DifficultyAdvanced)
	stretch := testCategory("final_stretch", "Final Stretch", repository.RoleNone, 1)

	blocks := []sessionBlock{
		{script: testScript("Planche Leans", planche, repository.GoalStrength, 6)},
		{script: testScript("Cool Stretch", stretch, repository.GoalAllround, 5)},
		{script: testScript("Wrist Warmup", warmup, repository.GoalAllround, 5)},
		{script: testScript("Diamond Push-ups", pushups, repository.GoalStrength, 6)},
	}

	ordered := calisthenicsOrdering{}.Order(blocks)
	assertOrder(t, ordered, []string{"Wrist Warmup", "Diamond Push-ups", "Planche Leans", "Cool Stretch"})
}

func TestCalisthenicsOrder_ChallengeKeepsRelativePosition(t *testing.T) {
	pushups := testCategory("pushups", "Push-ups", repository.RoleNone, repository.DifficultyBasic)
	pullups := testCategory("pullups", "Pull-ups", repository.RoleNone, repository.DifficultyBasic)
	challenge := testCategory("max_challenge", "MAX Challenge", repository.RoleChallenge, repository.DifficultyAdvanced)

	blocks := []sessionBlock{
		{script: testScript("Diamond Push-ups", pushups, repository.GoalStrength, 6)},
		{script: testScript("MAX Push-up Count", challenge, repository.GoalStrength, 3), special: true},
		{script: testScript("Wide Pull-ups", pullups, repository.GoalStrength, 6)},
	}

	ordered := calisthenicsOrdering{}.Order(blocks)
	assertOrder(t, ordered, []string{"Diamond Push-ups", "MAX Push-up Count", "Wide Pull-ups"})
}

func TestCalisthenicsOrder_Idempotent(t *testing.T) {
	warmup := testCategory("warmup", "Warming Up", repository.RoleNone, 1)
	pushups := testCategory("pushups", "Push-ups", repository.RoleNone, repository.DifficultyBasic)
	planche := testCategory("planche_work", "Planche Work", repository.RoleNone, repository.DifficultyAdvanced)
	stretch := testCategory("final_stretch", "Final Stretch", repository.RoleNone, 1)

	blocks := []sessionBlock{
		{script: testScript("Planche Leans", planche, repository.GoalStrength, 6)},
		{script: testScript("Cool Stretch", stretch, repository.GoalAllround, 5)},
		{script: testScript("Wrist Warmup", warmup, repository.GoalAllround, 5)},
		{script: testScript("Diamond Push-ups", pushups, repository.GoalStrength, 6)},
	}

	once := calisthenicsOrdering{}.Order(blocks)
	twice := calisthenicsOrdering{}.Order(once)
	if !sameOrder(once, twice) {
		t.Fatalf("ordering must be idempotent: %v vs %v", blockTitles(once), blockTitles(twice))
	}
}

func TestIdentityCanonical_WarmupFirstCooldownLast(t *testing.T) {
	warmup := testCategory("warmup", "Warming Up", repository.RoleNone, 1)
	combos := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	cooldown := testCategory("cooldown_stretch", "Cooldown & Stretch", repository.RoleNone, 1)

	blocks := []sessionBlock{
		{script: testScript("Slow Stretch", cooldown, repository.GoalAllround, 5)},
		{script: testScript("Double Jab Cross", combos, repository.GoalStrength, 10)},
		{script: testScript("Shadow Boxing Warmup", warmup, repository.GoalAllround, 5)},
	}

	ordered := identityOrdering{}.Canonical(blocks)
	assertOrder(t, ordered, []string{"Shadow Boxing Warmup", "Double Jab Cross", "Slow Stretch"})
}

func TestIdentityOrder_LeavesBlocksAlone(t *testing.T) {
	combos := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	blocks := []sessionBlock{
		{script: testScript("Double Jab Cross", combos, repository.GoalStrength, 10)},
		{script: testScript("Hook Cross Hook", combos, repository.GoalStrength, 8)},
	}
	if !sameOrder(blocks, identityOrdering{}.Order(blocks)) {
		t.Fatal("identity ordering must not reorder")
	}
}

func TestCategoryClassifiers(t *testing.T) {
	warmups := []string{"warmup", "yoga_warm-up", "connecting_sequence", "sun_greeting_a"}
	for _, name := range warmups {
		if !isWarmupCategory(name) {
			t.Fatalf("expected %q to classify as warmup", name)
		}
	}
	cooldowns := []string{"cooldown_stretch", "cool-down", "final_stretch", "savasana", "mindfulness_close", "deep_relaxation"}
	for _, name := range cooldowns {
		if !isCooldownCategory(name) {
			t.Fatalf("expected %q to classify as cooldown", name)
		}
	}
	for _, name := range []string{"combinations", "pushups", "power_rounds"} {
		if isEssentialCategory(name) {
			t.Fatalf("expected %q to be trimmable", name)
		}
	}
}

func TestStrategyFor(t *testing.T) {
	if _, ok := strategyFor(repository.DisciplineCalisthenics).(calisthenicsOrdering); !ok {
		t.Fatal("expected calisthenics to use the difficulty ordering")
	}
	if _, ok := strategyFor(repository.DisciplineKickboxing).(identityOrdering); !ok {
		t.Fatal("expected kickboxing to keep template order")
	}
	if _, ok := strategyFor("unknown").(identityOrdering); !ok {
		t.Fatal("expected unknown disciplines to keep template order")
	}
}
