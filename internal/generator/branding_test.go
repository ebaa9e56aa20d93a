package generator

import (
	"testing"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func TestBrandingLinesPerDiscipline(t *testing.T) {
	tests := []struct {
		discipline  repository.Discipline
		wantOpening string
		wantClosing string
	}{
		{repository.DisciplineKickboxing, "Get ready to start your Foxing Fit Heavybag Training.", "Stay Sharp, Stay Foxing Fit."},
		{repository.DisciplinePowerYoga, "Get ready to start your Foxing Fit Power Yoga Lesson.", "Stay Flexible, Stay Foxing Fit."},
		{repository.DisciplineCalisthenics, "Get ready to start your Foxing Fit Calisthenics workout.", "Stay Strong, Stay Foxing Fit."},
		{"unknown", "Get ready to start your Foxing Fit workout.", "Stay Fit, Stay Foxing Fit."},
	}
	for _, tt := range tests {
		if got := openingLine(tt.discipline); got != tt.wantOpening {
			t.Fatalf("%s opening: got %q", tt.discipline, got)
		}
		if got := closingLine(tt.discipline); got != tt.wantClosing {
			t.Fatalf("%s closing: got %q", tt.discipline, got)
		}
	}
}

func TestBlockHeader(t *testing.T) {
	combos := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	numbered := testScript("Double Jab Cross", combos, repository.GoalStrength, 10)
	if got := blockHeader(numbered, 3); got != "## Ronde 3: Double Jab Cross" {
		t.Fatalf("unexpected numbered header: %q", got)
	}

	warmup := testCategory("warmup", "Warming Up", repository.RoleNone, 1)
	structural := testScript("Shadow Boxing Warmup", warmup, repository.GoalAllround, 5)
	if got := blockHeader(structural, 1); got != "## Warming Up" {
		t.Fatalf("warmup must not get a round number: %q", got)
	}

	bonus := testCategory("surprise_rounds", "Surprise Rounds", repository.RoleBonusRound, 2)
	if got := blockHeader(testScript("Burpee Blitz", bonus, repository.GoalAllround, 4), 1); got != "## 🎯 Surprise Round" {
		t.Fatalf("unexpected bonus header: %q", got)
	}

	challenge := testCategory("max_challenge", "MAX Challenge", repository.RoleChallenge, 3)
	if got := blockHeader(testScript("MAX Punch Count", challenge, repository.GoalAllround, 3), 1); got != "## 💪 MAX Challenge" {
		t.Fatalf("unexpected challenge header: %q", got)
	}

	vinyasa := testCategory("vinyasa_flow", "Vinyasa Flow", repository.RoleTransitionS2S, 2)
	if got := blockHeader(testScript("Flow Through", vinyasa, repository.GoalAllround, 2), 1); got != "## 🌊 Vinyasa Transition" {
		t.Fatalf("unexpected transition header: %q", got)
	}
}
