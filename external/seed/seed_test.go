package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

type mockAdminRepository struct {
	categories []repository.UpsertCategoryInput
	scripts    []repository.UpsertScriptInput
	steps      []repository.UpsertTemplateStepInput
	quotes     []repository.UpsertQuoteInput

	categoryIDs map[string]uuid.UUID
}

func (m *mockAdminRepository) UpsertCategory(_ context.Context, input repository.UpsertCategoryInput) (*repository.Category, error) {
	m.categories = append(m.categories, input)
	if m.categoryIDs == nil {
		m.categoryIDs = make(map[string]uuid.UUID)
	}
	id := uuid.New()
	m.categoryIDs[input.Name] = id
	return &repository.Category{
		ID:          id,
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Discipline:  input.Discipline,
		Role:        input.Role,
	}, nil
}

func (m *mockAdminRepository) UpsertScript(_ context.Context, input repository.UpsertScriptInput) (*repository.Script, error) {
	m.scripts = append(m.scripts, input)
	return &repository.Script{ID: uuid.New(), Title: input.Title}, nil
}

func (m *mockAdminRepository) UpsertTemplateStep(_ context.Context, input repository.UpsertTemplateStepInput) (*repository.TemplateStep, error) {
	m.steps = append(m.steps, input)
	return &repository.TemplateStep{ID: uuid.New()}, nil
}

func (m *mockAdminRepository) UpsertQuote(_ context.Context, input repository.UpsertQuoteInput) (*repository.Quote, error) {
	m.quotes = append(m.quotes, input)
	return &repository.Quote{ID: uuid.New(), Text: input.Text}, nil
}

func TestApply_ResolvesCategoriesByName(t *testing.T) {
	repo := &mockAdminRepository{}
	loader := NewLoader(repo)

	fixture := Fixture{
		Categories: []CategoryFixture{
			{Name: "warmup", DisplayName: "Warming Up", Discipline: "kickboxing"},
			{Name: "combinations", DisplayName: "Combinations", Discipline: "kickboxing", DifficultyLevel: 2},
			{Name: "surprise_rounds", DisplayName: "Surprise Rounds", Discipline: "kickboxing", Role: "bonus_round", DifficultyLevel: 2},
		},
		Scripts: []ScriptFixture{
			{Title: "Ronde 3: Double Jab Cross", Discipline: "kickboxing", Category: "combinations", Goal: "strength", Body: "Jab. Cross.", DurationMinutes: 10},
		},
		TemplateSteps: []TemplateStepFixture{
			{Discipline: "kickboxing", SequenceOrder: 1, Category: "warmup"},
			{Discipline: "kickboxing", SequenceOrder: 2, Category: "combinations", Alternatives: []string{"warmup"}, Insertion: "bonus_round"},
		},
		Quotes: []QuoteFixture{
			{Discipline: "kickboxing", Text: "breathe", TargetCategory: "combinations"},
			{Discipline: "kickboxing", Text: "stay sharp"},
		},
	}

	if err := loader.Apply(context.Background(), fixture); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(repo.categories) != 3 || len(repo.scripts) != 1 || len(repo.steps) != 2 || len(repo.quotes) != 2 {
		t.Fatalf("unexpected upsert counts: %d categories, %d scripts, %d steps, %d quotes",
			len(repo.categories), len(repo.scripts), len(repo.steps), len(repo.quotes))
	}

	if repo.scripts[0].Title != "Double Jab Cross" {
		t.Fatalf("expected legacy round prefix stripped, got %q", repo.scripts[0].Title)
	}
	if repo.scripts[0].CategoryID != repo.categoryIDs["combinations"] {
		t.Fatal("script must resolve its category by name")
	}

	step := repo.steps[1]
	if step.PrimaryCategoryID != repo.categoryIDs["combinations"] {
		t.Fatal("step must resolve its primary category by name")
	}
	if len(step.AlternativeCategoryIDs) != 1 || step.AlternativeCategoryIDs[0] != repo.categoryIDs["warmup"] {
		t.Fatal("step must resolve alternative categories by name")
	}
	if !step.Required {
		t.Fatal("steps default to required")
	}
	if step.Insertion != repository.InsertionBonusRound {
		t.Fatalf("unexpected insertion kind: %s", step.Insertion)
	}

	if repo.quotes[0].TargetCategoryID == nil || *repo.quotes[0].TargetCategoryID != repo.categoryIDs["combinations"] {
		t.Fatal("targeted quote must resolve its category by name")
	}
	if repo.quotes[1].TargetCategoryID != nil {
		t.Fatal("general quote must have no target category")
	}
}

func TestApply_UnknownCategory(t *testing.T) {
	loader := NewLoader(&mockAdminRepository{})
	err := loader.Apply(context.Background(), Fixture{
		Scripts: []ScriptFixture{
			{Title: "Orphan", Discipline: "kickboxing", Category: "missing", DurationMinutes: 5},
		},
	})
	if err == nil {
		t.Fatal("expected error for unresolvable category reference")
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ronde 3: Double Jab Cross", "Double Jab Cross"},
		{"Round 12: Heavy Hooks", "Heavy Hooks"},
		{"ronde 1 : Lage Trappen", "Lage Trappen"},
		{"Double Jab Cross", "Double Jab Cross"},
		{"  Shadow Boxing  ", "Shadow Boxing"},
	}
	for _, tt := range tests {
		if got := CleanTitle(tt.in); got != tt.want {
			t.Fatalf("CleanTitle(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
