package generator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

func TestSubstitutePlaceholders(t *testing.T) {
	body := "Keep punching. [Onthoud, ...] Breathe out. [ Onthoud , .... ] Done."
	quotes := []string{"pain is temporary", "form beats speed"}
	i := 0
	next := func() (string, bool) {
		if i >= len(quotes) {
			return "", false
		}
		q := quotes[i]
		i++
		return q, true
	}

	got := substitutePlaceholders(body, next)
	want := "Keep punching. **Onthoud, [pain is temporary]** Breathe out. **Onthoud, [form beats speed]** Done."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSubstitutePlaceholders_RemovesWhenExhausted(t *testing.T) {
	got := substitutePlaceholders("Go hard. [Onthoud, ...] Finish.", func() (string, bool) { return "", false })
	if got != "Go hard.  Finish." {
		t.Fatalf("expected placeholder removed, got %q", got)
	}
}

func TestSubstitutePlaceholders_Idempotent(t *testing.T) {
	next := func() (string, bool) { return "stay sharp", true }
	once := substitutePlaceholders("Start. [Onthoud, ...] End.", next)
	twice := substitutePlaceholders(once, next)
	if once != twice {
		t.Fatalf("substituted text must be stable: %q vs %q", once, twice)
	}
}

func TestNextQuote_PrefersExerciseSpecific(t *testing.T) {
	cat := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	specific := repository.Quote{
		ID:               uuid.New(),
		Discipline:       repository.DisciplineKickboxing,
		Text:             "snap the jab back",
		TargetCategoryID: &cat.ID,
		Active:           true,
	}
	general := repository.Quote{
		ID:         uuid.New(),
		Discipline: repository.DisciplineKickboxing,
		Text:       "consistency wins",
		Active:     true,
	}

	c := contentFrom([]repository.Category{cat}, nil)
	c.quotes = []repository.Quote{general, specific}

	repo := &fakeRepository{}
	g := newTestGenerator(repo)
	rc := newTestRunContext()

	text, ok := g.nextQuote(context.Background(), rc, c, cat.ID)
	if !ok || text != "snap the jab back" {
		t.Fatalf("expected the exercise-specific quote, got %q (ok=%v)", text, ok)
	}
	if len(repo.markedQuotes) != 1 || repo.markedQuotes[0] != specific.ID {
		t.Fatalf("expected quote usage recorded for the specific quote, got %v", repo.markedQuotes)
	}
}

func TestNextQuote_GeneralLeastUsedPool(t *testing.T) {
	cat := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	heavy := repository.Quote{ID: uuid.New(), Text: "worn out quote", TimesUsed: 50, Active: true}
	light := repository.Quote{ID: uuid.New(), Text: "fresh quote", TimesUsed: 0, Active: true}

	c := contentFrom([]repository.Category{cat}, nil)
	c.quotes = []repository.Quote{heavy, light}

	g := newTestGenerator(&fakeRepository{})
	rc := newTestRunContext()

	// Both quotes fit the top-3 window, so either may be picked, but
	// the pool itself must rank the least used first.
	pool := generalQuotePool(rc, c)
	if pool[0].ID != light.ID {
		t.Fatalf("expected least-used quote ranked first, got %q", pool[0].Text)
	}

	text, ok := g.nextQuote(context.Background(), rc, c, cat.ID)
	if !ok || text == "" {
		t.Fatal("expected a general quote")
	}
}

func TestNextQuote_ExhaustedPool(t *testing.T) {
	cat := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	c := contentFrom([]repository.Category{cat}, nil)

	g := newTestGenerator(&fakeRepository{})
	if _, ok := g.nextQuote(context.Background(), newTestRunContext(), c, cat.ID); ok {
		t.Fatal("expected no quote from an empty pool")
	}
}

func TestNextQuote_NeverRepeatsWithinRun(t *testing.T) {
	cat := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	only := repository.Quote{ID: uuid.New(), Text: "one and done", Active: true}
	c := contentFrom([]repository.Category{cat}, nil)
	c.quotes = []repository.Quote{only}

	g := newTestGenerator(&fakeRepository{})
	rc := newTestRunContext()

	if _, ok := g.nextQuote(context.Background(), rc, c, cat.ID); !ok {
		t.Fatal("expected first quote")
	}
	if _, ok := g.nextQuote(context.Background(), rc, c, cat.ID); ok {
		t.Fatal("expected pool exhausted after single quote was used")
	}
}

func TestSortQuotesByUsage_NeverUsedBeforeDated(t *testing.T) {
	used := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	a := repository.Quote{ID: uuid.New(), Text: "a", TimesUsed: 1, LastUsed: &used}
	b := repository.Quote{ID: uuid.New(), Text: "b", TimesUsed: 1}
	c := repository.Quote{ID: uuid.New(), Text: "c", TimesUsed: 1, LastUsed: &older}

	quotes := []repository.Quote{a, b, c}
	sortQuotesByUsage(quotes)

	if quotes[0].Text != "b" {
		t.Fatalf("expected never-used quote first, got %q", quotes[0].Text)
	}
	if quotes[1].Text != "c" || quotes[2].Text != "a" {
		t.Fatalf("expected older usage before newer, got %q then %q", quotes[1].Text, quotes[2].Text)
	}
}

func TestCompile_DeterministicWithSeededSource(t *testing.T) {
	combos := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	script := testScript("Double Jab Cross", combos, repository.GoalStrength, 10)
	script.Body = "Work the bag. [Onthoud, ...] Keep breathing."

	c := contentFrom([]repository.Category{combos}, []repository.Script{script})
	c.quotes = []repository.Quote{
		{ID: uuid.New(), Text: "power comes from the hips", Active: true},
		{ID: uuid.New(), Text: "breathe out on every punch", Active: true},
	}

	g := newTestGenerator(&fakeRepository{})
	blocks := []sessionBlock{{script: script}}

	first := g.compile(context.Background(), newTestRunContext(), c, repository.DisciplineKickboxing, blocks)
	second := g.compile(context.Background(), newTestRunContext(), c, repository.DisciplineKickboxing, blocks)
	if first != second {
		t.Fatalf("same seed and block list must compile identically:\n%q\nvs\n%q", first, second)
	}
}

func TestCompile_SubstitutesQuotesInBodies(t *testing.T) {
	combos := testCategory("combinations", "Combinations", repository.RoleNone, 2)
	script := testScript("Double Jab Cross", combos, repository.GoalStrength, 10)
	script.Body = "Work the bag. [Onthoud, ...] Keep breathing."

	quote := repository.Quote{ID: uuid.New(), Text: "power comes from the hips", Active: true}

	c := contentFrom([]repository.Category{combos}, []repository.Script{script})
	c.quotes = []repository.Quote{quote}

	g := newTestGenerator(&fakeRepository{})
	rc := newTestRunContext()

	compiled := g.compile(context.Background(), rc, c, repository.DisciplineKickboxing, []sessionBlock{{script: script}})
	if !strings.Contains(compiled, "**Onthoud, [power comes from the hips]**") {
		t.Fatalf("expected substituted quote in compiled output:\n%s", compiled)
	}
	if strings.Contains(compiled, "[Onthoud") {
		t.Fatal("expected no placeholder left in compiled output")
	}
}
