package generator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"

	"github.com/google/uuid"
	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// quotePlaceholderPattern matches the author-written quote markers in
// script bodies, e.g. "[Onthoud, ...]".
var quotePlaceholderPattern = regexp.MustCompile(`\[\s*Onthoud\s*,\s*\.+\s*\]`)

func formatQuote(text string) string {
	return fmt.Sprintf("**Onthoud, [%s]**", text)
}

// nextQuote picks the quote for one placeholder in a script of the
// given category. Exercise-specific quotes targeting the category win;
// otherwise a general quote is chosen at random from the three least
// used. Returns false when no unused quote remains.
func (g *Generator) nextQuote(ctx context.Context, rc *runContext, c *content, categoryID uuid.UUID) (string, bool) {
	if q := specificQuote(rc, c, categoryID); q != nil {
		g.commitQuote(ctx, rc, *q)
		return q.Text, true
	}

	pool := generalQuotePool(rc, c)
	if len(pool) == 0 {
		return "", false
	}
	top := pool
	if len(top) > 3 {
		top = top[:3]
	}
	q := top[rc.rng.Intn(len(top))]
	g.commitQuote(ctx, rc, q)
	return q.Text, true
}

func specificQuote(rc *runContext, c *content, categoryID uuid.UUID) *repository.Quote {
	var pool []repository.Quote
	for _, q := range c.quotes {
		if !q.ExerciseSpecific() || *q.TargetCategoryID != categoryID || rc.quoteUsed(q.ID) {
			continue
		}
		pool = append(pool, q)
	}
	if len(pool) == 0 {
		return nil
	}
	sortQuotesByUsage(pool)
	return &pool[0]
}

func generalQuotePool(rc *runContext, c *content) []repository.Quote {
	var pool []repository.Quote
	for _, q := range c.quotes {
		if q.ExerciseSpecific() || rc.quoteUsed(q.ID) {
			continue
		}
		pool = append(pool, q)
	}
	sortQuotesByUsage(pool)
	return pool
}

// sortQuotesByUsage orders least-used first; never-used quotes sort
// before any dated ones at the same use count.
func sortQuotesByUsage(quotes []repository.Quote) {
	sort.Slice(quotes, func(i, j int) bool {
		a, b := quotes[i], quotes[j]
		if a.TimesUsed != b.TimesUsed {
			return a.TimesUsed < b.TimesUsed
		}
		switch {
		case a.LastUsed == nil && b.LastUsed != nil:
			return true
		case a.LastUsed != nil && b.LastUsed == nil:
			return false
		case a.LastUsed != nil && b.LastUsed != nil && !a.LastUsed.Equal(*b.LastUsed):
			return a.LastUsed.Before(*b.LastUsed)
		}
		return a.ID.String() < b.ID.String()
	})
}

func (g *Generator) commitQuote(ctx context.Context, rc *runContext, q repository.Quote) {
	rc.usedQuotes[q.ID] = struct{}{}
	if err := g.repo.MarkQuoteUsed(ctx, q.ID, rc.now); err != nil {
		slog.Warn("failed to record quote usage", "quote_id", q.ID, "error", err)
	}
}

// substitutePlaceholders replaces each quote placeholder in body using
// next; placeholders with no quote left are removed. Already
// substituted text contains no placeholders, so the pass is idempotent.
func substitutePlaceholders(body string, next func() (string, bool)) string {
	return quotePlaceholderPattern.ReplaceAllStringFunc(body, func(string) string {
		text, ok := next()
		if !ok {
			return ""
		}
		return formatQuote(text)
	})
}
