package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

// compile assembles the final spoken script: branding opening, each
// block under its header with quote placeholders resolved, pause
// delimiters between blocks, branding closing.
func (g *Generator) compile(ctx context.Context, rc *runContext, c *content, d repository.Discipline, blocks []sessionBlock) string {
	var sb strings.Builder
	sb.WriteString(openingLine(d))
	sb.WriteString("\n\n")

	round := 0
	for _, b := range blocks {
		cat := b.script.Category
		if usesRoundNumbering(cat) {
			round++
		}
		sb.WriteString("\n")
		sb.WriteString(blockHeader(b.script, round))
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "<!-- %s (%gmin) -->\n", b.script.Title, b.script.DurationMinutes)

		body := substitutePlaceholders(b.script.Body, func() (string, bool) {
			return g.nextQuote(ctx, rc, c, cat.ID)
		})
		sb.WriteString(strings.TrimSpace(body))
		sb.WriteString("\n\n")
		sb.WriteString(pauseDelimiter)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(closingLine(d))
	return sb.String()
}
