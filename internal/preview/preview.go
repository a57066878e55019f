// Package preview renders a unit's content for reading in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/learnmod/cli/internal/compiler"
	"github.com/learnmod/cli/internal/module"
)

// DefaultWidth is the word-wrap width used when none is given.
const DefaultWidth = 80

// Markdown returns the Markdown shown for a unit. Narratives are returned as
// authored; assessments are rendered as a numbered question list with the
// correct choices checked.
func Markdown(unit *module.Unit, content *compiler.ResolvedContent) string {
	if content.Kind != compiler.KindAssessment || content.Quiz == nil {
		return content.Text
	}

	var sb strings.Builder
	if unit.Title != nil && *unit.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", *unit.Title)
	}
	for i, q := range content.Quiz.Questions {
		fmt.Fprintf(&sb, "%d. %s\n\n", i+1, strings.TrimSpace(q.Content))
		for _, c := range q.Choices {
			mark := " "
			if c.IsCorrect {
				mark = "x"
			}
			fmt.Fprintf(&sb, "   - [%s] %s\n", mark, strings.TrimSpace(c.Content))
			if c.Explanation != "" {
				fmt.Fprintf(&sb, "     *%s*\n", strings.TrimSpace(c.Explanation))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render formats Markdown for the terminal. The style follows the terminal
// background; output that is not a terminal gets the plain style.
func Render(markdown string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
