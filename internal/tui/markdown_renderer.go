package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/evanschultz/kanlite/internal/domain"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// markdownRenderer renders markdown for terminal views and recreates the renderer when wrap width changes.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render converts markdown input into ANSI-styled terminal text with the requested wrap width.
func (r *markdownRenderer) render(markdown string, width int) string {
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}

	wrapWidth := max(width, 24)
	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return markdown
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(rendered, "\n")
}

// taskMarkdown describes one task for the info overlay.
func taskMarkdown(task domain.Task, c i18n.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", escapeMarkdown(task.Title))
	fmt.Fprintf(&b, "- **%s:** %s\n", c.T("field_category"), c.T(task.Category.Style().LabelKey))
	fmt.Fprintf(&b, "- **%s:** %s\n", c.T("field_status"), c.T(columnTitleKey(task.Status)))
	fmt.Fprintf(&b, "- **%s:** #%d\n", c.T("field_id"), task.ID)
	if moves := task.Status.Moves(); len(moves) > 0 {
		b.WriteString("\n")
		for _, target := range moves {
			fmt.Fprintf(&b, "- %s\n", c.T(moveLabelKey(target)))
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
