package tui

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/evanschultz/kanlite/internal/app"
	"github.com/evanschultz/kanlite/internal/domain"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// Card geometry: title, category label, controls, then one spacer line.
const (
	cardHeight = 3
	cardStride = cardHeight + 1
)

var (
	cardTextColor  = lipgloss.Color("#212121")
	cardMutedColor = lipgloss.Color("#5F6368")
)

// cardControl is one directional move control on a card.
type cardControl struct {
	target  domain.Status
	forward bool
}

// cardControls returns the move controls valid for task, backward first.
func cardControls(task domain.Task) []cardControl {
	out := make([]cardControl, 0, 2)
	if prev, ok := task.Status.Prev(); ok {
		out = append(out, cardControl{target: prev})
	}
	if next, ok := task.Status.Next(); ok {
		out = append(out, cardControl{target: next, forward: true})
	}
	return out
}

// controlFor returns the control in the requested direction, if the card shows one.
func controlFor(task domain.Task, forward bool) (cardControl, bool) {
	for _, control := range cardControls(task) {
		if control.forward == forward {
			return control, true
		}
	}
	return cardControl{}, false
}

func (c cardControl) intent(task domain.Task) app.Intent {
	return app.MoveIntent{TaskID: task.ID, Status: c.target}
}

func columnTitleKey(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "column_todo"
	case domain.StatusInProgress:
		return "column_in_progress"
	case domain.StatusDone:
		return "column_done"
	default:
		return string(status)
	}
}

func moveLabelKey(target domain.Status) string {
	switch target {
	case domain.StatusTodo:
		return "cd_move_to_todo"
	case domain.StatusInProgress:
		return "cd_move_to_in_progress"
	case domain.StatusDone:
		return "cd_move_to_done"
	default:
		return string(target)
	}
}

// controlsLine lays out the backward control on the left and the forward control on the right.
func controlsLine(task domain.Task, c i18n.Catalog, width int) string {
	var left, right string
	var leftShort, rightShort string
	for _, control := range cardControls(task) {
		label := c.T(moveLabelKey(control.target))
		if control.forward {
			right, rightShort = label+" →", "→"
		} else {
			left, leftShort = "← "+label, "←"
		}
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left, right = leftShort, rightShort
		gap = max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderCard renders one task card at the given outer width.
func renderCard(task domain.Task, c i18n.Catalog, width int, selected bool, accent color.Color) string {
	inner := max(1, width-2)
	bg := lipgloss.Color(task.Category.Style().Color)
	base := lipgloss.NewStyle().Background(bg).Foreground(cardTextColor)

	title := truncate(task.Title, inner)
	titleStyle := base.Bold(true)
	if selected {
		title = truncate("▸ "+task.Title, inner)
		titleStyle = titleStyle.Underline(true)
	}
	label := truncate(c.T(task.Category.Style().LabelKey), inner)
	controls := truncate(controlsLine(task, c, inner), inner)

	lines := []string{
		titleStyle.Render(title),
		base.Foreground(cardMutedColor).Render(label),
		base.Foreground(accent).Bold(true).Render(controls),
	}
	return lipgloss.NewStyle().
		Background(bg).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}
