package tui

import (
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/evanschultz/kanlite/internal/app"
	"github.com/evanschultz/kanlite/internal/domain"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// dialogFocus identifies the focused control inside the creation dialog.
type dialogFocus int

const (
	focusTitle dialogFocus = iota
	focusCategory
	focusCancel
	focusCreate
	dialogFocusCount
)

// taskDialog holds the draft of a task being created. It never touches the board;
// handleKey returns the intent the draft resolves to.
type taskDialog struct {
	title    textinput.Model
	category int
	focus    dialogFocus
}

func newTaskDialog(c i18n.Catalog) taskDialog {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = c.T("field_title")
	title.CharLimit = 120
	return taskDialog{
		title:    title,
		category: categoryIndex(domain.DefaultCategory),
		focus:    focusTitle,
	}
}

func categoryIndex(c domain.Category) int {
	for idx, candidate := range domain.Categories {
		if candidate == c {
			return idx
		}
	}
	return 0
}

func (d taskDialog) selectedCategory() domain.Category {
	return domain.Categories[clamp(d.category, 0, len(domain.Categories)-1)]
}

// canCreate reports whether the create control is enabled.
func (d taskDialog) canCreate() bool {
	return strings.TrimSpace(d.title.Value()) != ""
}

// createIntent returns the create intent for the draft, or false while the title is blank.
func (d taskDialog) createIntent() (app.Intent, bool) {
	if !d.canCreate() {
		return nil, false
	}
	return app.CreateIntent{
		Title:    strings.TrimSpace(d.title.Value()),
		Category: d.selectedCategory(),
	}, true
}

func (d *taskDialog) setFocus(focus dialogFocus) tea.Cmd {
	d.focus = (focus%dialogFocusCount + dialogFocusCount) % dialogFocusCount
	if d.focus == focusTitle {
		return d.title.Focus()
	}
	d.title.Blur()
	return nil
}

func (d *taskDialog) cycleCategory(delta int) {
	d.category = wrapIndex(d.category, delta, len(domain.Categories))
}

// handleKey updates the draft for one key press. A non-nil intent means the dialog resolved.
func (d taskDialog) handleKey(msg tea.KeyPressMsg, keys dialogKeyMap) (taskDialog, app.Intent, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cancel):
		return d, app.CloseDialogIntent{}, nil
	case key.Matches(msg, keys.confirm):
		if d.focus == focusCancel {
			return d, app.CloseDialogIntent{}, nil
		}
		in, ok := d.createIntent()
		if !ok {
			cmd := d.setFocus(focusTitle)
			return d, nil, cmd
		}
		return d, in, nil
	case key.Matches(msg, keys.nextField):
		cmd := d.setFocus(d.focus + 1)
		return d, nil, cmd
	case key.Matches(msg, keys.prevField):
		cmd := d.setFocus(d.focus - 1)
		return d, nil, cmd
	}

	if d.focus == focusCategory {
		switch {
		case key.Matches(msg, keys.prevCategory):
			d.cycleCategory(-1)
		case key.Matches(msg, keys.nextCategory):
			d.cycleCategory(1)
		}
		return d, nil, nil
	}
	if d.focus != focusTitle {
		return d, nil, nil
	}
	var cmd tea.Cmd
	d.title, cmd = d.title.Update(msg)
	return d, nil, cmd
}

// categorySwatch renders a colored dot for c.
func categorySwatch(c domain.Category) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Style().Color)).Render("●")
}

// view renders the dialog box.
func (d taskDialog) view(c i18n.Catalog, keys dialogKeyMap, accent, muted color.Color, width int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	inputWidth := 30
	if width > 0 {
		boxWidth := clamp(width, 36, 64)
		boxStyle = boxStyle.Width(boxWidth)
		inputWidth = max(12, boxWidth-lipgloss.Width(c.T("field_title"))-10)
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)
	labelStyle := func(focus dialogFocus) lipgloss.Style {
		if d.focus == focus {
			return lipgloss.NewStyle().Bold(true).Foreground(accent)
		}
		return lipgloss.NewStyle().Foreground(muted)
	}

	in := d.title
	in.SetWidth(inputWidth)
	lines := []string{
		titleStyle.Render(c.T("dialog_new_task_title")),
		"",
		labelStyle(focusTitle).Render(c.T("field_title")+":") + " " + in.View(),
		labelStyle(focusCategory).Render(c.T("field_category") + ":"),
	}
	for idx, category := range domain.Categories {
		cursor := "  "
		label := c.T(category.Style().LabelKey)
		if idx == d.category {
			cursor = "> "
			label = lipgloss.NewStyle().Bold(true).Render(label)
		}
		lines = append(lines, cursor+categorySwatch(category)+" "+label)
	}

	cancel := "[ " + c.T("button_cancel") + " ]"
	create := "[ " + c.T("button_create") + " ]"
	cancelStyle := lipgloss.NewStyle().Foreground(muted)
	if d.focus == focusCancel {
		cancelStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	}
	createStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	switch {
	case !d.canCreate():
		createStyle = lipgloss.NewStyle().Faint(true).Foreground(muted)
	case d.focus == focusCreate:
		createStyle = createStyle.Reverse(true)
	}
	lines = append(lines, "", cancelStyle.Render(cancel)+"  "+createStyle.Render(create))
	lines = append(lines, hintStyle.Render(hintLine(keys.confirm, keys.cancel, keys.nextField)))
	return boxStyle.Render(strings.Join(lines, "\n"))
}
