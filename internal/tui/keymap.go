package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// keyMap holds the board bindings.
type keyMap struct {
	quit            key.Binding
	toggleHelp      key.Binding
	moveLeft        key.Binding
	moveRight       key.Binding
	moveUp          key.Binding
	moveDown        key.Binding
	addTask         key.Binding
	taskInfo        key.Binding
	moveTaskBack    key.Binding
	moveTaskForward key.Binding
	copyTitle       key.Binding
	closeOverlay    key.Binding
}

// newKeyMap builds the board bindings with help text from c.
func newKeyMap(c i18n.Catalog) keyMap {
	return keyMap{
		quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", c.T("help_quit"))),
		toggleHelp:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", c.T("help_toggle_help"))),
		moveLeft:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", c.T("help_column_left"))),
		moveRight:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", c.T("help_column_right"))),
		moveUp:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", c.T("help_task_up"))),
		moveDown:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", c.T("help_task_down"))),
		addTask:         key.NewBinding(key.WithKeys("n", "+"), key.WithHelp("n/+", c.T("help_new_task"))),
		taskInfo:        key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i/enter", c.T("help_task_info"))),
		moveTaskBack:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", c.T("help_move_back"))),
		moveTaskForward: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", c.T("help_move_forward"))),
		copyTitle:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", c.T("help_copy_title"))),
		closeOverlay:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", c.T("help_close"))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addTask, k.moveTaskBack, k.moveTaskForward, k.taskInfo, k.toggleHelp, k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.addTask, k.taskInfo, k.copyTitle, k.toggleHelp, k.closeOverlay, k.quit},
		{k.moveLeft, k.moveRight, k.moveUp, k.moveDown},
		{k.moveTaskBack, k.moveTaskForward},
	}
}

// dialogKeyMap holds the bindings active while the creation dialog is open.
type dialogKeyMap struct {
	confirm      key.Binding
	cancel       key.Binding
	nextField    key.Binding
	prevField    key.Binding
	prevCategory key.Binding
	nextCategory key.Binding
	forceQuit    key.Binding
}

func newDialogKeyMap(c i18n.Catalog) dialogKeyMap {
	return dialogKeyMap{
		confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", c.T("help_create"))),
		cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", c.T("help_cancel"))),
		nextField:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", c.T("help_next_field"))),
		prevField:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", c.T("help_prev_field"))),
		prevCategory: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", c.T("help_prev_category"))),
		nextCategory: key.NewBinding(key.WithKeys("right", "l", "space"), key.WithHelp("→/l", c.T("help_next_category"))),
		forceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", c.T("help_quit"))),
	}
}

func (k dialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.cancel, k.nextField, k.prevCategory, k.nextCategory}
}

func (k dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.prevField, k.forceQuit}}
}

// hintLine renders bindings as a one-line "key desc • key desc" hint.
func hintLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
