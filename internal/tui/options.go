package tui

import (
	"github.com/evanschultz/kanlite/internal/app"
	"github.com/evanschultz/kanlite/internal/i18n"
)

// IntentHook observes every intent after it has been applied to the board.
type IntentHook func(app.Intent, app.Result)

// ClipboardWriter copies text to the system clipboard.
type ClipboardWriter func(string) error

type Option func(*Model)

func WithCatalog(c i18n.Catalog) Option {
	return func(m *Model) {
		m.catalog = c
	}
}

func WithIntentHook(hook IntentHook) Option {
	return func(m *Model) {
		m.onIntent = hook
	}
}

func WithClipboardWriter(write ClipboardWriter) Option {
	return func(m *Model) {
		if write != nil {
			m.writeClipboard = write
		}
	}
}

// WithShowHelp starts the model with the full help overlay visible.
func WithShowHelp(show bool) Option {
	return func(m *Model) {
		m.help.ShowAll = show
	}
}
