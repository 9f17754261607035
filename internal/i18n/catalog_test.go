package i18n

import (
	"errors"
	"slices"
	"testing"

	"github.com/evanschultz/kanlite/internal/domain"
)

func TestLocalesListsEmbeddedCatalogs(t *testing.T) {
	if got := Locales(); !slices.Equal(got, []string{"en", "es"}) {
		t.Fatalf("unexpected locales %v", got)
	}
}

func TestLoadDefaultsToEnglish(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Locale() != "en" {
		t.Fatalf("unexpected locale %q", c.Locale())
	}
	if got := c.T("column_in_progress"); got != "In Progress" {
		t.Fatalf("unexpected column label %q", got)
	}
}

func TestLoadSpanishAndFallback(t *testing.T) {
	c, err := Load(" ES ")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.T("category_home"); got != "Hogar" {
		t.Fatalf("unexpected category label %q", got)
	}
	if got := c.T("no_such_key"); got != "no_such_key" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
	c.strings = map[string]string{}
	if got := c.T("button_create"); got != "Create" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestLoadRejectsUnknownLocale(t *testing.T) {
	if _, err := Load("fr"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for _, locale := range Locales() {
		c := MustLoad(locale)
		if missing := c.Missing(); len(missing) > 0 {
			t.Fatalf("%s catalog missing keys %v", locale, missing)
		}
		for _, category := range domain.Categories {
			key := category.Style().LabelKey
			if c.T(key) == key {
				t.Fatalf("%s catalog has no label for %s", locale, category)
			}
		}
	}
}
