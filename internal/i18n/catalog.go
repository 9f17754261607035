// Package i18n resolves display strings from embedded per-locale TOML catalogs.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultLocale is used as the fallback for keys missing from other catalogs.
const DefaultLocale = "en"

// ErrUnknownLocale reports a locale without an embedded catalog.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.toml
var localeFS embed.FS

// Catalog maps fixed string identifiers to display text for one locale.
type Catalog struct {
	locale   string
	strings  map[string]string
	fallback map[string]string
}

// Locales returns the embedded locale names in sorted order.
func Locales() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".toml")
		if ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Load decodes the catalog for locale, backed by the default catalog.
func Load(locale string) (Catalog, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = DefaultLocale
	}
	if !slices.Contains(Locales(), locale) {
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	primary, err := decodeLocale(locale)
	if err != nil {
		return Catalog{}, err
	}
	fallback := primary
	if locale != DefaultLocale {
		fallback, err = decodeLocale(DefaultLocale)
		if err != nil {
			return Catalog{}, err
		}
	}
	return Catalog{locale: locale, strings: primary, fallback: fallback}, nil
}

// MustLoad is Load for locales known to be embedded.
func MustLoad(locale string) Catalog {
	c, err := Load(locale)
	if err != nil {
		panic(err)
	}
	return c
}

func decodeLocale(locale string) (map[string]string, error) {
	content, err := localeFS.ReadFile("locales/" + locale + ".toml")
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", locale, err)
	}
	out := map[string]string{}
	if err := toml.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("decode catalog %q: %w", locale, err)
	}
	return out, nil
}

// Locale returns the catalog's locale name.
func (c Catalog) Locale() string {
	return c.locale
}

// T returns the text for key, falling back to the default locale and then the key itself.
func (c Catalog) T(key string) string {
	if v, ok := c.strings[key]; ok && v != "" {
		return v
	}
	if v, ok := c.fallback[key]; ok && v != "" {
		return v
	}
	return key
}

// Missing lists keys present in the default catalog but absent from this one.
func (c Catalog) Missing() []string {
	out := make([]string, 0)
	for key := range c.fallback {
		if _, ok := c.strings[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}
