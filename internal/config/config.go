package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	UI      UIConfig      `toml:"ui"`
	Board   BoardConfig   `toml:"board"`
	Logging LoggingConfig `toml:"logging"`
}

type UIConfig struct {
	Locale   string `toml:"locale"`
	ShowHelp bool   `toml:"show_help"`
}

type BoardConfig struct {
	DemoTasks bool `toml:"demo_tasks"`
}

type LoggingConfig struct {
	Level   string        `toml:"level"`
	DevFile DevFileConfig `toml:"dev_file"`
}

type DevFileConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

func Default() Config {
	return Config{
		UI: UIConfig{
			Locale:   "en",
			ShowHelp: false,
		},
		Board: BoardConfig{
			DemoTasks: true,
		},
		Logging: LoggingConfig{
			Level: "info",
			DevFile: DevFileConfig{
				Enabled: true,
				Dir:     ".kanlite/log",
			},
		},
	}
}

// Load overlays the TOML file at path on defaults. A missing or empty file yields defaults.
func Load(path string, defaults Config, locales []string) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	cfg.UI.Locale = strings.ToLower(strings.TrimSpace(cfg.UI.Locale))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if err := cfg.Validate(locales); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated settings. An empty locales list skips the locale check.
func (c Config) Validate(locales []string) error {
	locale := strings.ToLower(strings.TrimSpace(c.UI.Locale))
	if locale == "" {
		return errors.New("ui.locale is required")
	}
	if len(locales) > 0 && !slices.Contains(locales, locale) {
		return fmt.Errorf("invalid ui.locale: %q (known: %s)", c.UI.Locale, strings.Join(locales, ", "))
	}

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	if c.Logging.DevFile.Enabled && strings.TrimSpace(c.Logging.DevFile.Dir) == "" {
		return errors.New("logging.dev_file.dir is required when dev_file is enabled")
	}
	return nil
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return encoded, nil
}

// Write validates cfg and writes it to path, creating the parent directory.
func Write(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("config path is required")
	}
	if err := cfg.Validate(nil); err != nil {
		return err
	}
	encoded, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
