package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const defaultAppName = "kanlite"

// Paths holds the per-user files kanlite touches: the TOML config and the log directory.
type Paths struct {
	ConfigPath string
	LogDir     string
}

// Options selects the app directory name. DevMode appends "-dev" to it.
type Options struct {
	AppName string
	DevMode bool
}

// Host carries the OS facts resolution depends on.
type Host struct {
	GOOS      string
	Home      string
	ConfigDir string
	Getenv    func(string) string
}

// CurrentHost reads the running process's OS, home, and config dir.
func CurrentHost() (Host, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Host{}, fmt.Errorf("user home dir: %w", err)
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Host{}, fmt.Errorf("user config dir: %w", err)
	}
	return Host{GOOS: runtime.GOOS, Home: home, ConfigDir: configDir, Getenv: os.Getenv}, nil
}

// Default resolves paths for the current host.
func Default(opts Options) (Paths, error) {
	host, err := CurrentHost()
	if err != nil {
		return Paths{}, err
	}
	return Resolve(host, opts)
}

// Resolve maps a host and options to concrete paths.
//
// Config follows os.UserConfigDir with XDG_CONFIG_HOME / APPDATA overrides.
// Logs are state, not config: XDG_STATE_HOME (~/.local/state) on unix,
// ~/Library/Logs on macOS, and LOCALAPPDATA on windows.
func Resolve(h Host, opts Options) (Paths, error) {
	if strings.TrimSpace(h.Home) == "" || strings.TrimSpace(h.ConfigDir) == "" {
		return Paths{}, fmt.Errorf("empty home or config dir")
	}
	getenv := h.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	name := appDirName(opts)

	configBase := h.ConfigDir
	var logDir string
	switch h.GOOS {
	case "darwin":
		logDir = filepath.Join(h.Home, "Library", "Logs", name)
	case "windows":
		if v := strings.TrimSpace(getenv("APPDATA")); v != "" {
			configBase = v
		}
		localBase := filepath.Join(h.Home, "AppData", "Local")
		if v := strings.TrimSpace(getenv("LOCALAPPDATA")); v != "" {
			localBase = v
		}
		logDir = filepath.Join(localBase, name, "logs")
	default:
		if v := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); v != "" {
			configBase = v
		}
		stateBase := filepath.Join(h.Home, ".local", "state")
		if v := strings.TrimSpace(getenv("XDG_STATE_HOME")); v != "" {
			stateBase = v
		}
		logDir = filepath.Join(stateBase, name, "logs")
	}

	return Paths{
		ConfigPath: filepath.Join(configBase, name, "config.toml"),
		LogDir:     logDir,
	}, nil
}

func appDirName(opts Options) string {
	name := strings.TrimSpace(opts.AppName)
	if name == "" {
		name = defaultAppName
	}
	if opts.DevMode {
		name += "-dev"
	}
	return name
}
