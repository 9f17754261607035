package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/evanschultz/kanlite/internal/config"
)

// runtimeLoggerOptions carries the run-scoped inputs of the logger.
type runtimeLoggerOptions struct {
	appName   string
	devMode   bool
	sessionID string
	// fallback is the log directory used when no workspace root is found.
	fallback string
	now      func() time.Time
}

// runtimeLogger fans log events to a styled console sink and an optional dev-file sink.
type runtimeLogger struct {
	sinks          []*charmLog.Logger
	consoleSink    *charmLog.Logger
	consoleEnabled bool
	closeFile      func() error
	devLog         string
}

// newRuntimeLogger configures runtime log sinks from CLI/config state.
func newRuntimeLogger(stderr io.Writer, opts runtimeLoggerOptions, cfg config.LoggingConfig) (*runtimeLogger, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	if stderr == nil {
		stderr = io.Discard
	}
	newSink := func(w io.Writer, formatter charmLog.Formatter) *charmLog.Logger {
		sink := charmLog.NewWithOptions(w, charmLog.Options{
			Level:           level,
			Prefix:          opts.appName,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Formatter:       formatter,
		})
		if opts.sessionID != "" {
			sink = sink.With("session", opts.sessionID)
		}
		return sink
	}

	consoleLogger := newSink(stderr, charmLog.TextFormatter)
	logger := &runtimeLogger{
		sinks:          []*charmLog.Logger{consoleLogger},
		consoleSink:    consoleLogger,
		consoleEnabled: true,
	}
	if !opts.devMode || !cfg.DevFile.Enabled {
		return logger, nil
	}

	devLogPath, err := devLogFilePath(cfg.DevFile.Dir, opts.fallback, opts.appName, opts.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("resolve dev log file path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(devLogPath), 0o755); err != nil {
		return nil, fmt.Errorf("create dev log dir: %w", err)
	}
	logFile, err := os.OpenFile(devLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open dev log file: %w", err)
	}

	// Keep file output parseable and unstyled while preserving styled console logs.
	logger.sinks = append(logger.sinks, newSink(logFile, charmLog.LogfmtFormatter))
	logger.closeFile = logFile.Close
	logger.devLog = devLogPath
	return logger, nil
}

// DevLogPath returns the active dev log file path.
func (l *runtimeLogger) DevLogPath() string {
	if l == nil {
		return ""
	}
	return l.devLog
}

// Close closes the optional dev-file sink.
func (l *runtimeLogger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}

// SetConsoleEnabled toggles whether the console sink receives runtime events.
func (l *runtimeLogger) SetConsoleEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.consoleEnabled = enabled
}

func (l *runtimeLogger) log(level charmLog.Level, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	for _, sink := range l.sinks {
		if sink == l.consoleSink && !l.consoleEnabled {
			continue
		}
		sink.Log(level, msg, keyvals...)
	}
}

func (l *runtimeLogger) Debug(msg string, keyvals ...any) {
	l.log(charmLog.DebugLevel, msg, keyvals...)
}

func (l *runtimeLogger) Info(msg string, keyvals ...any) {
	l.log(charmLog.InfoLevel, msg, keyvals...)
}

func (l *runtimeLogger) Warn(msg string, keyvals ...any) {
	l.log(charmLog.WarnLevel, msg, keyvals...)
}

func (l *runtimeLogger) Error(msg string, keyvals ...any) {
	l.log(charmLog.ErrorLevel, msg, keyvals...)
}

// devLogFilePath resolves the dev log file for the current run day. Relative dirs resolve
// against the nearest workspace root, or against fallback outside of any workspace.
func devLogFilePath(dir, fallback, appName string, now time.Time) (string, error) {
	baseDir := strings.TrimSpace(dir)
	if baseDir == "" {
		baseDir = ".kanlite/log"
	}
	if !filepath.IsAbs(baseDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working dir: %w", err)
		}
		if root, ok := workspaceRootFrom(cwd); ok {
			baseDir = filepath.Join(root, baseDir)
		} else if strings.TrimSpace(fallback) != "" {
			baseDir = fallback
		} else {
			baseDir = filepath.Join(cwd, baseDir)
		}
	}
	fileName := fmt.Sprintf("%s-%s.log", sanitizeLogFileStem(appName), now.Format("20060102"))
	return filepath.Join(filepath.Clean(baseDir), fileName), nil
}

// workspaceRootFrom walks up from start to the nearest directory holding go.mod or .git.
func workspaceRootFrom(start string) (string, bool) {
	start = filepath.Clean(strings.TrimSpace(start))
	dir := start
	for {
		if hasWorkspaceMarker(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func hasWorkspaceMarker(dir string) bool {
	for _, marker := range []string{"go.mod", ".git"} {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// sanitizeLogFileStem normalizes app names into safe file-name segments.
func sanitizeLogFileStem(appName string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "-")
	stem := strings.Trim(replacer.Replace(strings.TrimSpace(appName)), "-")
	if stem == "" {
		return "kanlite"
	}
	return stem
}
