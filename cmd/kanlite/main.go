package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/evanschultz/kanlite/internal/app"
	"github.com/evanschultz/kanlite/internal/config"
	"github.com/evanschultz/kanlite/internal/domain"
	"github.com/evanschultz/kanlite/internal/i18n"
	"github.com/evanschultz/kanlite/internal/platform"
	"github.com/evanschultz/kanlite/internal/tui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// program is the part of *tea.Program the CLI needs.
type program interface {
	Run() (tea.Model, error)
}

// programFactory builds the TUI program; tests swap it for a fake.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := fang.Execute(context.Background(), root, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree against args. Tests drive the CLI through it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// rootOptions holds the resolved flag values shared by every command.
type rootOptions struct {
	configPath string
	locale     string
	appName    string
	devMode    bool
	noDemo     bool
}

// newRootCommand builds the kanlite command tree.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	opts := &rootOptions{appName: "kanlite", devMode: version == "dev"}
	if envDev, ok := parseBoolEnv("KANLITE_DEV_MODE"); ok {
		opts.devMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("KANLITE_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:           "kanlite",
		Short:         "A three-column kanban board for the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), opts, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config TOML")
	flags.StringVar(&opts.appName, "app", opts.appName, "application name for config/data path resolution")
	flags.BoolVar(&opts.devMode, "dev", opts.devMode, "use dev mode paths (<app>-dev)")
	root.Flags().StringVar(&opts.locale, "locale", "", "string catalog locale (overrides ui.locale)")
	root.Flags().BoolVar(&opts.noDemo, "no-demo", false, "start with an empty board")

	root.AddCommand(newPathsCommand(opts, stdout), newConfigCommand(opts, stdout))
	return root
}

// newPathsCommand prints the resolved runtime paths.
func newPathsCommand(opts *rootOptions, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and log paths",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			paths, err := opts.paths()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(stdout, "app: %s\n", opts.appName)
			_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", opts.devMode)
			_, _ = fmt.Fprintf(stdout, "config: %s\n", opts.resolveConfigPath(paths))
			_, _ = fmt.Fprintf(stdout, "log_dir: %s\n", paths.LogDir)
			return nil
		},
	}
}

// newConfigCommand prints the effective config, or writes it when --write is set.
func newConfigCommand(opts *rootOptions, stdout io.Writer) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			paths, err := opts.paths()
			if err != nil {
				return err
			}
			configPath := opts.resolveConfigPath(paths)
			cfg, err := config.Load(configPath, config.Default(), i18n.Locales())
			if err != nil {
				return fmt.Errorf("load config %q: %w", configPath, err)
			}
			if write {
				if err := config.Write(configPath, cfg); err != nil {
					return fmt.Errorf("write config %q: %w", configPath, err)
				}
				_, _ = fmt.Fprintf(stdout, "wrote %s\n", configPath)
				return nil
			}
			encoded, err := config.Encode(cfg)
			if err != nil {
				return err
			}
			_, err = stdout.Write(encoded)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the effective config to the config path")
	return cmd
}

func (o *rootOptions) paths() (platform.Paths, error) {
	return platform.Default(platform.Options{
		AppName: o.appName,
		DevMode: o.devMode,
	})
}

// resolveConfigPath applies --config, then KANLITE_CONFIG, then the platform default.
func (o *rootOptions) resolveConfigPath(paths platform.Paths) string {
	if path := strings.TrimSpace(o.configPath); path != "" {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv("KANLITE_CONFIG")); envPath != "" {
		return envPath
	}
	return paths.ConfigPath
}

// runBoard loads config and strings, seeds the board, and runs the TUI until it quits.
func runBoard(ctx context.Context, opts *rootOptions, stderr io.Writer) error {
	paths, err := opts.paths()
	if err != nil {
		return err
	}
	configPath := opts.resolveConfigPath(paths)

	cfg, err := config.Load(configPath, config.Default(), i18n.Locales())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}
	if locale := strings.TrimSpace(opts.locale); locale != "" {
		cfg.UI.Locale = strings.ToLower(locale)
	}
	if opts.noDemo {
		cfg.Board.DemoTasks = false
	}
	catalog, err := i18n.Load(cfg.UI.Locale)
	if err != nil {
		return fmt.Errorf("load strings: %w", err)
	}

	logger, err := newRuntimeLogger(stderr, runtimeLoggerOptions{
		appName:   opts.appName,
		devMode:   opts.devMode,
		sessionID: uuid.NewString(),
		fallback:  paths.LogDir,
		now:       time.Now,
	}, cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while the board is active.
	logger.SetConsoleEnabled(false)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
		}
	}()

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode, "locale", catalog.Locale())
	logger.Debug("runtime paths resolved", "config_path", configPath, "log_dir", paths.LogDir)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}
	if missing := catalog.Missing(); len(missing) > 0 {
		logger.Warn("string catalog incomplete", "locale", catalog.Locale(), "missing", strings.Join(missing, ","))
	}

	var seed []domain.Task
	if cfg.Board.DemoTasks {
		seed = app.DemoTasks(catalog.T)
	}
	board, err := app.NewBoard(seed)
	if err != nil {
		return fmt.Errorf("seed board: %w", err)
	}
	logger.Info("board ready", "tasks", board.Len(), "demo", cfg.Board.DemoTasks)

	m := tui.NewModel(
		board,
		tui.WithCatalog(catalog),
		tui.WithShowHelp(cfg.UI.ShowHelp),
		tui.WithIntentHook(func(in app.Intent, res app.Result) {
			if !res.Changed {
				logger.Debug("intent ignored", "intent", in.String())
				return
			}
			logger.Debug("intent applied", "intent", in.String(), "task_id", res.Task.ID, "status", string(res.Task.Status))
		}),
	)

	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	logger.Info("tui program loop complete", "tasks", board.Len())
	return nil
}

// parseBoolEnv reads a boolean env var. The second result is false when it is unset or unparseable.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
