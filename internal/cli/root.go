package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/notify"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"

	// Storage backends register themselves with store.Open.
	_ "github.com/idilsaglam/packlist/internal/store/badgerstore"
	_ "github.com/idilsaglam/packlist/internal/store/jsonstore"
	_ "github.com/idilsaglam/packlist/internal/store/sqlitestore"
)

// App carries resolved settings and the open store for one invocation.
type App struct {
	Backend string
	Dir     string
	Key     string
	Theme   string
	Debug   bool

	cfg     config.Config
	kv      store.KV
	logFile *os.File
}

// usageError is an input problem found before the store is involved.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "packlist",
		Short:         "Trip packing lists (local-first CLI + TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  packlist

  # Scriptable commands
  packlist trips add "Ski Trip" --date 2099-02-01
  packlist categories add "Ski Trip" Gear
  packlist items add "Ski Trip" Gear Goggles
  packlist items toggle "Ski Trip" Gear Goggles
  packlist show "Ski Trip"
`),
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&app.Backend, "backend", "", "Storage backend (json|sqlite|badger|memory)")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data directory for the storage backend")
	cmd.PersistentFlags().StringVar(&app.Key, "key", "", "Storage key holding the trips")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Output theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Log debug output")

	cmd.AddCommand(newTripsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	return cmd
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := &App{}
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	_ = app.close()
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var (
		verr *packing.ValidationError
		nf   *packing.NotFoundError
		perr *packing.PersistenceError
		uerr usageError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &nf):
		// Already reported through the notification sink.
		return 2
	case errors.As(err, &perr):
		return 1
	case errors.As(err, &uerr):
		ui.FailTo(stderr, uerr.msg)
		return 2
	}
	ui.FailTo(stderr, err.Error())
	if strings.Contains(err.Error(), "unknown command") || strings.Contains(err.Error(), "arg(s)") ||
		strings.Contains(err.Error(), "flag") {
		return 2
	}
	return 1
}

// configure merges config file, env and flags, then sets up theme and logging.
func (a *App) configure(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.Backend
	}
	if flags.Changed("dir") {
		cfg.Dir = a.Dir
	}
	if flags.Changed("key") {
		cfg.Key = a.Key
	}
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if a.Debug {
		cfg.Debug = true
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	logging.SetDebug(cfg.Debug)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		logging.SetOutput(f)
	case cfg.Debug:
		logging.SetOutput(cmd.ErrOrStderr())
	default:
		logging.SetOutput(io.Discard)
	}
	return nil
}

// openStore opens the configured backend and loads the trips. Load problems
// are reported through sink and are not fatal.
func (a *App) openStore(ctx context.Context, sink notify.Sink) (*packing.Store, error) {
	kv, err := store.Open(a.cfg.Backend, a.cfg.Dir)
	if err != nil {
		return nil, err
	}
	a.kv = kv
	logging.Debug("cli", "opened %s store in %s", a.cfg.Backend, a.cfg.Dir)

	s := packing.New(kv, packing.WithKey(a.cfg.Key), packing.WithSink(sink))
	if err := s.Load(ctx); err != nil {
		logging.Info("cli", "continuing after load problem: %v", err)
	}
	return s, nil
}

// consoleStore opens the store with notifications printed to the command's streams.
func (a *App) consoleStore(cmd *cobra.Command) (*packing.Store, error) {
	return a.openStore(cmd.Context(), ui.ConsoleSink{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
}

func (a *App) runTUI(ctx context.Context) error {
	// The TUI owns the terminal, so logs never go to stderr here.
	if a.logFile == nil {
		logging.SetOutput(io.Discard)
		if a.cfg.Debug {
			f, err := os.OpenFile("packlist-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			a.logFile = f
			logging.SetOutput(f)
		}
	}
	toasts := tui.NewToasts()
	s, err := a.openStore(ctx, toasts)
	if err != nil {
		return err
	}
	return tui.Run(ctx, s, toasts)
}

func (a *App) close() error {
	var err error
	if a.kv != nil {
		err = a.kv.Close()
		a.kv = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
		logging.SetOutput(io.Discard)
	}
	return err
}
