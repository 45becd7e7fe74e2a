package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/config"
	"github.com/faizmokh/jejak/internal/files"
	"github.com/faizmokh/jejak/internal/logbook"
	"github.com/faizmokh/jejak/internal/travel"
	"github.com/faizmokh/jejak/internal/ui"
	"github.com/faizmokh/jejak/internal/version"
)

// app bundles the collaborators every command needs.
type app struct {
	manager  *files.Manager
	settings *config.Settings
	store    *logbook.Store
	logger   *slog.Logger
}

// skipSettings marks commands that must run even when config.yaml is invalid.
const skipSettings = "jejak.skip-settings"

func newApp(manager *files.Manager) (*app, error) {
	a := &app{manager: manager}
	if err := a.open(); err != nil {
		return nil, err
	}
	return a, nil
}

// open loads settings and wires the store. It is a no-op once it has succeeded.
func (a *app) open() error {
	if a.store != nil {
		return nil
	}

	settings, err := config.Load(a.manager.ConfigPath())
	if err != nil {
		return fmt.Errorf("load settings: %w (run `jejak init --force` to reset)", err)
	}
	logger := settings.NewLogger()

	store, err := logbook.NewStore(a.manager.DataPath(settings.Format), logbook.WithLogger(logger))
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	a.store = store
	return nil
}

// update loads the collection, applies fn, and saves when fn succeeds.
func (a *app) update(ctx context.Context, fn func(c *travel.Collection) error) error {
	c, err := a.store.LoadCollection(ctx)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return a.store.SaveCollection(ctx, c)
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
// Settings are loaded lazily so init and version still work with a broken config.
func NewRootCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	a := &app{manager: manager}

	cmd := &cobra.Command{
		Use:   "jejak",
		Short: "Keep a travel log of the places you have visited.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, a.store, ui.WithSort(a.settings.Sort()))
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSettings] != "" || cmd.Name() == "help" {
				return nil
			}
			return a.open()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(ctx, a),
		newListCommand(ctx, a),
		newShowCommand(ctx, a),
		newDeleteCommand(ctx, a),
		newRateCommand(ctx, a),
		newNotesCommand(ctx, a),
		newLandmarkCommand(ctx, a),
		newStatsCommand(ctx, a),
		newCountriesCommand(ctx, a),
		newImportCommand(ctx, a),
		newExportCommand(ctx, a),
		newStatusCommand(ctx, a),
		newInitCommand(a),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSettings: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jejak %s\n", version.Info())
		},
	}
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	return NewRootCommand(ctx, manager).ExecuteContext(ctx)
}

// Main is a helper used by cmd/jejak/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
