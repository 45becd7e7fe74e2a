package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/logbook"
	"github.com/faizmokh/jejak/internal/travel"
)

func newStatsCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize places, countries, and ratings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.LoadCollection(ctx)
			if err != nil {
				return err
			}
			printStats(cmd, c.Stats())
			return nil
		},
	}

	return cmd
}

func printStats(cmd *cobra.Command, s travel.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Places:         %d\n", s.Places)
	fmt.Fprintf(out, "Countries:      %d\n", s.Countries)
	fmt.Fprintf(out, "Average rating: %.1f\n", s.AverageRating)
}

func newCountriesCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the distinct countries in the log.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.LoadCollection(ctx)
			if err != nil {
				return err
			}
			countries := c.Countries()
			if len(countries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no countries)")
				return nil
			}
			for _, country := range countries {
				fmt.Fprintln(cmd.OutOrStdout(), country)
			}
			return nil
		},
	}

	return cmd
}

var errNoState = errors.New("store does not report its state")

func newStatusCommand(ctx context.Context, a *app) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where the log lives and how the last load went.",
		Long: "status loads the travel log and reports the store's state. Skipped records failed to " +
			"decode or validate; they are kept in the file untouched and counted as kept.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.store.LoadCollection(ctx); err != nil {
				return err
			}

			var component any = a.store
			intro, ok := component.(introspection.Introspectable)
			if !ok {
				return errNoState
			}
			state, ok := intro.State().(logbook.StoreState)
			if !ok {
				return errNoState
			}

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}

			kind := "unknown"
			if c, ok := component.(introspection.Component); ok {
				kind = c.ComponentType()
			}
			printStatus(cmd, kind, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the store state as JSON")
	return cmd
}

func printStatus(cmd *cobra.Command, kind string, s logbook.StoreState) {
	lastSave := "never"
	if s.LastSave != nil {
		lastSave = s.LastSave.Format(time.RFC3339)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Component: %s\n", kind)
	fmt.Fprintf(out, "Path:      %s\n", s.Path)
	fmt.Fprintf(out, "Format:    %s\n", s.Format)
	fmt.Fprintf(out, "Loaded:    %d\n", s.LastLoaded)
	fmt.Fprintf(out, "Skipped:   %d\n", s.LastSkipped)
	fmt.Fprintf(out, "Kept:      %d\n", s.Kept)
	fmt.Fprintf(out, "Last save: %s\n", lastSave)
}
