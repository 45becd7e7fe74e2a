package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/travel"
)

func newImportCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <glob>",
		Short: "Merge places from JSON or YAML files matching a glob (** allowed).",
		Long:  "import appends places from other travel logs. Only .json, .yaml and .yml matches are read; other files are ignored. Places whose id is already present, or that fail validation, are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := a.store.Import(ctx, args[0])
			if err != nil {
				return err
			}

			var added, skipped int
			err = a.update(ctx, func(c *travel.Collection) error {
				for _, s := range snapshots {
					if c.Has(s.ID) {
						a.logger.Info("skipping known place", "id", s.ID)
						skipped++
						continue
					}
					place, err := travel.FromSnapshot(s)
					if err != nil {
						a.logger.Warn("skipping invalid place", "id", s.ID, "error", err)
						skipped++
						continue
					}
					if err := c.Add(place); err != nil {
						return err
					}
					added++
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d place%s (%d skipped)\n", added, plural(added), skipped)
			return nil
		},
	}

	return cmd
}

func newExportCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the travel log to a .json, .yaml, or .md file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.LoadCollection(ctx)
			if err != nil {
				return err
			}
			if err := a.store.Export(ctx, args[0], c.Snapshots()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d place%s to %s\n", c.Count(), plural(c.Count()), args[0])
			return nil
		},
	}

	return cmd
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
