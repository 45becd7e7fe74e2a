package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/config"
)

func newInitCommand(a *app) *cobra.Command {
	var (
		formatFlag string
		sortFlag   string
		force      bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create the data directory and write config.yaml.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSettings: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.manager.ConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("check config: %w", err)
			}

			settings := config.DefaultSettings()
			if cmd.Flags().Changed("format") {
				settings.Format = formatFlag
			}
			if cmd.Flags().Changed("sort") {
				settings.DefaultSort = sortFlag
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			if err := a.manager.EnsureBase(); err != nil {
				return fmt.Errorf("create data directory: %w", err)
			}
			if err := settings.Save(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized jejak in %s\n", a.manager.BasePath())
			fmt.Fprintf(out, "Travel log: %s\n", a.manager.DataPath(settings.Format))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "json", "Storage format for the travel log: json or yaml")
	cmd.Flags().StringVar(&sortFlag, "sort", "recent", "Default sort: rating, alphabetical, recent, or none")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config.yaml")

	return cmd
}
