package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/travel"
)

func newAddCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		fields    travel.Fields
		dateFlag  string
		landmarks []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a place you have visited.",
		Long:  "add appends a new place to the travel log. Landmarks are comma separated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			fields.DateVisited = date
			fields.Landmarks = landmarks

			place, err := travel.NewPlace(fields)
			if err != nil {
				return err
			}

			if err := a.update(ctx, func(c *travel.Collection) error {
				return c.Add(place)
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s [%s]\n", place.Summary(), shortID(place.ID()))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Location, "location", "", "Place name (required)")
	cmd.Flags().StringVar(&fields.Country, "country", "", "Country")
	cmd.Flags().StringVar(&fields.TimeOfYear, "season", "", "Season or period, e.g. \"Late Summer\"")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Date visited in YYYY-MM-DD (default: today)")
	cmd.Flags().StringSliceVar(&landmarks, "landmarks", nil, "Comma-separated landmarks")
	cmd.Flags().StringVar(&fields.Notes, "notes", "", "Free-form notes")
	cmd.Flags().IntVar(&fields.Rating, "rating", 0, "Rating from 0 (unrated) to 5")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func newListCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		countryFlag string
		seasonFlag  string
		sortFlag    string
		outputJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places, optionally filtered and sorted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := a.settings.Sort()
			if cmd.Flags().Changed("sort") {
				var err error
				if order, err = travel.ParseSortOrder(sortFlag); err != nil {
					return err
				}
			}

			c, err := a.store.LoadCollection(ctx)
			if err != nil {
				return err
			}

			places := c.View(travel.Query{Country: countryFlag, Season: seasonFlag, Sort: order})
			if outputJSON {
				return printPlacesJSON(cmd, places)
			}
			if len(places) == 0 {
				if c.Count() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No places yet. Add one with `jejak add`.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No places match the filters.")
				}
				return nil
			}
			printPlaces(cmd, places)
			return nil
		},
	}

	cmd.Flags().StringVar(&countryFlag, "country", "", "Only places in this country (case-insensitive)")
	cmd.Flags().StringVar(&seasonFlag, "season", "", "Only places whose season contains this text")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "rating, alphabetical, recent, or none (default from config)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit places as JSON objects")

	return cmd
}

func printPlacesJSON(cmd *cobra.Command, places []*travel.Place) error {
	list := make([]travel.Snapshot, 0, len(places))
	for _, p := range places {
		list = append(list, p.Snapshot())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func newShowCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show every detail of a place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.LoadCollection(ctx)
			if err != nil {
				return err
			}
			place, err := resolvePlace(c, args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), place)
			return nil
		},
	}

	return cmd
}

func newDeleteCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a place from the travel log.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var removed *travel.Place
			err := a.update(ctx, func(c *travel.Collection) error {
				place, err := resolvePlace(c, args[0])
				if err != nil {
					return err
				}
				if !c.RemoveByID(place.ID()) {
					return fmt.Errorf("%w: %q", errPlaceNotFound, args[0])
				}
				removed = place
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", removed.Summary())
			return nil
		},
	}

	return cmd
}
