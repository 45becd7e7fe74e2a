package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/travel"
)

// editPlace resolves id, applies fn, and saves.
func (a *app) editPlace(ctx context.Context, id string, fn func(p *travel.Place) error) (*travel.Place, error) {
	var edited *travel.Place
	err := a.update(ctx, func(c *travel.Collection) error {
		place, err := resolvePlace(c, id)
		if err != nil {
			return err
		}
		if err := fn(place); err != nil {
			return err
		}
		edited = place
		return nil
	})
	return edited, err
}

func newRateCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Set a place's rating (0-5, 0 clears it).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be an integer between 0 and %d", travel.MaxRating)
			}

			place, err := a.editPlace(ctx, args[0], func(p *travel.Place) error {
				return p.UpdateRating(rating)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %s\n", place.Location(), travel.Stars(place.Rating()))
			return nil
		},
	}

	return cmd
}

func newNotesCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes <id> [text ...]",
		Short: "Replace a place's notes. Without text the notes are cleared.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")

			place, err := a.editPlace(ctx, args[0], func(p *travel.Place) error {
				p.UpdateNotes(text)
				return nil
			})
			if err != nil {
				return err
			}

			if place.Notes() == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared notes for %s\n", place.Location())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated notes for %s\n", place.Location())
			}
			return nil
		},
	}

	return cmd
}

func newLandmarkCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "landmark",
		Short: "Add or remove landmarks on a place.",
	}

	add := &cobra.Command{
		Use:   "add <id> <landmark ...>",
		Short: "Append a landmark.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			landmark := strings.Join(args[1:], " ")
			place, err := a.editPlace(ctx, args[0], func(p *travel.Place) error {
				return p.AddLandmark(landmark)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added landmark %q to %s\n", strings.TrimSpace(landmark), place.Location())
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id> <landmark ...>",
		Short: "Remove the first landmark matching exactly.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			landmark := strings.Join(args[1:], " ")
			place, err := a.editPlace(ctx, args[0], func(p *travel.Place) error {
				return p.RemoveLandmark(landmark)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed landmark %q from %s\n", landmark, place.Location())
			return nil
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}
