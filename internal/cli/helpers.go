package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/jejak/internal/travel"
)

// shortIDLength is how much of an id list output shows. Any unique prefix is accepted back.
const shortIDLength = 8

var (
	errPlaceNotFound = errors.New("place not found")
	errAmbiguousID   = errors.New("id prefix matches more than one place")
)

func resolveDate(dateFlag string) (string, error) {
	if dateFlag == "" {
		return time.Now().In(time.Local).Format(travel.DateLayout), nil
	}
	if _, err := travel.ParseDate(dateFlag); err != nil {
		return "", fmt.Errorf("parse date: %w", err)
	}
	return dateFlag, nil
}

// resolvePlace finds a place by full id or by a unique id prefix.
func resolvePlace(c *travel.Collection, id string) (*travel.Place, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	if p, ok := c.GetByID(id); ok {
		return p, nil
	}

	var match *travel.Place
	for _, p := range c.All() {
		if !strings.HasPrefix(p.ID(), id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q", errAmbiguousID, id)
		}
		match = p
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", errPlaceNotFound, id)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func formatCard(p *travel.Place) string {
	var builder strings.Builder
	builder.Grow(64 + len(p.Location()) + len(p.Country()))

	fmt.Fprintf(&builder, "[%s] %s %s", shortID(p.ID()), travel.Stars(p.Rating()), p.Location())
	if p.Country() != "" {
		builder.WriteString(", ")
		builder.WriteString(p.Country())
	}
	fmt.Fprintf(&builder, " (%s", travel.FormatDate(p.Visited()))
	if p.TimeOfYear() != "" {
		builder.WriteString(", ")
		builder.WriteString(p.TimeOfYear())
	}
	builder.WriteByte(')')

	return builder.String()
}

func printPlaces(cmd *cobra.Command, places []*travel.Place) {
	out := cmd.OutOrStdout()
	for i, p := range places {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatCard(p))
		if p.Notes() != "" {
			fmt.Fprintf(out, "   %s\n", travel.Preview(p.Notes()))
		}
	}
}

func printDetail(out io.Writer, p *travel.Place) {
	fmt.Fprintf(out, "%s\n", p.Location())
	if p.Country() != "" {
		fmt.Fprintf(out, "%s\n", p.Country())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:            %s\n", p.ID())
	fmt.Fprintf(out, "Date visited:  %s\n", travel.FormatDate(p.Visited()))
	fmt.Fprintf(out, "Season/period: %s\n", p.TimeOfYear())
	fmt.Fprintf(out, "Rating:        %s\n", travel.Stars(p.Rating()))

	if landmarks := p.Landmarks(); len(landmarks) > 0 {
		fmt.Fprintln(out, "Landmarks:")
		for _, l := range landmarks {
			fmt.Fprintf(out, "  - %s\n", l)
		}
	}
	if p.Notes() != "" {
		fmt.Fprintln(out, "Notes:")
		fmt.Fprintf(out, "  %s\n", p.Notes())
	}
}
