package logbook

import (
	"fmt"
	"strings"

	"github.com/faizmokh/jejak/internal/travel"
)

const markdownTitle = "# Travel Log\n"

// markdownCodec renders a readable journal. It is write-only.
type markdownCodec struct{}

func (markdownCodec) Encode(snapshots []travel.Snapshot, _ ...any) ([]byte, error) {
	var b strings.Builder
	b.WriteString(markdownTitle)
	for _, s := range snapshots {
		b.WriteByte('\n')
		b.WriteString(formatMarkdownSection(s))
	}
	return []byte(b.String()), nil
}

func (markdownCodec) Decode([]byte) ([]travel.Snapshot, []error, error) {
	return nil, nil, fmt.Errorf("%w: markdown is export-only", ErrUnsupportedFormat)
}

func formatMarkdownSection(s travel.Snapshot) string {
	var b strings.Builder
	b.Grow(128 + len(s.Notes))

	fmt.Fprintf(&b, "## %s", s.Location)
	if s.Country != "" {
		fmt.Fprintf(&b, ", %s", s.Country)
	}
	b.WriteByte('\n')

	visited := s.DateVisited
	if t, err := travel.ParseDate(s.DateVisited); err == nil {
		visited = travel.FormatDate(t)
	}
	fmt.Fprintf(&b, "- Visited: %s", visited)
	if s.TimeOfYear != "" {
		fmt.Fprintf(&b, " (%s)", s.TimeOfYear)
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- Rating: %s\n", travel.Stars(s.Rating))
	if len(s.Landmarks) > 0 {
		fmt.Fprintf(&b, "- Landmarks: %s\n", strings.Join(s.Landmarks, ", "))
	}
	fmt.Fprintf(&b, "- ID: `%s`\n", s.ID)
	if s.Notes != "" {
		b.WriteByte('\n')
		b.WriteString(s.Notes)
		b.WriteByte('\n')
	}
	return b.String()
}
