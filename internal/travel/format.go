package travel

import (
	"strings"
	"time"
)

// DisplayDateLayout renders dates as "January 2, 2006".
const DisplayDateLayout = "January 2, 2006"

// PreviewLength is how many runes of notes a gallery card shows.
const PreviewLength = 100

// Stars renders a rating as filled and hollow stars, always MaxRating wide.
func Stars(rating int) string {
	rating = max(0, min(rating, MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxRating-rating)
}

// FormatDate renders t for display, or "Unknown date" when t is zero.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown date"
	}
	return t.Format(DisplayDateLayout)
}

// Preview shortens notes to PreviewLength runes, appending "..." when cut.
func Preview(notes string) string {
	runes := []rune(notes)
	if len(runes) <= PreviewLength {
		return notes
	}
	return string(runes[:PreviewLength]) + "..."
}
