package travel

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects how a View is ordered.
type SortOrder uint8

const (
	// SortNone keeps insertion order.
	SortNone SortOrder = iota
	// SortRating orders by rating, highest first.
	SortRating
	// SortAlphabetical orders by location using locale-aware collation.
	SortAlphabetical
	// SortRecent orders by dateVisited, newest first.
	SortRecent
)

var sortNames = map[SortOrder]string{
	SortNone:         "none",
	SortRating:       "rating",
	SortAlphabetical: "alphabetical",
	SortRecent:       "recent",
}

func (s SortOrder) String() string {
	if name, ok := sortNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", uint8(s))
}

// ParseSortOrder maps a flag value to a SortOrder. Empty input means SortNone.
func ParseSortOrder(value string) (SortOrder, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return SortNone, nil
	}
	for order, name := range sortNames {
		if name == value {
			return order, nil
		}
	}
	return SortNone, fmt.Errorf("invalid sort %q (expected rating|alphabetical|recent|none)", value)
}

// Query describes a filtered, sorted view. Empty filters match everything.
type Query struct {
	Country string
	Season  string
	Sort    SortOrder
}

// View applies q's filters (country AND season) and ordering. All sorts are stable.
func (c *Collection) View(q Query) []*Place {
	out := filter(c.places, func(p *Place) bool {
		if q.Country != "" && !strings.EqualFold(p.country, q.Country) {
			return false
		}
		if q.Season != "" && !p.IsVisitedInSeason(q.Season) {
			return false
		}
		return true
	})

	switch q.Sort {
	case SortRating:
		sortByRating(out)
	case SortAlphabetical:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *Place) int {
			return col.CompareString(a.location, b.location)
		})
	case SortRecent:
		// Zero dates compare as the earliest instant and land last.
		slices.SortStableFunc(out, func(a, b *Place) int {
			return b.visited.Compare(a.visited)
		})
	}
	return out
}

func sortByRating(places []*Place) {
	slices.SortStableFunc(places, func(a, b *Place) int {
		return b.rating - a.rating
	})
}

// Countries returns the distinct country labels, collated ascending.
func (c *Collection) Countries() []string {
	seen := make(map[string]struct{}, len(c.places))
	var out []string
	for _, p := range c.places {
		if _, ok := seen[p.country]; ok {
			continue
		}
		seen[p.country] = struct{}{}
		out = append(out, p.country)
	}
	collate.New(language.English).SortStrings(out)
	return out
}

// Stats summarizes the collection for the gallery header.
type Stats struct {
	Places        int     `json:"places"`
	Countries     int     `json:"countries"`
	AverageRating float64 `json:"average_rating"`
}

// Stats counts places and distinct countries and averages ratings.
// Unrated places count toward the average as zero.
func (c *Collection) Stats() Stats {
	s := Stats{Places: len(c.places), Countries: len(c.Countries())}
	if s.Places == 0 {
		return s
	}
	total := 0
	for _, p := range c.places {
		total += p.rating
	}
	s.AverageRating = float64(total) / float64(s.Places)
	return s
}
