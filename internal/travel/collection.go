package travel

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Store is the persistence port the presentation layer drives. The Collection never calls it.
type Store interface {
	Load(ctx context.Context) ([]Snapshot, error)
	Save(ctx context.Context, snapshots []Snapshot) error
}

// Collection is an insertion-ordered set of places. It is not safe for concurrent use;
// callers serialize access.
type Collection struct {
	places []*Place
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// SkippedRecord reports a snapshot Restore left out. The snapshot is kept so a
// caller can write it back untouched.
type SkippedRecord struct {
	Index    int
	Snapshot Snapshot
	Err      error
}

func (e *SkippedRecord) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *SkippedRecord) Unwrap() error {
	return e.Err
}

// Restore rebuilds a collection from snapshots. Malformed entries and repeated ids are
// skipped; each skip is reported as a *SkippedRecord so callers can log or keep it.
func Restore(snapshots []Snapshot) (*Collection, []error) {
	c := NewCollection()
	seen := make(map[string]struct{}, len(snapshots))
	var skipped []error
	skip := func(i int, s Snapshot, err error) {
		s.Landmarks = slices.Clone(s.Landmarks)
		skipped = append(skipped, &SkippedRecord{Index: i, Snapshot: s, Err: err})
	}
	for i, s := range snapshots {
		if _, dup := seen[s.ID]; dup {
			skip(i, s, fmt.Errorf("%w %q", ErrDuplicateID, s.ID))
			continue
		}
		p, err := FromSnapshot(s)
		if err != nil {
			skip(i, s, err)
			continue
		}
		seen[s.ID] = struct{}{}
		c.places = append(c.places, p)
	}
	return c, skipped
}

// Add appends a place after checking its shape.
func (c *Collection) Add(p *Place) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlace, err)
	}
	c.places = append(c.places, p)
	return nil
}

// RemoveByID deletes the place with the given id. It reports false when none matches.
func (c *Collection) RemoveByID(id string) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.places = slices.Delete(c.places, idx, idx+1)
	return true
}

// GetByID looks a place up by id.
func (c *Collection) GetByID(id string) (*Place, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return c.places[idx], true
}

// Has reports whether a place with id exists.
func (c *Collection) Has(id string) bool {
	return c.indexOf(id) >= 0
}

func (c *Collection) indexOf(id string) int {
	return slices.IndexFunc(c.places, func(p *Place) bool { return p.id == id })
}

// All returns the places in insertion order. The slice is a copy.
func (c *Collection) All() []*Place {
	return slices.Clone(c.places)
}

// Snapshots copies every place, in insertion order.
func (c *Collection) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(c.places))
	for _, p := range c.places {
		out = append(out, p.Snapshot())
	}
	return out
}

// Count returns the number of places.
func (c *Collection) Count() int {
	return len(c.places)
}

// ByCountry returns places whose country equals country, ignoring case.
func (c *Collection) ByCountry(country string) []*Place {
	return filter(c.places, func(p *Place) bool { return strings.EqualFold(p.country, country) })
}

// BySeason returns places visited in season.
func (c *Collection) BySeason(season string) []*Place {
	return filter(c.places, func(p *Place) bool { return p.IsVisitedInSeason(season) })
}

// SortedByRating returns a new slice ordered by rating, highest first.
// Ties keep insertion order.
func (c *Collection) SortedByRating() []*Place {
	out := slices.Clone(c.places)
	sortByRating(out)
	return out
}

func filter(places []*Place, keep func(*Place) bool) []*Place {
	out := make([]*Place, 0, len(places))
	for _, p := range places {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
