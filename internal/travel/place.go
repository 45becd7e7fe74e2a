package travel

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical dateVisited format.
const DateLayout = "2006-01-02"

// MaxRating is the highest rating a place can hold. Zero means unrated.
const MaxRating = 5

// Fields carries user input for a new place, usually straight from a form or flags.
type Fields struct {
	Location    string
	Country     string
	TimeOfYear  string
	DateVisited string
	Landmarks   []string
	Notes       string
	Rating      int
}

// Snapshot is an independent copy of a place's fields, shaped for persistence and display.
type Snapshot struct {
	ID          string   `json:"id" yaml:"id"`
	Location    string   `json:"location" yaml:"location"`
	Landmarks   []string `json:"landmarks" yaml:"landmarks"`
	TimeOfYear  string   `json:"timeOfYear" yaml:"timeOfYear"`
	Notes       string   `json:"notes" yaml:"notes"`
	Country     string   `json:"country" yaml:"country"`
	DateVisited string   `json:"dateVisited" yaml:"dateVisited"`
	Rating      int      `json:"rating" yaml:"rating"`
}

// Equal reports whether s and o hold the same fields. A nil and an empty
// landmark list are equal.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.ID == o.ID &&
		s.Location == o.Location &&
		s.TimeOfYear == o.TimeOfYear &&
		s.Notes == o.Notes &&
		s.Country == o.Country &&
		s.DateVisited == o.DateVisited &&
		s.Rating == o.Rating &&
		slices.Equal(s.Landmarks, o.Landmarks)
}

// Place is one visited location. Fields are only changed through the mutators,
// each of which validates its input and leaves the place untouched on rejection.
type Place struct {
	id          string
	location    string
	country     string
	timeOfYear  string
	dateVisited string
	visited     time.Time
	landmarks   []string
	notes       string
	rating      int
}

// PlaceOption customizes place construction.
type PlaceOption func(*placeOptions)

type placeOptions struct {
	newID func() string
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen func() string) PlaceOption {
	return func(o *placeOptions) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// NewPlace builds a place from user input. Text is trimmed and blank landmarks are
// dropped, mirroring how a comma-separated landmark field is read.
func NewPlace(f Fields, opts ...PlaceOption) (*Place, error) {
	o := placeOptions{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	landmarks := make([]string, 0, len(f.Landmarks))
	for _, l := range f.Landmarks {
		if l = strings.TrimSpace(l); l != "" {
			landmarks = append(landmarks, l)
		}
	}

	return build(Snapshot{
		ID:          o.newID(),
		Location:    strings.TrimSpace(f.Location),
		Country:     strings.TrimSpace(f.Country),
		TimeOfYear:  strings.TrimSpace(f.TimeOfYear),
		DateVisited: strings.TrimSpace(f.DateVisited),
		Landmarks:   landmarks,
		Notes:       strings.TrimSpace(f.Notes),
		Rating:      f.Rating,
	})
}

// FromSnapshot rebuilds a place from persisted data, keeping its id.
// Unlike NewPlace it does not repair input: blank landmarks are an error.
func FromSnapshot(s Snapshot) (*Place, error) {
	return build(s)
}

func build(s Snapshot) (*Place, error) {
	p := &Place{
		id:          s.ID,
		location:    s.Location,
		country:     s.Country,
		timeOfYear:  s.TimeOfYear,
		dateVisited: s.DateVisited,
		landmarks:   slices.Clone(s.Landmarks),
		notes:       s.Notes,
		rating:      s.Rating,
	}
	if p.landmarks == nil {
		p.landmarks = []string{}
	}
	visited, err := ParseDate(s.DateVisited)
	if err != nil {
		return nil, err
	}
	p.visited = visited
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseDate accepts either DateLayout or RFC 3339.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDate, value)
}

// Validate reports whether the place satisfies the shape a Collection requires.
func (p *Place) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil place", ErrInvalidPlace)
	}
	if strings.TrimSpace(p.id) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(p.location) == "" {
		return ErrMissingLocation
	}
	if p.rating < 0 || p.rating > MaxRating {
		return ErrRatingOutOfRange
	}
	if p.visited.IsZero() {
		return fmt.Errorf("%w %q", ErrInvalidDate, p.dateVisited)
	}
	for _, l := range p.landmarks {
		if strings.TrimSpace(l) == "" {
			return ErrEmptyLandmark
		}
	}
	return nil
}

func (p *Place) ID() string          { return p.id }
func (p *Place) Location() string    { return p.location }
func (p *Place) Country() string     { return p.country }
func (p *Place) TimeOfYear() string  { return p.timeOfYear }
func (p *Place) DateVisited() string { return p.dateVisited }
func (p *Place) Notes() string       { return p.notes }
func (p *Place) Rating() int         { return p.rating }

// Visited returns the parsed dateVisited.
func (p *Place) Visited() time.Time { return p.visited }

// Landmarks returns a copy of the landmark list.
func (p *Place) Landmarks() []string { return slices.Clone(p.landmarks) }

// AddLandmark appends the trimmed landmark. Duplicates are allowed.
func (p *Place) AddLandmark(landmark string) error {
	landmark = strings.TrimSpace(landmark)
	if landmark == "" {
		return ErrEmptyLandmark
	}
	p.landmarks = append(p.landmarks, landmark)
	return nil
}

// RemoveLandmark drops the first exact match.
func (p *Place) RemoveLandmark(landmark string) error {
	idx := slices.Index(p.landmarks, landmark)
	if idx < 0 {
		return ErrLandmarkNotFound
	}
	p.landmarks = slices.Delete(p.landmarks, idx, idx+1)
	return nil
}

// UpdateRating sets the rating when it lies within 0..MaxRating.
func (p *Place) UpdateRating(rating int) error {
	if rating < 0 || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	p.rating = rating
	return nil
}

// UpdateNotes replaces the notes with the trimmed text.
func (p *Place) UpdateNotes(notes string) {
	p.notes = strings.TrimSpace(notes)
}

// IsVisitedInSeason reports whether season appears in timeOfYear, ignoring case.
func (p *Place) IsVisitedInSeason(season string) bool {
	return strings.Contains(strings.ToLower(p.timeOfYear), strings.ToLower(season))
}

// Summary renders "{location}, {country} - Visited in {timeOfYear}".
func (p *Place) Summary() string {
	return fmt.Sprintf("%s, %s - Visited in %s", p.location, p.country, p.timeOfYear)
}

// Snapshot copies every field. The landmark slice is not shared with the place.
func (p *Place) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.id,
		Location:    p.location,
		Landmarks:   slices.Clone(p.landmarks),
		TimeOfYear:  p.timeOfYear,
		Notes:       p.notes,
		Country:     p.country,
		DateVisited: p.dateVisited,
		Rating:      p.rating,
	}
}
