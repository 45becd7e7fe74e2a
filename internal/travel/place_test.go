package travel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() PlaceOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("place-%d", n)
	})
}

func newTestPlace(t *testing.T, f Fields, opts ...PlaceOption) *Place {
	t.Helper()
	if f.Location == "" {
		f.Location = "Lisbon"
	}
	if f.DateVisited == "" {
		f.DateVisited = "2024-06-01"
	}
	p, err := NewPlace(f, opts...)
	require.NoError(t, err)
	return p
}

func TestNewPlaceTrimsInputAndDropsBlankLandmarks(t *testing.T) {
	p, err := NewPlace(Fields{
		Location:    "  Kyoto ",
		Country:     " Japan",
		TimeOfYear:  "Early Spring ",
		DateVisited: "2023-04-02",
		Landmarks:   []string{" Fushimi Inari ", "", "   ", "Kinkaku-ji"},
		Notes:       "  cherry blossoms  ",
		Rating:      5,
	}, WithIDGenerator(func() string { return "fixed" }))
	require.NoError(t, err)

	assert.Equal(t, "fixed", p.ID())
	assert.Equal(t, "Kyoto", p.Location())
	assert.Equal(t, "Japan", p.Country())
	assert.Equal(t, "Early Spring", p.TimeOfYear())
	assert.Equal(t, []string{"Fushimi Inari", "Kinkaku-ji"}, p.Landmarks())
	assert.Equal(t, "cherry blossoms", p.Notes())
	assert.Equal(t, 5, p.Rating())
	assert.Equal(t, 2023, p.Visited().Year())
}

func TestNewPlaceDefaultIDsAreUnique(t *testing.T) {
	a := newTestPlace(t, Fields{})
	b := newTestPlace(t, Fields{})
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewPlaceRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   error
	}{
		{"missing location", Fields{Location: "  ", DateVisited: "2024-01-01"}, ErrMissingLocation},
		{"rating too high", Fields{Location: "Oslo", DateVisited: "2024-01-01", Rating: 6}, ErrRatingOutOfRange},
		{"negative rating", Fields{Location: "Oslo", DateVisited: "2024-01-01", Rating: -1}, ErrRatingOutOfRange},
		{"empty date", Fields{Location: "Oslo"}, ErrInvalidDate},
		{"garbage date", Fields{Location: "Oslo", DateVisited: "last summer"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlace(tt.fields)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseDateAcceptsRFC3339(t *testing.T) {
	got, err := ParseDate("2024-03-10T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Day())
}

func TestUpdateRating(t *testing.T) {
	p := newTestPlace(t, Fields{Rating: 3})

	for r := -2; r <= 7; r++ {
		before := p.Rating()
		err := p.UpdateRating(r)
		if r >= 0 && r <= 5 {
			require.NoError(t, err, "rating %d", r)
			assert.Equal(t, r, p.Rating())
		} else {
			assert.ErrorIs(t, err, ErrRatingOutOfRange, "rating %d", r)
			assert.Equal(t, before, p.Rating(), "rating changed on rejected %d", r)
		}
	}
}

func TestAddLandmark(t *testing.T) {
	p := newTestPlace(t, Fields{})

	require.NoError(t, p.AddLandmark("  Belém Tower "))
	require.NoError(t, p.AddLandmark("Belém Tower"))
	assert.ErrorIs(t, p.AddLandmark(""), ErrEmptyLandmark)
	assert.ErrorIs(t, p.AddLandmark(" \t\n"), ErrEmptyLandmark)

	assert.Equal(t, []string{"Belém Tower", "Belém Tower"}, p.Landmarks())
}

func TestRemoveLandmark(t *testing.T) {
	p := newTestPlace(t, Fields{Landmarks: []string{"A", "B", "A", "C"}})

	assert.ErrorIs(t, p.RemoveLandmark("Z"), ErrLandmarkNotFound)
	assert.Equal(t, []string{"A", "B", "A", "C"}, p.Landmarks())

	require.NoError(t, p.RemoveLandmark("A"))
	assert.Equal(t, []string{"B", "A", "C"}, p.Landmarks())

	// Exact match only: trimmed or case-folded input does not count.
	assert.ErrorIs(t, p.RemoveLandmark("b"), ErrLandmarkNotFound)
	assert.ErrorIs(t, p.RemoveLandmark(" B"), ErrLandmarkNotFound)
}

func TestLandmarksReturnsCopy(t *testing.T) {
	p := newTestPlace(t, Fields{Landmarks: []string{"A"}})
	got := p.Landmarks()
	got[0] = "mutated"
	assert.Equal(t, []string{"A"}, p.Landmarks())
}

func TestUpdateNotesTrims(t *testing.T) {
	p := newTestPlace(t, Fields{Notes: "old"})
	p.UpdateNotes("  new notes \n")
	assert.Equal(t, "new notes", p.Notes())
	p.UpdateNotes("")
	assert.Equal(t, "", p.Notes())
}

func TestIsVisitedInSeason(t *testing.T) {
	late := newTestPlace(t, Fields{TimeOfYear: "Late Summer"})
	winter := newTestPlace(t, Fields{TimeOfYear: "Winter"})

	assert.True(t, late.IsVisitedInSeason("summer"))
	assert.True(t, late.IsVisitedInSeason("SUMMER"))
	assert.False(t, winter.IsVisitedInSeason("summer"))
}

func TestSummary(t *testing.T) {
	p := newTestPlace(t, Fields{Location: "Paris", Country: "France", TimeOfYear: "Autumn"})
	assert.Equal(t, "Paris, France - Visited in Autumn", p.Summary())
}

func TestSnapshotDoesNotAliasLandmarks(t *testing.T) {
	p := newTestPlace(t, Fields{Landmarks: []string{"A", "B"}})
	snap := p.Snapshot()
	snap.Landmarks[0] = "changed"
	require.NoError(t, p.AddLandmark("C"))

	assert.Equal(t, []string{"changed", "B"}, snap.Landmarks)
	assert.Equal(t, []string{"A", "B", "C"}, p.Landmarks())
}

func TestFromSnapshotKeepsIDAndValidates(t *testing.T) {
	p, err := FromSnapshot(Snapshot{ID: "abc", Location: "Rome", DateVisited: "2022-09-01", Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID())
	assert.Equal(t, []string{}, p.Landmarks())

	_, err = FromSnapshot(Snapshot{Location: "Rome", DateVisited: "2022-09-01"})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = FromSnapshot(Snapshot{ID: "x", Location: "Rome", DateVisited: "2022-09-01", Landmarks: []string{" "}})
	assert.ErrorIs(t, err, ErrEmptyLandmark)

	_, err = FromSnapshot(Snapshot{ID: "x", Location: "Rome", DateVisited: "2022-09-01", Rating: 9})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}
