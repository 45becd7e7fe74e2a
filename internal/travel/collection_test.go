package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(places []*Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID())
	}
	return out
}

func TestCollectionAddRejectsMalformedPlaces(t *testing.T) {
	c := NewCollection()

	assert.ErrorIs(t, c.Add(nil), ErrInvalidPlace)

	err := c.Add(&Place{})
	assert.ErrorIs(t, err, ErrInvalidPlace)
	assert.ErrorIs(t, err, ErrMissingID)

	assert.Equal(t, 0, c.Count())
}

func TestCollectionGetAndRemove(t *testing.T) {
	gen := sequentialIDs()
	c := NewCollection()
	a := newTestPlace(t, Fields{Location: "A"}, gen)
	b := newTestPlace(t, Fields{Location: "B"}, gen)
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))

	got, ok := c.GetByID(b.ID())
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = c.GetByID("missing")
	assert.False(t, ok)

	assert.False(t, c.RemoveByID("missing"))
	assert.Equal(t, 2, c.Count())

	assert.True(t, c.RemoveByID(a.ID()))
	assert.Equal(t, 1, c.Count())
	assert.False(t, c.Has(a.ID()))
	assert.Equal(t, []string{b.ID()}, ids(c.All()))
}

func TestCollectionAllIsACopy(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(newTestPlace(t, Fields{})))

	all := c.All()
	all[0] = nil
	_ = append(all, newTestPlace(t, Fields{}))

	assert.Equal(t, 1, c.Count())
	assert.NotNil(t, c.All()[0])
}

func TestCollectionByCountryIgnoresCase(t *testing.T) {
	c := NewCollection()
	fr := newTestPlace(t, Fields{Country: "France"})
	it := newTestPlace(t, Fields{Country: "Italy"})
	require.NoError(t, c.Add(fr))
	require.NoError(t, c.Add(it))

	assert.Equal(t, []string{fr.ID()}, ids(c.ByCountry("france")))
	assert.Empty(t, c.ByCountry("Franc"))
}

func TestCollectionBySeason(t *testing.T) {
	c := NewCollection()
	late := newTestPlace(t, Fields{TimeOfYear: "Late Summer"})
	winter := newTestPlace(t, Fields{TimeOfYear: "Winter"})
	require.NoError(t, c.Add(late))
	require.NoError(t, c.Add(winter))

	assert.Equal(t, []string{late.ID()}, ids(c.BySeason("summer")))
}

func TestSortedByRatingIsStable(t *testing.T) {
	gen := sequentialIDs()
	c := NewCollection()
	a := newTestPlace(t, Fields{Rating: 3}, gen)
	b := newTestPlace(t, Fields{Rating: 5}, gen)
	d := newTestPlace(t, Fields{Rating: 3}, gen)
	for _, p := range []*Place{a, b, d} {
		require.NoError(t, c.Add(p))
	}

	assert.Equal(t, []string{b.ID(), a.ID(), d.ID()}, ids(c.SortedByRating()))
	// The collection itself keeps insertion order.
	assert.Equal(t, []string{a.ID(), b.ID(), d.ID()}, ids(c.All()))
}

func TestScenarioAddThreeThenSortByRating(t *testing.T) {
	gen := sequentialIDs()
	c := NewCollection()
	var added []*Place
	for _, r := range []int{2, 5, 5} {
		p := newTestPlace(t, Fields{Rating: r}, gen)
		require.NoError(t, c.Add(p))
		added = append(added, p)
	}

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, []string{added[1].ID(), added[2].ID(), added[0].ID()}, ids(c.SortedByRating()))
}

func TestRestoreRoundTrip(t *testing.T) {
	gen := sequentialIDs()
	c := NewCollection()
	require.NoError(t, c.Add(newTestPlace(t, Fields{Location: "Kyoto", Country: "Japan", Landmarks: []string{"Gion"}, Rating: 4}, gen)))
	require.NoError(t, c.Add(newTestPlace(t, Fields{Location: "Porto", Notes: "port wine"}, gen)))

	restored, skipped := Restore(c.Snapshots())
	assert.Empty(t, skipped)
	assert.Equal(t, c.Snapshots(), restored.Snapshots())
}

func TestRestoreSkipsMalformedAndDuplicateRecords(t *testing.T) {
	snaps := []Snapshot{
		{ID: "1", Location: "Good", DateVisited: "2024-01-01", Rating: 2},
		{ID: "2", Location: "", DateVisited: "2024-01-01"},
		{ID: "3", Location: "Bad rating", DateVisited: "2024-01-01", Rating: 11},
		{ID: "1", Location: "Duplicate", DateVisited: "2024-01-01"},
		{ID: "4", Location: "Also good", DateVisited: "2024-02-01"},
	}

	c, skipped := Restore(snaps)
	require.Len(t, skipped, 3)
	assert.ErrorIs(t, skipped[0], ErrMissingLocation)
	assert.ErrorIs(t, skipped[1], ErrRatingOutOfRange)
	assert.ErrorIs(t, skipped[2], ErrDuplicateID)
	assert.Equal(t, []string{"1", "4"}, ids(c.All()))

	var rec *SkippedRecord
	require.ErrorAs(t, skipped[1], &rec)
	assert.Equal(t, 2, rec.Index)
	assert.Equal(t, snaps[2], rec.Snapshot)
	assert.EqualError(t, skipped[0], "record 1: location is required")
}
