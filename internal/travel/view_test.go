package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGallery(t *testing.T) (*Collection, map[string]*Place) {
	t.Helper()
	gen := sequentialIDs()
	c := NewCollection()
	byName := map[string]*Place{}
	for _, f := range []Fields{
		{Location: "Zürich", Country: "Switzerland", TimeOfYear: "Winter", DateVisited: "2021-01-15", Rating: 4},
		{Location: "Amalfi", Country: "Italy", TimeOfYear: "Late Summer", DateVisited: "2023-08-20", Rating: 5},
		{Location: "Éze", Country: "France", TimeOfYear: "Summer", DateVisited: "2022-07-04", Rating: 3},
		{Location: "bordeaux", Country: "France", TimeOfYear: "Autumn", DateVisited: "2023-10-01", Rating: 5},
		{Location: "Nice", Country: "France", TimeOfYear: "Early summer", DateVisited: "2020-06-01", Rating: 3},
	} {
		p := newTestPlace(t, f, gen)
		require.NoError(t, c.Add(p))
		byName[f.Location] = p
	}
	return c, byName
}

func locations(places []*Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Location())
	}
	return out
}

func TestViewNoFiltersKeepsInsertionOrder(t *testing.T) {
	c, _ := seedGallery(t)
	assert.Equal(t, locations(c.All()), locations(c.View(Query{})))
}

func TestViewCombinesCountryAndSeason(t *testing.T) {
	c, _ := seedGallery(t)
	got := c.View(Query{Country: "FRANCE", Season: "summer"})
	assert.Equal(t, []string{"Éze", "Nice"}, locations(got))
}

func TestViewSortRatingIsStable(t *testing.T) {
	c, _ := seedGallery(t)
	got := c.View(Query{Sort: SortRating})
	assert.Equal(t, []string{"Amalfi", "bordeaux", "Zürich", "Éze", "Nice"}, locations(got))
}

func TestViewSortAlphabeticalIsLocaleAware(t *testing.T) {
	c, _ := seedGallery(t)
	got := c.View(Query{Sort: SortAlphabetical})
	// Byte order would put "bordeaux" after the capitals and "Éze"/"Zürich" at the end.
	assert.Equal(t, []string{"Amalfi", "bordeaux", "Éze", "Nice", "Zürich"}, locations(got))
}

func TestViewSortRecent(t *testing.T) {
	c, _ := seedGallery(t)
	got := c.View(Query{Sort: SortRecent})
	assert.Equal(t, []string{"bordeaux", "Amalfi", "Éze", "Zürich", "Nice"}, locations(got))
}

func TestViewSortRecentPutsZeroDatesLast(t *testing.T) {
	c, _ := seedGallery(t)
	// Bypass NewPlace to simulate a place whose date never parsed.
	c.places = append(c.places, &Place{id: "undated", location: "Nowhere"})
	got := c.View(Query{Sort: SortRecent})
	assert.Equal(t, "Nowhere", got[len(got)-1].Location())
}

func TestParseSortOrder(t *testing.T) {
	for _, name := range []string{"rating", "alphabetical", "recent", "none"} {
		order, err := ParseSortOrder(name)
		require.NoError(t, err)
		assert.Equal(t, name, order.String())
	}
	order, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortNone, order)

	_, err = ParseSortOrder("popularity")
	assert.Error(t, err)
}

func TestCountriesAndStats(t *testing.T) {
	c, _ := seedGallery(t)
	assert.Equal(t, []string{"France", "Italy", "Switzerland"}, c.Countries())

	stats := c.Stats()
	assert.Equal(t, 5, stats.Places)
	assert.Equal(t, 3, stats.Countries)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.001)

	assert.Equal(t, Stats{}, NewCollection().Stats())
}
