package index_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlist/wanderlist/internal/index"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type sourceMock struct {
	ideas []model.TravelIdea
}

func (s sourceMock) All() ([]model.TravelIdea, error) {
	return s.ideas, nil
}

func notes(s string) *string {
	return &s
}

func library() []model.TravelIdea {
	return []model.TravelIdea{
		{ID: 1, GroupID: 1, Name: "Ávila walls", Notes: notes("Walk the medieval ramparts at sunset")},
		{ID: 2, GroupID: 1, Name: "Lisbon trams", Notes: notes("Ride tram 28 through Alfama")},
		{ID: 3, GroupID: 1, Name: "Sunset cruise", ImageURL: "https://example.com/cruise.jpg"},
		{ID: 4, GroupID: 2, Name: "Avila cathedral", Notes: notes("Another group's idea")},
	}
}

func TestSearch(t *testing.T) {
	var cases = []struct {
		name     string
		groupID  uint
		keywords string
		expected []uint
	}{
		{"Accents are ignored and results are restricted to the group", 1, "avila", []uint{1}},
		{"Keywords match notes too", 1, "alfama", []uint{2}},
		{"Every keyword must match", 1, "sunset walls", []uint{1}},
		{"Name matches rank above notes matches", 1, "sunset", []uint{3, 1}},
		{"Search is case insensitive", 2, "CATHEDRAL", []uint{4}},
		{"No match returns an empty list", 1, "tokyo", []uint{}},
		{"Empty keywords return an empty list", 1, "   ", []uint{}},
	}

	idx, err := index.NewMemOnly()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddAll(sourceMock{ideas: library()}, 2))

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			ids, err := idx.Search(tcase.groupID, tcase.keywords, 10)
			require.NoError(t, err)
			assert.Equal(t, tcase.expected, ids)
		})
	}
}

func TestSearchReturnsEveryMatch(t *testing.T) {
	ideas := make([]model.TravelIdea, 250)
	for i := range ideas {
		ideas[i] = model.TravelIdea{ID: uint(i + 1), GroupID: 1, Name: fmt.Sprintf("Beach %d", i+1)}
	}

	idx, err := index.NewMemOnly()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddAll(sourceMock{ideas: ideas}, 100))

	ids, err := idx.Search(1, "beach", 0)
	require.NoError(t, err)
	assert.Len(t, ids, 250)

	unique := make(map[uint]bool, len(ids))
	for _, id := range ids {
		unique[id] = true
	}
	assert.Len(t, unique, 250)

	ids, err = idx.Search(1, "beach", 120)
	require.NoError(t, err)
	assert.Len(t, ids, 120)
}

func TestAddAndRemove(t *testing.T) {
	idx, err := index.NewMemOnly()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.AddAll(sourceMock{ideas: library()}, 100))
	count, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)

	updated := library()[1]
	updated.Name = "Porto wine cellars"
	updated.Notes = nil
	require.NoError(t, idx.AddTravelIdea(updated))

	ids, err := idx.Search(1, "lisbon", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
	ids, err = idx.Search(1, "porto", 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, ids)

	require.NoError(t, idx.RemoveTravelIdea(2))
	ids, err = idx.Search(1, "porto", 10)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, idx.RemoveGroup(1))
	count, err = idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	ids, err = idx.Search(2, "avila", 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{4}, ids)
}
