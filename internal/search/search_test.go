package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kittclouds/lineage/internal/tables"
)

func searchPeople() []tables.PersonRecord {
	return []tables.PersonRecord{
		{PersonID: "Moses_1", PersonName: "Moses", Sex: "Male", Tribe: "Levi"},
		{PersonID: "Miriam_1", PersonName: "Miriam", Sex: "Female", Tribe: "Levi"},
		{PersonID: "Caleb_1", PersonName: "Caleb", Sex: "Male", Tribe: "Judah"},
		{PersonID: "Mosheh_2", PersonName: "Mosheh", Sex: "Male", Tribe: "Levi"},
	}
}

func TestSearchExactNameRanksFirst(t *testing.T) {
	p := NewFuzzyProvider(searchPeople())

	results := p.Search("Moses", 0)
	assert.NotEmpty(t, results)
	assert.Equal(t, "Moses", results[0].PersonName)
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	p := NewFuzzyProvider(searchPeople())

	assert.Empty(t, p.Search("m", 0))
	assert.Empty(t, p.Search("  m  ", 0))
	assert.Empty(t, p.Search("", 0))
}

func TestSearchLimit(t *testing.T) {
	p := NewFuzzyProvider(searchPeople())

	results := p.Search("mo", 1)
	assert.Len(t, results, 1)
}

func TestSearchCaseInsensitive(t *testing.T) {
	p := NewFuzzyProvider(searchPeople())

	results := p.Search("MIRIAM", 0)
	assert.NotEmpty(t, results)
	assert.Equal(t, "Miriam", results[0].PersonName)
}

func TestSearchNoMatch(t *testing.T) {
	p := NewFuzzyProvider(searchPeople())

	assert.Empty(t, p.Search("xyzzy", 0))
}

func TestFilterByTribe(t *testing.T) {
	out := Filter{Tribe: "levi"}.Apply(searchPeople())

	assert.Len(t, out, 3)
	for _, p := range out {
		assert.Equal(t, "Levi", p.Tribe)
	}
}

func TestFilterByTribeAndSex(t *testing.T) {
	out := Filter{Tribe: "Levi", Sex: "female"}.Apply(searchPeople())

	assert.Len(t, out, 1)
	assert.Equal(t, "Miriam", out[0].PersonName)
}

func TestEmptyFilterKeepsEverything(t *testing.T) {
	people := searchPeople()
	assert.Len(t, Filter{}.Apply(people), len(people))
}

func TestTribesDistinctSorted(t *testing.T) {
	people := append(searchPeople(), tables.PersonRecord{PersonName: "Nobody", Tribe: "  "})

	assert.Equal(t, []string{"Judah", "Levi"}, Tribes(people))
}
