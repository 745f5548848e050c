package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/lineage/internal/tables"
)

func buildFrom(t *testing.T, d tables.Dataset) *Index {
	t.Helper()
	tbl := tables.NewMemTables(d)
	defer tbl.Close()
	return Build(tbl)
}

func TestBuildEmptyTables(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{})
	require.NotNil(t, idx)

	_, ok := idx.PersonByID("anyone")
	assert.False(t, ok)
	assert.Empty(t, idx.LabelsFor("anyone"))
	assert.Empty(t, idx.VersesFor("anyone"))
	_, ok = idx.EpochForVerse("GEN.1.1")
	assert.False(t, ok)
}

func TestPersonLookupCaseInsensitive(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		People: []tables.PersonRecord{
			{PersonID: "Moses_1", PersonName: "Moses"},
		},
	})

	p, ok := idx.PersonByID("MOSES_1")
	require.True(t, ok)
	assert.Equal(t, "Moses", p.PersonName)

	p, ok = idx.PersonByName("moses")
	require.True(t, ok)
	assert.Equal(t, "Moses_1", p.PersonID)
}

func TestDuplicateNameFirstWins(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		People: []tables.PersonRecord{
			{PersonID: "Judas_1", PersonName: "Judas", Tribe: "Judah"},
			{PersonID: "Judas_2", PersonName: "Judas", Tribe: "Issachar"},
		},
	})

	// Repeated lookups must resolve to the same record, never alternate.
	for i := 0; i < 5; i++ {
		p, ok := idx.PersonByName("judas")
		require.True(t, ok)
		assert.Equal(t, "Judas_1", p.PersonID)
	}
}

func TestRelationshipsIndexedUnderBothSides(t *testing.T) {
	rel := tables.RelationshipRecord{
		PersonID1: "Amram_1", PersonID2: "Moses_1", RelationshipType: "father",
	}
	idx := buildFrom(t, tables.Dataset{
		Relationships: []tables.RelationshipRecord{rel},
	})

	assert.Len(t, idx.RelationshipsFor("amram_1"), 1)
	assert.Len(t, idx.RelationshipsFor("MOSES_1"), 1)
	assert.Empty(t, idx.RelationshipsFor("aaron_1"))
}

func TestSelfLoopIndexedOnce(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Relationships: []tables.RelationshipRecord{
			{PersonID1: "X_1", PersonID2: "X_1", RelationshipType: "alias"},
		},
	})
	assert.Len(t, idx.RelationshipsFor("x_1"), 1)
}

func TestVersesMergedAndSentinelExcluded(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Verses: []tables.VerseReference{
			{PersonID: "Moses_1", VerseID: "EXO.2.1"},
			{PersonID: "NA", VerseID: "GEN.1.1"},
			{PersonID: "", VerseID: "GEN.1.2"},
		},
		VersesTanakh: []tables.VerseReference{
			{PersonID: "Moses_1", VerseID: "DEU.34.12"},
		},
		VersesApostolic: []tables.VerseReference{
			{PersonID: "Moses_1", VerseID: "MAT.17.3"},
		},
	})

	verses := idx.VersesFor("moses_1")
	require.Len(t, verses, 3)
	assert.Equal(t, "EXO.2.1", verses[0].VerseID)
	assert.Equal(t, "DEU.34.12", verses[1].VerseID)
	assert.Equal(t, "MAT.17.3", verses[2].VerseID)

	// "NA" is excluded case-sensitively; a lowercase "na" id is a person.
	assert.Empty(t, idx.VersesFor("NA"))
}

func TestLowercaseNaIsNotSentinel(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Verses: []tables.VerseReference{
			{PersonID: "na", VerseID: "GEN.1.1"},
		},
	})
	assert.Len(t, idx.VersesFor("na"), 1)
}

func TestEpochPrefixDirection(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Epochs: []tables.EpochRecord{
			{EpochName: "Creation", FirstReferenceID: "GEN 1"},
			{EpochName: "Bondage", FirstReferenceID: "EXO 2"},
		},
	})

	name, ok := idx.EpochForVerse("EXO.2.1")
	require.True(t, ok)
	assert.Equal(t, "Bondage", name)

	_, ok = idx.EpochForVerse("LEV.1.1")
	assert.False(t, ok)

	// No chapter component: no match.
	_, ok = idx.EpochForVerse("EXO")
	assert.False(t, ok)
}

// The epoch anchor must start with the verse's book+chapter, not the
// other way around: a verse in EXO 21 does not inherit an epoch
// anchored at "EXO 2", while an anchor of "EXO 21" is reachable from
// an EXO 2 verse.
func TestEpochPrefixAsymmetry(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Epochs: []tables.EpochRecord{
			{EpochName: "Bondage", FirstReferenceID: "EXO 2"},
		},
	})
	_, ok := idx.EpochForVerse("EXO.21.5")
	assert.False(t, ok)

	idx = buildFrom(t, tables.Dataset{
		Epochs: []tables.EpochRecord{
			{EpochName: "Wandering", FirstReferenceID: "EXO 21"},
		},
	})
	name, ok := idx.EpochForVerse("EXO.2.1")
	require.True(t, ok)
	assert.Equal(t, "Wandering", name)
}

func TestEpochFirstEntryWins(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Epochs: []tables.EpochRecord{
			{EpochName: "First", FirstReferenceID: "EXO 2"},
			{EpochName: "Second", FirstReferenceID: "EXO 2"},
		},
	})
	name, ok := idx.EpochForVerse("EXO.2.1")
	require.True(t, ok)
	assert.Equal(t, "First", name)
}

func TestEventsAndPlacesKeyedByVerse(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		Events: []tables.EventRecord{
			{EventName: "The Exodus", FirstReferenceID: "EXO.12.31"},
			{EventName: "Unanchored"},
		},
		PlaceVerses: []tables.PlaceVerseRecord{
			{VerseID: "EXO.12.31", PlaceID: "Egypt_1"},
			{VerseID: "EXO.12.31", PlaceID: "Rameses_1"},
		},
	})

	events := idx.EventsForVerse("EXO.12.31")
	require.Len(t, events, 1)
	assert.Equal(t, "The Exodus", events[0].EventName)

	places := idx.PlacesForVerse("EXO.12.31")
	assert.Equal(t, []string{"Egypt_1", "Rameses_1"}, places)
}

func TestMeaningCaseInsensitive(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		NameMeanings: []tables.NameMeaningEntry{
			{Name: "Moses", Meaning: "taken out; drawn forth"},
		},
	})

	m, ok := idx.Meaning("MOSES")
	require.True(t, ok)
	assert.Equal(t, "taken out; drawn forth", m)

	_, ok = idx.Meaning("Aaron")
	assert.False(t, ok)
}

func TestChildrenOfByEitherParent(t *testing.T) {
	idx := buildFrom(t, tables.Dataset{
		People: []tables.PersonRecord{
			{PersonID: "Moses_1", PersonName: "Moses", Father: "Amram", Mother: "Jochebed"},
			{PersonID: "Aaron_1", PersonName: "Aaron", Father: "Amram", Mother: "Jochebed"},
			{PersonID: "Miriam_1", PersonName: "Miriam", Father: "amram"},
		},
	})

	children := idx.ChildrenOf("AMRAM")
	require.Len(t, children, 3)
	assert.Equal(t, "Moses", children[0].PersonName)
	assert.Equal(t, "Aaron", children[1].PersonName)
	assert.Equal(t, "Miriam", children[2].PersonName)

	assert.Len(t, idx.ChildrenOf("Jochebed"), 2)
}

func TestBuildIsIdempotent(t *testing.T) {
	d := tables.Dataset{
		People: []tables.PersonRecord{
			{PersonID: "Moses_1", PersonName: "Moses"},
		},
		Relationships: []tables.RelationshipRecord{
			{PersonID1: "Amram_1", PersonID2: "Moses_1", RelationshipType: "father"},
		},
	}
	tbl := tables.NewMemTables(d)
	defer tbl.Close()

	first := Build(tbl)
	second := Build(tbl)

	assert.Equal(t, len(first.RelationshipsFor("moses_1")), len(second.RelationshipsFor("moses_1")))
	p1, _ := first.PersonByName("moses")
	p2, _ := second.PersonByName("moses")
	assert.Equal(t, p1, p2)
}

func TestCorpusForVerse(t *testing.T) {
	assert.Equal(t, CorpusTanakh, CorpusForVerse("GEN.1.1"))
	assert.Equal(t, CorpusTanakh, CorpusForVerse("DEU.34.12"))
	assert.Equal(t, CorpusApostolic, CorpusForVerse("MAT.1.1"))
	assert.Equal(t, CorpusApostolic, CorpusForVerse("MAR.1.1"))
	assert.Equal(t, CorpusApostolic, CorpusForVerse("REV.22.21"))
	assert.Equal(t, CorpusUnknown, CorpusForVerse("XYZ.1.1"))
	assert.Equal(t, CorpusUnknown, CorpusForVerse(""))
}

func TestBookChapter(t *testing.T) {
	bc, ok := BookChapter("EXO.2.1")
	require.True(t, ok)
	assert.Equal(t, "EXO 2", bc)

	_, ok = BookChapter("EXO")
	assert.False(t, ok)
}
