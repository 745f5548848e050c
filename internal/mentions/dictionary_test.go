package mentions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kittclouds/lineage/internal/tables"
)

func samplePeople() []tables.PersonRecord {
	return []tables.PersonRecord{
		{PersonID: "Moses_1", PersonName: "Moses"},
		{PersonID: "Aaron_1", PersonName: "Aaron"},
		{PersonID: "Zipporah_1", PersonName: "Zipporah"},
	}
}

func sampleLabels() []tables.LabelRecord {
	return []tables.LabelRecord{
		{PersonID: "Moses_1", EnglishLabel: "Lawgiver"},
		{PersonID: "Aaron_1", EnglishLabel: "High Priest"},
		{PersonID: "Ghost_9", EnglishLabel: "Unbound"},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "moses", Normalize("  Moses  "))
	assert.Equal(t, "high priest", Normalize("High-Priest!"))
	assert.Equal(t, "pharaoh's daughter", Normalize("Pharaoh’s Daughter"))
	assert.Equal(t, "", Normalize("  ...  "))
}

func TestBuildEntriesIncludesLabels(t *testing.T) {
	entries := BuildEntries(samplePeople(), sampleLabels())

	surfaces := make(map[string]string)
	for _, e := range entries {
		surfaces[e.Surface] = e.Name
	}

	assert.Equal(t, "Moses", surfaces["Moses"])
	assert.Equal(t, "Moses", surfaces["Lawgiver"])
	assert.Equal(t, "Aaron", surfaces["High Priest"])

	// Label without a matching person is skipped
	_, found := surfaces["Unbound"]
	assert.False(t, found)
}

func TestMentionedIn(t *testing.T) {
	d := Compile(BuildEntries(samplePeople(), sampleLabels()))

	names := d.MentionedIn("When Moses met Aaron, moses spoke first.")
	assert.Equal(t, []string{"Moses", "Aaron"}, names)
}

func TestMentionedInResolvesLabels(t *testing.T) {
	d := Compile(BuildEntries(samplePeople(), sampleLabels()))

	names := d.MentionedIn("the lawgiver and the high priest went up")
	assert.Equal(t, []string{"Moses", "Aaron"}, names)
}

func TestMentionedInNormalizesText(t *testing.T) {
	d := Compile(BuildEntries(samplePeople(), sampleLabels()))

	// Hyphenated and curly-quoted surfaces must match their registered
	// normalized forms.
	assert.Equal(t, []string{"Aaron"}, d.MentionedIn("the High-Priest spoke"))

	d = Compile([]Entry{{Surface: "Pharaoh's Daughter", Name: "Bithiah"}})
	assert.Equal(t, []string{"Bithiah"}, d.MentionedIn("raised by Pharaoh’s Daughter"))
}

func TestMentionedInWholeWordsOnly(t *testing.T) {
	d := Compile(BuildEntries(samplePeople(), nil))

	assert.Empty(t, d.MentionedIn("mosesx said nothing"))
}

func TestLookup(t *testing.T) {
	d := Compile(BuildEntries(samplePeople(), sampleLabels()))

	assert.Equal(t, []string{"Moses"}, d.Lookup("LAWGIVER"))
	assert.Nil(t, d.Lookup("unknown"))
}

func TestSharedSurfaceFirstRegisteredWins(t *testing.T) {
	d := Compile([]Entry{
		{Surface: "Judas", Name: "Judas Iscariot"},
		{Surface: "Judas", Name: "Judas son of James"},
	})

	assert.Equal(t, 1, d.Size())
	assert.Equal(t, []string{"Judas Iscariot", "Judas son of James"}, d.Lookup("judas"))
	assert.Equal(t, []string{"Judas Iscariot"}, d.MentionedIn("then Judas left"))
}
