// Package tables owns the loaded source tables for the Lineage engine.
// Records keep every field as a string, exactly as it arrives from the
// CSV/JSON sources; flags and sequence numbers are parsed at the point
// of use.
package tables

import "strconv"

// VerseSource identifies which source corpus a verse row was loaded from.
type VerseSource string

const (
	SourceGeneral   VerseSource = "general"
	SourceTanakh    VerseSource = "tanakh"
	SourceApostolic VerseSource = "apostolic"
)

// SentinelUnknownPerson marks verse rows not attributed to any person.
// The comparison is case-sensitive: "na" is a valid person id prefix.
const SentinelUnknownPerson = "NA"

// PersonRecord is one row of the person table. Father and Mother hold
// person NAMES, not ids; the join engine bridges that denormalization.
type PersonRecord struct {
	PersonID        string `json:"person_id" csv:"person_id"`
	PersonName      string `json:"person_name" csv:"person_name"`
	Surname         string `json:"surname" csv:"surname"`
	UniqueAttribute string `json:"unique_attribute" csv:"unique_attribute"`
	Sex             string `json:"sex" csv:"sex"`
	Tribe           string `json:"tribe" csv:"tribe"`
	PersonNotes     string `json:"person_notes" csv:"person_notes"`
	PersonInstance  string `json:"person_instance" csv:"person_instance"`
	PersonSequence  string `json:"person_sequence" csv:"person_sequence"`
	Father          string `json:"father" csv:"father"`
	Mother          string `json:"mother" csv:"mother"`
	FirstVerse      string `json:"firstVerse" csv:"firstVerse"`
	LastVerse       string `json:"lastVerse" csv:"lastVerse"`
}

// LabelRecord is an alternate name or title for a person.
type LabelRecord struct {
	PersonID                  string `json:"person_id" csv:"person_id"`
	EnglishLabel              string `json:"english_label" csv:"english_label"`
	LabelType                 string `json:"label_type" csv:"label_type"`
	HebrewLabel               string `json:"hebrew_label" csv:"hebrew_label"`
	HebrewLabelTransliterated string `json:"hebrew_label_transliterated" csv:"hebrew_label_transliterated"`
	HebrewLabelMeaning        string `json:"hebrew_label_meaning" csv:"hebrew_label_meaning"`
	HebrewStrongsNumber       string `json:"hebrew_strongs_number" csv:"hebrew_strongs_number"`
	GreekLabel                string `json:"greek_label" csv:"greek_label"`
	GreekLabelTransliterated  string `json:"greek_label_transliterated" csv:"greek_label_transliterated"`
	GreekLabelMeaning         string `json:"greek_label_meaning" csv:"greek_label_meaning"`
	GreekStrongsNumber        string `json:"greek_strongs_number" csv:"greek_strongs_number"`
	LabelReferenceID          string `json:"label_reference_id" csv:"label_reference_id"`
	LabelGivenByGod           string `json:"label_given_by_god" csv:"label_given_by_god"`
	LabelNotes                string `json:"label_notes" csv:"label_notes"`
}

// GivenByDeity reports the "Y"/"N" flag as a bool.
func (l LabelRecord) GivenByDeity() bool {
	return l.LabelGivenByGod == "Y"
}

// RelationshipRecord is a directed edge between two people. The stored
// type reads forward from person_id_1; viewed from person_id_2 it must
// be rendered as the inverse role.
type RelationshipRecord struct {
	PersonID1               string `json:"person_id_1" csv:"person_id_1"`
	PersonID2               string `json:"person_id_2" csv:"person_id_2"`
	RelationshipType        string `json:"relationship_type" csv:"relationship_type"`
	RelationshipReferenceID string `json:"relationship_reference_id" csv:"relationship_reference_id"`
	RelationshipNotes       string `json:"relationship_notes" csv:"relationship_notes"`
}

// VerseReference pairs a person with a verse id. Source records which
// corpus file the row came from; it is assigned by the loader, not read
// from the file.
type VerseReference struct {
	PersonID            string      `json:"person_id" csv:"person_id"`
	VerseID             string      `json:"verse_id" csv:"verse_id"`
	PersonVerseSequence string      `json:"person_verse_sequence" csv:"person_verse_sequence"`
	PersonVerseNotes    string      `json:"person_verse_notes" csv:"person_verse_notes"`
	Source              VerseSource `json:"source,omitempty" csv:"-"`
}

// SequenceNumber parses the ordering hint. ok is false when the field
// is blank or not numeric.
func (v VerseReference) SequenceNumber() (n int, ok bool) {
	if v.PersonVerseSequence == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v.PersonVerseSequence)
	if err != nil {
		return 0, false
	}
	return n, true
}

// EpochRecord maps a book+chapter prefix to an epoch name.
type EpochRecord struct {
	EpochID          string `json:"epoch_id" csv:"epoch_id"`
	EpochName        string `json:"epoch_name" csv:"epoch_name"`
	FirstReferenceID string `json:"first_reference_id" csv:"first_reference_id"`
}

// EventRecord is keyed by its reference verse id and reaches people
// indirectly through shared verse ids.
type EventRecord struct {
	EventID          string `json:"event_id" csv:"event_id"`
	EventName        string `json:"event_name" csv:"event_name"`
	FirstReferenceID string `json:"first_reference_id" csv:"first_reference_id"`
	EventNotes       string `json:"event_notes" csv:"event_notes"`
}

// PlaceVerseRecord links a verse id to a place id.
type PlaceVerseRecord struct {
	VerseID string `json:"verse_id" csv:"verse_id"`
	PlaceID string `json:"place_id" csv:"place_id"`
}

// NameMeaningEntry maps a name (compared case-insensitively) to its
// dictionary meaning.
type NameMeaningEntry struct {
	Name    string `json:"name" csv:"name"`
	Meaning string `json:"meaning" csv:"meaning"`
}

// Dataset is the loader's output: every table as a slice in source
// order. A table that failed to load is simply an empty slice.
type Dataset struct {
	People          []PersonRecord
	Labels          []LabelRecord
	Relationships   []RelationshipRecord
	Verses          []VerseReference
	VersesTanakh    []VerseReference
	VersesApostolic []VerseReference
	Epochs          []EpochRecord
	Events          []EventRecord
	PlaceVerses     []PlaceVerseRecord
	NameMeanings    []NameMeaningEntry
}

// MergedVerses returns the union of all verse corpora, general first,
// preserving source order and tagging each row with its source.
func (d *Dataset) MergedVerses() []VerseReference {
	out := make([]VerseReference, 0, len(d.Verses)+len(d.VersesTanakh)+len(d.VersesApostolic))
	for _, v := range d.Verses {
		v.Source = SourceGeneral
		out = append(out, v)
	}
	for _, v := range d.VersesTanakh {
		v.Source = SourceTanakh
		out = append(out, v)
	}
	for _, v := range d.VersesApostolic {
		v.Source = SourceApostolic
		out = append(out, v)
	}
	return out
}

// Tables is the read interface over the loaded dataset.
// MemTables is the plain in-memory implementation; SQLiteTables backs
// the same contract with in-memory SQLite.
type Tables interface {
	People() ([]PersonRecord, error)
	Labels() ([]LabelRecord, error)
	Relationships() ([]RelationshipRecord, error)
	// Verses returns the merged union of all corpora in load order.
	Verses() ([]VerseReference, error)
	Epochs() ([]EpochRecord, error)
	Events() ([]EventRecord, error)
	PlaceVerses() ([]PlaceVerseRecord, error)
	NameMeanings() ([]NameMeaningEntry, error)

	CountPeople() (int, error)
	CountVerses() (int, error)

	Close() error
}
