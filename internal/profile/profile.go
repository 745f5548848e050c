// Package profile assembles the denormalized per-person view: the join
// across every loaded table for one person, cached per session.
package profile

import (
	"github.com/kittclouds/lineage/internal/index"
	"github.com/kittclouds/lineage/internal/tables"
)

// Sentinel display values for absent data.
const (
	NotListed  = "Not listed"
	UnknownSex = "Unknown"
)

// Relationship is one resolved relationship row as seen from the
// profiled person: Role reads forward ("father") when the person is
// person_id_1 and inverted ("is father of") when they are person_id_2.
type Relationship struct {
	Role        string `json:"role"`
	OtherID     string `json:"other_person_id"`
	OtherName   string `json:"other_person_name"`
	ReferenceID string `json:"reference_id"`
	Notes       string `json:"notes,omitempty"`
}

// Verse is one verse appearance, tagged with the corpus derived from
// its book prefix (not from which source file it was loaded from).
type Verse struct {
	VerseID  string       `json:"verse_id"`
	Corpus   index.Corpus `json:"corpus,omitempty"`
	Sequence string       `json:"person_verse_sequence,omitempty"`
	Notes    string       `json:"person_verse_notes,omitempty"`
}

// PersonProfile is the fully joined view of one person. It is immutable
// once assembled and carries no live references into the table store:
// only primitives and owned slices.
type PersonProfile struct {
	PersonName      string `json:"person_name"`
	PersonID        string `json:"person_id"`
	Surname         string `json:"surname"`
	UniqueAttribute string `json:"unique_attribute"`
	Sex             string `json:"sex"`
	Tribe           string `json:"tribe"`
	Notes           string `json:"person_notes"`
	Instance        string `json:"person_instance"`
	Sequence        string `json:"person_sequence"`
	Father          string `json:"father"`
	Mother          string `json:"mother"`
	FirstVerse      string `json:"firstVerse"`
	LastVerse       string `json:"lastVerse"`

	Epoch       string `json:"epoch"`
	NameMeaning string `json:"name_meaning"`

	Children      []string             `json:"children"`
	Labels        []tables.LabelRecord `json:"labels"`
	Relationships []Relationship       `json:"relationships"`
	Verses        []Verse              `json:"verses"`
	Events        []tables.EventRecord `json:"events"`
	Places        []string             `json:"places"`

	// Other known people whose names occur in this person's free-text
	// notes. Populated only when the assembler has a mentions dictionary.
	Mentions []string `json:"mentions,omitempty"`
}

// TanakhVerses filters the verse set to the Tanakh corpus.
func (p *PersonProfile) TanakhVerses() []Verse {
	return p.versesIn(index.CorpusTanakh)
}

// ApostolicVerses filters the verse set to the Apostolic corpus.
func (p *PersonProfile) ApostolicVerses() []Verse {
	return p.versesIn(index.CorpusApostolic)
}

func (p *PersonProfile) versesIn(c index.Corpus) []Verse {
	out := make([]Verse, 0, len(p.Verses))
	for _, v := range p.Verses {
		if v.Corpus == c {
			out = append(out, v)
		}
	}
	return out
}

// orNotListed substitutes the display sentinel for a blank field.
func orNotListed(s string) string {
	if s == "" {
		return NotListed
	}
	return s
}

// orUnknown is the sentinel rule for the sex field only.
func orUnknown(s string) string {
	if s == "" {
		return UnknownSex
	}
	return s
}
