package profile

import (
	"errors"
	"sort"
	"strings"

	"github.com/kittclouds/lineage/internal/index"
	"github.com/kittclouds/lineage/internal/tables"
)

// ErrNoKey is returned when Assemble is called with neither an id nor
// a name. This is a caller-contract violation, not a data condition.
var ErrNoKey = errors.New("profile: assemble requires a person id or name")

// Key locates a person: an id, a bare name, or both. Some query paths
// only have a name.
type Key struct {
	ID   string `json:"person_id,omitempty"`
	Name string `json:"person_name,omitempty"`
}

// CacheKey is the canonical identity used by the profile cache:
// the lowercased name, falling back to the lowercased id.
func (k Key) CacheKey() string {
	if k.Name != "" {
		return strings.ToLower(k.Name)
	}
	return strings.ToLower(k.ID)
}

func (k Key) empty() bool {
	return k.ID == "" && k.Name == ""
}

// MentionScanner reports which known people are named in free text.
// Implemented by the mentions dictionary; nil disables the join.
type MentionScanner interface {
	MentionedIn(text string) []string
}

// Assembler is the join engine. It only reads the index; every
// Assemble call is a pure function of the loaded data.
type Assembler struct {
	idx      *index.Index
	mentions MentionScanner
}

// NewAssembler creates an assembler over a built index.
func NewAssembler(idx *index.Index) *Assembler {
	return &Assembler{idx: idx}
}

// SetMentionScanner enables the notes-mention join.
func (a *Assembler) SetMentionScanner(s MentionScanner) {
	a.mentions = s
}

// Assemble joins every table for the person identified by key and
// returns one denormalized profile. Missing upstream data degrades to
// sentinel values and empty collections; the only error is ErrNoKey.
func (a *Assembler) Assemble(k Key) (*PersonProfile, error) {
	if k.empty() {
		return nil, ErrNoKey
	}

	rec, found := a.resolve(k)

	// Joins keyed by id run off the resolved record; with no resolved
	// record they all come up empty. Joins keyed by name (children,
	// meaning) still run off whatever name the caller supplied.
	id := rec.PersonID
	name := rec.PersonName

	p := &PersonProfile{
		PersonName:      orNotListed(name),
		PersonID:        orNotListed(id),
		Surname:         orNotListed(rec.Surname),
		UniqueAttribute: orNotListed(rec.UniqueAttribute),
		Sex:             orUnknown(rec.Sex),
		Tribe:           orNotListed(rec.Tribe),
		Notes:           orNotListed(rec.PersonNotes),
		Instance:        orNotListed(rec.PersonInstance),
		Sequence:        orNotListed(rec.PersonSequence),
		Father:          orNotListed(rec.Father),
		Mother:          orNotListed(rec.Mother),
		FirstVerse:      orNotListed(rec.FirstVerse),
		LastVerse:       orNotListed(rec.LastVerse),
		Children:        []string{},
		Labels:          []tables.LabelRecord{},
		Relationships:   []Relationship{},
		Verses:          []Verse{},
		Events:          []tables.EventRecord{},
		Places:          []string{},
	}

	if found || id != "" {
		if labels := a.idx.LabelsFor(id); len(labels) > 0 {
			p.Labels = append(p.Labels, labels...)
		}
		p.Relationships = a.joinRelationships(id)
		p.Verses = a.joinVerses(id)
		p.Events = a.joinEvents(id)
		p.Places = a.joinPlaces(id)
	}

	p.Epoch = a.resolveEpoch(rec.FirstVerse)
	p.NameMeaning = a.resolveMeaning(name)
	p.Children = a.joinChildren(id, name)

	if a.mentions != nil && rec.PersonNotes != "" {
		p.Mentions = a.scanMentions(rec.PersonNotes, name)
	}

	return p, nil
}

// resolve finds the canonical PersonRecord for a key, or a partial
// stand-in carrying only the caller-supplied fields.
func (a *Assembler) resolve(k Key) (tables.PersonRecord, bool) {
	if k.ID != "" {
		if rec, ok := a.idx.PersonByID(k.ID); ok {
			return rec, true
		}
	}
	if k.Name != "" {
		if rec, ok := a.idx.PersonByName(k.Name); ok {
			return rec, true
		}
	}
	return tables.PersonRecord{PersonID: k.ID, PersonName: k.Name}, false
}

// joinRelationships resolves every relationship row touching id into a
// display entry with a direction-aware role.
func (a *Assembler) joinRelationships(id string) []Relationship {
	rows := a.idx.RelationshipsFor(id)
	out := make([]Relationship, 0, len(rows))
	idLower := strings.ToLower(id)

	for _, r := range rows {
		forward := strings.ToLower(r.PersonID1) == idLower

		var role, otherID string
		if forward {
			role = r.RelationshipType
			otherID = r.PersonID2
		} else {
			role = "is " + r.RelationshipType + " of"
			otherID = r.PersonID1
		}

		otherName := otherID
		if other, ok := a.idx.PersonByID(otherID); ok {
			otherName = other.PersonName
		}

		out = append(out, Relationship{
			Role:        role,
			OtherID:     otherID,
			OtherName:   otherName,
			ReferenceID: orNotListed(r.RelationshipReferenceID),
			Notes:       r.RelationshipNotes,
		})
	}
	return out
}

// joinVerses tags each verse with its book-prefix corpus and orders by
// the sequence hint where both sides carry one.
func (a *Assembler) joinVerses(id string) []Verse {
	rows := a.idx.VersesFor(id)
	out := make([]Verse, 0, len(rows))
	for _, v := range rows {
		out = append(out, Verse{
			VerseID:  v.VerseID,
			Corpus:   index.CorpusForVerse(v.VerseID),
			Sequence: v.PersonVerseSequence,
			Notes:    v.PersonVerseNotes,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ni, iok := tables.VerseReference{PersonVerseSequence: out[i].Sequence}.SequenceNumber()
		nj, jok := tables.VerseReference{PersonVerseSequence: out[j].Sequence}.SequenceNumber()
		if !iok || !jok {
			return false
		}
		return ni < nj
	})
	return out
}

// joinEvents walks the event table and keeps rows whose reference verse
// is in the person's verse set. Membership test, table order preserved.
func (a *Assembler) joinEvents(id string) []tables.EventRecord {
	verseSet := make(map[string]bool)
	for _, v := range a.idx.VersesFor(id) {
		verseSet[v.VerseID] = true
	}
	if len(verseSet) == 0 {
		return []tables.EventRecord{}
	}

	out := []tables.EventRecord{}
	for _, e := range a.idx.Events() {
		if e.FirstReferenceID != "" && verseSet[e.FirstReferenceID] {
			out = append(out, e)
		}
	}
	return out
}

// joinPlaces accumulates place ids over the person's verses,
// deduplicated in first-seen order.
func (a *Assembler) joinPlaces(id string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, v := range a.idx.VersesFor(id) {
		for _, placeID := range a.idx.PlacesForVerse(v.VerseID) {
			if !seen[placeID] {
				seen[placeID] = true
				out = append(out, placeID)
			}
		}
	}
	return out
}

func (a *Assembler) resolveEpoch(firstVerse string) string {
	if firstVerse == "" {
		return NotListed
	}
	if name, ok := a.idx.EpochForVerse(firstVerse); ok {
		return orNotListed(name)
	}
	return NotListed
}

func (a *Assembler) resolveMeaning(name string) string {
	if name == "" {
		return NotListed
	}
	if m, ok := a.idx.Meaning(name); ok {
		return orNotListed(m)
	}
	return NotListed
}

// joinChildren unions children found by parent-name fields with
// children derived from forward father/mother relationship rows,
// deduplicated by case-insensitive name in first-seen order.
func (a *Assembler) joinChildren(id, name string) []string {
	seen := make(map[string]bool)
	out := []string{}

	add := func(childName string) {
		k := strings.ToLower(childName)
		if childName == "" || seen[k] {
			return
		}
		seen[k] = true
		out = append(out, childName)
	}

	if name != "" {
		for _, child := range a.idx.ChildrenOf(name) {
			add(child.PersonName)
		}
	}

	if id != "" {
		idLower := strings.ToLower(id)
		for _, r := range a.idx.RelationshipsFor(id) {
			if strings.ToLower(r.PersonID1) != idLower {
				continue
			}
			relType := strings.ToLower(r.RelationshipType)
			if relType != "father" && relType != "mother" {
				continue
			}
			childName := r.PersonID2
			if child, ok := a.idx.PersonByID(r.PersonID2); ok {
				childName = child.PersonName
			}
			add(childName)
		}
	}

	return out
}

// scanMentions finds other known people named in the notes text.
func (a *Assembler) scanMentions(notes, selfName string) []string {
	self := strings.ToLower(selfName)
	seen := make(map[string]bool)
	var out []string
	for _, m := range a.mentions.MentionedIn(notes) {
		k := strings.ToLower(m)
		if k == self || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}
