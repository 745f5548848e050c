// Package index derives constant-time lookup maps from the loaded
// tables so profile assembly never rescans a full table per query.
// All person id and name keys are lowercased; duplicate ids and names
// resolve first-in-source-order.
package index

import (
	"strings"

	"github.com/kittclouds/lineage/internal/tables"
)

// epochEntry keeps epochs as an ordered prefix list. Lookup is a
// starts-with test on the epoch side, so a hash map cannot serve.
type epochEntry struct {
	prefix string
	name   string
}

// Index holds every derived lookup. Build once after the load barrier;
// treat as read-only afterwards.
type Index struct {
	personByID   map[string]tables.PersonRecord
	personByName map[string]tables.PersonRecord

	labelsByPerson map[string][]tables.LabelRecord
	relsByPerson   map[string][]tables.RelationshipRecord
	versesByPerson map[string][]tables.VerseReference

	eventsByVerse map[string][]tables.EventRecord
	placesByVerse map[string][]string

	epochs   []epochEntry
	meanings map[string]string

	// father/mother name (lowercased) -> children in source order.
	// Precomputed form of the children-by-name scan.
	childrenByParent map[string][]tables.PersonRecord

	peopleInOrder []tables.PersonRecord
	eventsInOrder []tables.EventRecord
}

func key(s string) string { return strings.ToLower(s) }

// Build derives all indices from the current table contents. It is a
// pure function of the tables: idempotent, and it never fails — a table
// that cannot be read contributes nothing, and malformed rows become
// absent entries.
func Build(t tables.Tables) *Index {
	idx := &Index{
		personByID:       make(map[string]tables.PersonRecord),
		personByName:     make(map[string]tables.PersonRecord),
		labelsByPerson:   make(map[string][]tables.LabelRecord),
		relsByPerson:     make(map[string][]tables.RelationshipRecord),
		versesByPerson:   make(map[string][]tables.VerseReference),
		eventsByVerse:    make(map[string][]tables.EventRecord),
		placesByVerse:    make(map[string][]string),
		meanings:         make(map[string]string),
		childrenByParent: make(map[string][]tables.PersonRecord),
	}

	people, _ := t.People()
	idx.peopleInOrder = people
	for _, p := range people {
		if id := key(p.PersonID); id != "" {
			if _, dup := idx.personByID[id]; !dup {
				idx.personByID[id] = p
			}
		}
		if name := key(p.PersonName); name != "" {
			if _, dup := idx.personByName[name]; !dup {
				idx.personByName[name] = p
			}
		}
		if father := key(p.Father); father != "" {
			idx.childrenByParent[father] = append(idx.childrenByParent[father], p)
		}
		if mother := key(p.Mother); mother != "" && mother != key(p.Father) {
			idx.childrenByParent[mother] = append(idx.childrenByParent[mother], p)
		}
	}

	labels, _ := t.Labels()
	for _, l := range labels {
		if id := key(l.PersonID); id != "" {
			idx.labelsByPerson[id] = append(idx.labelsByPerson[id], l)
		}
	}

	rels, _ := t.Relationships()
	for _, r := range rels {
		id1, id2 := key(r.PersonID1), key(r.PersonID2)
		if id1 != "" {
			idx.relsByPerson[id1] = append(idx.relsByPerson[id1], r)
		}
		// Index under both sides, once for a self-referencing row.
		if id2 != "" && id2 != id1 {
			idx.relsByPerson[id2] = append(idx.relsByPerson[id2], r)
		}
	}

	verses, _ := t.Verses()
	for _, v := range verses {
		// Sentinel match is case-sensitive by contract.
		if v.PersonID == tables.SentinelUnknownPerson || v.PersonID == "" {
			continue
		}
		idx.versesByPerson[key(v.PersonID)] = append(idx.versesByPerson[key(v.PersonID)], v)
	}

	events, _ := t.Events()
	idx.eventsInOrder = events
	for _, e := range events {
		if e.FirstReferenceID == "" {
			continue
		}
		idx.eventsByVerse[e.FirstReferenceID] = append(idx.eventsByVerse[e.FirstReferenceID], e)
	}

	placeVerses, _ := t.PlaceVerses()
	for _, pv := range placeVerses {
		if pv.VerseID == "" {
			continue
		}
		idx.placesByVerse[pv.VerseID] = append(idx.placesByVerse[pv.VerseID], pv.PlaceID)
	}

	epochs, _ := t.Epochs()
	for _, e := range epochs {
		if e.FirstReferenceID == "" {
			continue
		}
		idx.epochs = append(idx.epochs, epochEntry{prefix: e.FirstReferenceID, name: e.EpochName})
	}

	meanings, _ := t.NameMeanings()
	for _, m := range meanings {
		if name := key(m.Name); name != "" {
			if _, dup := idx.meanings[name]; !dup {
				idx.meanings[name] = m.Meaning
			}
		}
	}

	return idx
}

// PersonByID resolves a person id, case-insensitively.
func (idx *Index) PersonByID(id string) (tables.PersonRecord, bool) {
	p, ok := idx.personByID[key(id)]
	return p, ok
}

// PersonByName resolves a bare name, case-insensitively. When several
// people share the name, the first in source order wins on every call.
func (idx *Index) PersonByName(name string) (tables.PersonRecord, bool) {
	p, ok := idx.personByName[key(name)]
	return p, ok
}

// LabelsFor returns a person's labels in insertion order.
func (idx *Index) LabelsFor(personID string) []tables.LabelRecord {
	return idx.labelsByPerson[key(personID)]
}

// RelationshipsFor returns every relationship row with either side
// equal to the person id, in insertion order.
func (idx *Index) RelationshipsFor(personID string) []tables.RelationshipRecord {
	return idx.relsByPerson[key(personID)]
}

// VersesFor returns a person's merged verse rows in load order.
func (idx *Index) VersesFor(personID string) []tables.VerseReference {
	return idx.versesByPerson[key(personID)]
}

// EventsForVerse returns the events anchored at a verse id.
func (idx *Index) EventsForVerse(verseID string) []tables.EventRecord {
	return idx.eventsByVerse[verseID]
}

// PlacesForVerse returns the place ids linked to a verse id.
func (idx *Index) PlacesForVerse(verseID string) []string {
	return idx.placesByVerse[verseID]
}

// EpochForVerse resolves the epoch for a first-appearance verse id.
// The match direction is deliberate and must not be inverted: the
// EPOCH prefix must start with the verse's book+chapter string.
func (idx *Index) EpochForVerse(firstVerse string) (string, bool) {
	bookChapter, ok := BookChapter(firstVerse)
	if !ok {
		return "", false
	}
	for _, e := range idx.epochs {
		if strings.HasPrefix(e.prefix, bookChapter) {
			return e.name, true
		}
	}
	return "", false
}

// Meaning looks up a name in the meanings dictionary, case-insensitively.
func (idx *Index) Meaning(name string) (string, bool) {
	m, ok := idx.meanings[key(name)]
	return m, ok
}

// ChildrenOf returns the people whose father or mother field equals the
// given name, case-insensitively, in source order.
func (idx *Index) ChildrenOf(parentName string) []tables.PersonRecord {
	return idx.childrenByParent[key(parentName)]
}

// People returns every person record in source order.
func (idx *Index) People() []tables.PersonRecord {
	return idx.peopleInOrder
}

// Events returns every event record in source order. The assembler's
// event join is a membership test over a verse-id set, so it walks the
// event table rather than probing a single key.
func (idx *Index) Events() []tables.EventRecord {
	return idx.eventsInOrder
}
