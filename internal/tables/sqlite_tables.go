// SQLite-backed implementation of Tables.
// Uses ncruces/go-sqlite3/driver, which compiles to wasm, with an
// in-memory database: the dataset is bulk-loaded once at construction
// and read back in source (rowid) order.
package tables

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteTables serves the Tables contract from in-memory SQLite.
// Thread-safe for concurrent WASM callbacks.
type SQLiteTables struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema defines one table per source file. Everything is TEXT: fields
// arrive as strings and are parsed at the point of use.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    person_id TEXT,
    person_name TEXT,
    surname TEXT,
    unique_attribute TEXT,
    sex TEXT,
    tribe TEXT,
    person_notes TEXT,
    person_instance TEXT,
    person_sequence TEXT,
    father TEXT,
    mother TEXT,
    first_verse TEXT,
    last_verse TEXT
);
CREATE INDEX IF NOT EXISTS idx_people_id ON people(person_id);
CREATE INDEX IF NOT EXISTS idx_people_name ON people(person_name);

CREATE TABLE IF NOT EXISTS labels (
    person_id TEXT,
    english_label TEXT,
    label_type TEXT,
    hebrew_label TEXT,
    hebrew_label_transliterated TEXT,
    hebrew_label_meaning TEXT,
    hebrew_strongs_number TEXT,
    greek_label TEXT,
    greek_label_transliterated TEXT,
    greek_label_meaning TEXT,
    greek_strongs_number TEXT,
    label_reference_id TEXT,
    label_given_by_god TEXT,
    label_notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_labels_person ON labels(person_id);

CREATE TABLE IF NOT EXISTS relationships (
    person_id_1 TEXT,
    person_id_2 TEXT,
    relationship_type TEXT,
    relationship_reference_id TEXT,
    relationship_notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_rel_p1 ON relationships(person_id_1);
CREATE INDEX IF NOT EXISTS idx_rel_p2 ON relationships(person_id_2);

CREATE TABLE IF NOT EXISTS person_verses (
    source TEXT,
    person_id TEXT,
    verse_id TEXT,
    person_verse_sequence TEXT,
    person_verse_notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_verses_person ON person_verses(person_id);

CREATE TABLE IF NOT EXISTS epochs (
    epoch_id TEXT,
    epoch_name TEXT,
    first_reference_id TEXT
);

CREATE TABLE IF NOT EXISTS events (
    event_id TEXT,
    event_name TEXT,
    first_reference_id TEXT,
    event_notes TEXT
);

CREATE TABLE IF NOT EXISTS place_verses (
    verse_id TEXT,
    place_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_places_verse ON place_verses(verse_id);

CREATE TABLE IF NOT EXISTS name_meanings (
    name TEXT,
    meaning TEXT
);
`

// NewSQLiteTables loads a dataset into a fresh in-memory database.
func NewSQLiteTables(d Dataset) (*SQLiteTables, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	t := &SQLiteTables{db: db}
	if err := t.load(d); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return t, nil
}

// Close closes the database connection.
func (t *SQLiteTables) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

// load bulk-inserts every table in one transaction, preserving source
// order via rowid.
func (t *SQLiteTables) load(d Dataset) error {
	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range d.People {
		if _, err := tx.Exec(`
			INSERT INTO people VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.PersonID, p.PersonName, p.Surname, p.UniqueAttribute, p.Sex, p.Tribe,
			p.PersonNotes, p.PersonInstance, p.PersonSequence, p.Father, p.Mother,
			p.FirstVerse, p.LastVerse); err != nil {
			return err
		}
	}

	for _, l := range d.Labels {
		if _, err := tx.Exec(`
			INSERT INTO labels VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.PersonID, l.EnglishLabel, l.LabelType,
			l.HebrewLabel, l.HebrewLabelTransliterated, l.HebrewLabelMeaning, l.HebrewStrongsNumber,
			l.GreekLabel, l.GreekLabelTransliterated, l.GreekLabelMeaning, l.GreekStrongsNumber,
			l.LabelReferenceID, l.LabelGivenByGod, l.LabelNotes); err != nil {
			return err
		}
	}

	for _, r := range d.Relationships {
		if _, err := tx.Exec(`
			INSERT INTO relationships VALUES (?, ?, ?, ?, ?)`,
			r.PersonID1, r.PersonID2, r.RelationshipType,
			r.RelationshipReferenceID, r.RelationshipNotes); err != nil {
			return err
		}
	}

	for _, v := range d.MergedVerses() {
		if _, err := tx.Exec(`
			INSERT INTO person_verses VALUES (?, ?, ?, ?, ?)`,
			string(v.Source), v.PersonID, v.VerseID,
			v.PersonVerseSequence, v.PersonVerseNotes); err != nil {
			return err
		}
	}

	for _, e := range d.Epochs {
		if _, err := tx.Exec(`
			INSERT INTO epochs VALUES (?, ?, ?)`,
			e.EpochID, e.EpochName, e.FirstReferenceID); err != nil {
			return err
		}
	}

	for _, e := range d.Events {
		if _, err := tx.Exec(`
			INSERT INTO events VALUES (?, ?, ?, ?)`,
			e.EventID, e.EventName, e.FirstReferenceID, e.EventNotes); err != nil {
			return err
		}
	}

	for _, p := range d.PlaceVerses {
		if _, err := tx.Exec(`
			INSERT INTO place_verses VALUES (?, ?)`,
			p.VerseID, p.PlaceID); err != nil {
			return err
		}
	}

	for _, m := range d.NameMeanings {
		if _, err := tx.Exec(`
			INSERT INTO name_meanings VALUES (?, ?)`,
			m.Name, m.Meaning); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (t *SQLiteTables) People() ([]PersonRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT person_id, person_name, surname, unique_attribute, sex, tribe,
			person_notes, person_instance, person_sequence, father, mother,
			first_verse, last_verse
		FROM people ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PersonRecord
	for rows.Next() {
		var p PersonRecord
		if err := rows.Scan(&p.PersonID, &p.PersonName, &p.Surname, &p.UniqueAttribute,
			&p.Sex, &p.Tribe, &p.PersonNotes, &p.PersonInstance, &p.PersonSequence,
			&p.Father, &p.Mother, &p.FirstVerse, &p.LastVerse); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) Labels() ([]LabelRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT person_id, english_label, label_type,
			hebrew_label, hebrew_label_transliterated, hebrew_label_meaning, hebrew_strongs_number,
			greek_label, greek_label_transliterated, greek_label_meaning, greek_strongs_number,
			label_reference_id, label_given_by_god, label_notes
		FROM labels ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LabelRecord
	for rows.Next() {
		var l LabelRecord
		if err := rows.Scan(&l.PersonID, &l.EnglishLabel, &l.LabelType,
			&l.HebrewLabel, &l.HebrewLabelTransliterated, &l.HebrewLabelMeaning, &l.HebrewStrongsNumber,
			&l.GreekLabel, &l.GreekLabelTransliterated, &l.GreekLabelMeaning, &l.GreekStrongsNumber,
			&l.LabelReferenceID, &l.LabelGivenByGod, &l.LabelNotes); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) Relationships() ([]RelationshipRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT person_id_1, person_id_2, relationship_type,
			relationship_reference_id, relationship_notes
		FROM relationships ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RelationshipRecord
	for rows.Next() {
		var r RelationshipRecord
		if err := rows.Scan(&r.PersonID1, &r.PersonID2, &r.RelationshipType,
			&r.RelationshipReferenceID, &r.RelationshipNotes); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) Verses() ([]VerseReference, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT source, person_id, verse_id, person_verse_sequence, person_verse_notes
		FROM person_verses ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VerseReference
	for rows.Next() {
		var v VerseReference
		var source string
		if err := rows.Scan(&source, &v.PersonID, &v.VerseID,
			&v.PersonVerseSequence, &v.PersonVerseNotes); err != nil {
			return nil, err
		}
		v.Source = VerseSource(source)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) Epochs() ([]EpochRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT epoch_id, epoch_name, first_reference_id FROM epochs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EpochRecord
	for rows.Next() {
		var e EpochRecord
		if err := rows.Scan(&e.EpochID, &e.EpochName, &e.FirstReferenceID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) Events() ([]EventRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`
		SELECT event_id, event_name, first_reference_id, event_notes
		FROM events ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EventRecord
	for rows.Next() {
		var e EventRecord
		if err := rows.Scan(&e.EventID, &e.EventName, &e.FirstReferenceID, &e.EventNotes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) PlaceVerses() ([]PlaceVerseRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`SELECT verse_id, place_id FROM place_verses ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlaceVerseRecord
	for rows.Next() {
		var p PlaceVerseRecord
		if err := rows.Scan(&p.VerseID, &p.PlaceID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) NameMeanings() ([]NameMeaningEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, err := t.db.Query(`SELECT name, meaning FROM name_meanings ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NameMeaningEntry
	for rows.Next() {
		var m NameMeaningEntry
		if err := rows.Scan(&m.Name, &m.Meaning); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (t *SQLiteTables) CountPeople() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int
	err := t.db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&n)
	return n, err
}

func (t *SQLiteTables) CountVerses() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int
	err := t.db.QueryRow(`SELECT COUNT(*) FROM person_verses`).Scan(&n)
	return n, err
}

// Compile-time interface check
var _ Tables = (*SQLiteTables)(nil)
