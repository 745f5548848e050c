package tables

import "sync"

// MemTables is the plain in-memory implementation of Tables.
type MemTables struct {
	mu     sync.RWMutex
	data   Dataset
	merged []VerseReference
}

// NewMemTables wraps a loaded dataset. The dataset is not copied; the
// loader hands ownership over and never mutates it afterwards.
func NewMemTables(d Dataset) *MemTables {
	return &MemTables{
		data:   d,
		merged: d.MergedVerses(),
	}
}

// Close is a no-op for MemTables.
func (t *MemTables) Close() error {
	return nil
}

func (t *MemTables) People() ([]PersonRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.People), nil
}

func (t *MemTables) Labels() ([]LabelRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.Labels), nil
}

func (t *MemTables) Relationships() ([]RelationshipRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.Relationships), nil
}

func (t *MemTables) Verses() ([]VerseReference, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.merged), nil
}

func (t *MemTables) Epochs() ([]EpochRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.Epochs), nil
}

func (t *MemTables) Events() ([]EventRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.Events), nil
}

func (t *MemTables) PlaceVerses() ([]PlaceVerseRecord, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.PlaceVerses), nil
}

func (t *MemTables) NameMeanings() ([]NameMeaningEntry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return copySlice(t.data.NameMeanings), nil
}

func (t *MemTables) CountPeople() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data.People), nil
}

func (t *MemTables) CountVerses() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.merged), nil
}

// copySlice returns a fresh slice so callers cannot mutate the store.
// Records are value types, so a shallow copy is a deep copy.
func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Compile-time interface check
var _ Tables = (*MemTables)(nil)
