// Package loader reads the dataset tables off a filesystem. All tables
// are fetched concurrently and every failure degrades to an empty
// table, so one broken file never blocks the rest of the dataset.
package loader

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hack-pad/hackpadfs"
	"github.com/jszwec/csvutil"
	"go.uber.org/zap"

	"github.com/kittclouds/lineage/internal/config"
	"github.com/kittclouds/lineage/internal/tables"
)

// Loader fetches and decodes dataset tables.
type Loader struct {
	fs  hackpadfs.FS
	log *zap.Logger
}

// New creates a Loader over fs. A nil logger is replaced with a no-op.
func New(fs hackpadfs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{fs: fs, log: log}
}

// Load fetches every table named in the manifest. Tables load in
// parallel; each one that fails is logged and left empty. The returned
// dataset is always usable.
func (l *Loader) Load(ctx context.Context, m config.Manifest) tables.Dataset {
	var d tables.Dataset
	var wg sync.WaitGroup

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { d.People = loadCSV[tables.PersonRecord](ctx, l, "people", m.Tables.People) })
	run(func() { d.Labels = l.loadLabels(ctx, m.Tables.Labels) })
	run(func() {
		d.Relationships = loadCSV[tables.RelationshipRecord](ctx, l, "relationships", m.Tables.Relationships)
	})
	run(func() { d.Verses = loadCSV[tables.VerseReference](ctx, l, "verses", m.Tables.Verses) })
	run(func() {
		d.VersesTanakh = loadCSV[tables.VerseReference](ctx, l, "verses_tanakh", m.Tables.VersesTanakh)
	})
	run(func() {
		d.VersesApostolic = loadCSV[tables.VerseReference](ctx, l, "verses_apostolic", m.Tables.VersesApostolic)
	})
	run(func() { d.Epochs = loadCSV[tables.EpochRecord](ctx, l, "epochs", m.Tables.Epochs) })
	run(func() { d.Events = loadCSV[tables.EventRecord](ctx, l, "events", m.Tables.Events) })
	run(func() {
		d.PlaceVerses = loadCSV[tables.PlaceVerseRecord](ctx, l, "place_verses", m.Tables.PlaceVerses)
	})
	run(func() {
		d.NameMeanings = loadCSV[tables.NameMeaningEntry](ctx, l, "name_meanings", m.Tables.NameMeanings)
	})

	wg.Wait()
	return d
}

// read fetches a file, honoring context cancellation up front.
func (l *Loader) read(ctx context.Context, table, path string) ([]byte, bool) {
	if path == "" {
		return nil, false
	}
	if err := ctx.Err(); err != nil {
		l.log.Warn("table fetch canceled",
			zap.String("table", table),
			zap.Error(err))
		return nil, false
	}

	data, err := hackpadfs.ReadFile(l.fs, path)
	if err != nil {
		l.log.Warn("table failed to load, continuing with empty",
			zap.String("table", table),
			zap.String("path", path),
			zap.Error(err))
		return nil, false
	}
	return data, true
}

func loadCSV[T any](ctx context.Context, l *Loader, table, path string) []T {
	data, ok := l.read(ctx, table, path)
	if !ok {
		return nil
	}

	var rows []T
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		l.log.Warn("table failed to parse, continuing with empty",
			zap.String("table", table),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}

	l.log.Debug("table loaded",
		zap.String("table", table),
		zap.Int("rows", len(rows)))
	return rows
}

func (l *Loader) loadLabels(ctx context.Context, path string) []tables.LabelRecord {
	data, ok := l.read(ctx, "labels", path)
	if !ok {
		return nil
	}

	var rows []tables.LabelRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		l.log.Warn("table failed to parse, continuing with empty",
			zap.String("table", "labels"),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}

	l.log.Debug("table loaded",
		zap.String("table", "labels"),
		zap.Int("rows", len(rows)))
	return rows
}
