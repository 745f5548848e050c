// Package search provides fuzzy person-name search plus the tribe and
// sex filters used alongside it.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/kittclouds/lineage/internal/tables"
)

// MinQueryLength is the shortest query that triggers a search.
const MinQueryLength = 2

// Provider matches a free-text query against known people.
type Provider interface {
	Search(query string, limit int) []tables.PersonRecord
}

// Filter narrows a result set. Empty fields match everything.
type Filter struct {
	Tribe string
	Sex   string
}

// FuzzyProvider ranks people by fuzzy match quality of their names.
type FuzzyProvider struct {
	people []tables.PersonRecord
	names  []string
}

// NewFuzzyProvider builds a provider over the given people. The slice
// is retained, not copied.
func NewFuzzyProvider(people []tables.PersonRecord) *FuzzyProvider {
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.PersonName
	}
	return &FuzzyProvider{people: people, names: names}
}

// Search returns up to limit people ranked by match quality. Queries
// shorter than MinQueryLength return no results. limit <= 0 means
// unlimited.
func (p *FuzzyProvider) Search(query string, limit int) []tables.PersonRecord {
	q := strings.TrimSpace(query)
	if len(q) < MinQueryLength {
		return []tables.PersonRecord{}
	}

	matches := fuzzy.Find(q, p.names)

	out := make([]tables.PersonRecord, 0, len(matches))
	for _, m := range matches {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, p.people[m.Index])
	}
	return out
}

var _ Provider = (*FuzzyProvider)(nil)

// Apply keeps only people passing the filter.
func (f Filter) Apply(people []tables.PersonRecord) []tables.PersonRecord {
	out := make([]tables.PersonRecord, 0, len(people))
	for _, p := range people {
		if f.Tribe != "" && !strings.EqualFold(p.Tribe, f.Tribe) {
			continue
		}
		if f.Sex != "" && !strings.EqualFold(p.Sex, f.Sex) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Tribes lists the distinct non-empty tribe values, sorted.
func Tribes(people []tables.PersonRecord) []string {
	seen := make(map[string]string)
	for _, p := range people {
		t := strings.TrimSpace(p.Tribe)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, dup := seen[k]; !dup {
			seen[k] = t
		}
	}

	out := make([]string, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
