// Package mentions provides a runtime dictionary over known person
// names using Aho-Corasick. A single automaton serves both surface
// lookup and free-text scanning of note fields.
package mentions

import (
	"strings"
	"unicode"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/lineage/internal/tables"
)

// Normalize cleans and lowercases a surface form for matching.
func Normalize(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for _, ch := range s {
		c := unicode.ToLower(ch)

		// Curly apostrophe -> straight
		if c == '’' {
			out.WriteRune('\'')
			continue
		}

		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '\'' {
			out.WriteRune(c)
		} else {
			out.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(out.String()), " ")
}

// Entry is one surface form mapped to a canonical person name.
type Entry struct {
	Surface string
	Name    string
}

// BuildEntries collects surface forms from the person table and the
// label table: the person name itself plus every English label.
func BuildEntries(people []tables.PersonRecord, labels []tables.LabelRecord) []Entry {
	byID := make(map[string]string, len(people))
	entries := make([]Entry, 0, len(people)+len(labels))

	for _, p := range people {
		if p.PersonName == "" {
			continue
		}
		if id := strings.ToLower(p.PersonID); id != "" {
			if _, dup := byID[id]; !dup {
				byID[id] = p.PersonName
			}
		}
		entries = append(entries, Entry{Surface: p.PersonName, Name: p.PersonName})
	}

	for _, l := range labels {
		if l.EnglishLabel == "" {
			continue
		}
		owner, ok := byID[strings.ToLower(l.PersonID)]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Surface: l.EnglishLabel, Name: owner})
	}

	return entries
}

// Dictionary scans text for known people. Matching is case-insensitive
// and whole-word, leftmost-longest.
type Dictionary struct {
	ac ahocorasick.AhoCorasick

	// Pattern index -> canonical names (several people may share a surface)
	patternToNames [][]string

	// Normalized pattern -> pattern index
	patternIndex map[string]int

	patterns []string
}

// Compile builds a Dictionary from entries.
func Compile(entries []Entry) *Dictionary {
	d := &Dictionary{
		patternToNames: [][]string{},
		patternIndex:   make(map[string]int),
		patterns:       []string{},
	}

	for _, e := range entries {
		key := Normalize(e.Surface)
		if key == "" {
			continue
		}

		if idx, exists := d.patternIndex[key]; exists {
			d.patternToNames[idx] = appendUnique(d.patternToNames[idx], e.Name)
		} else {
			idx := len(d.patterns)
			d.patterns = append(d.patterns, key)
			d.patternIndex[key] = idx
			d.patternToNames = append(d.patternToNames, []string{e.Name})
		}
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	d.ac = builder.Build(d.patterns)

	return d
}

// Size returns the number of distinct surface patterns.
func (d *Dictionary) Size() int {
	return len(d.patterns)
}

// Lookup resolves a surface form to canonical names via exact
// dictionary lookup.
func (d *Dictionary) Lookup(surface string) []string {
	idx, exists := d.patternIndex[Normalize(surface)]
	if !exists {
		return nil
	}
	return d.patternToNames[idx]
}

// MentionedIn finds every known person named in the text, deduplicated
// in first-seen order. When several people share a matched surface, the
// first registered wins. The text goes through the same Normalize pass
// as the registered patterns; match offsets are not reported, so the
// rewrite costs nothing.
func (d *Dictionary) MentionedIn(text string) []string {
	normalized := Normalize(text)
	matches := d.ac.FindAll(normalized)

	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		names := d.patternToNames[m.Pattern()]
		if len(names) == 0 {
			continue
		}
		name := names[0]
		k := strings.ToLower(name)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, name)
	}
	return out
}

func appendUnique(slice []string, item string) []string {
	for _, s := range slice {
		if s == item {
			return slice
		}
	}
	return append(slice, item)
}
