// Package config describes where the dataset tables live. A YAML
// manifest can override any file path; anything it leaves out keeps
// the shipped defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hack-pad/hackpadfs"
	"gopkg.in/yaml.v3"
)

// TablePaths names the source file for each table. CSV everywhere
// except labels, which is JSON.
type TablePaths struct {
	People          string `yaml:"people"`
	Labels          string `yaml:"labels"`
	Relationships   string `yaml:"relationships"`
	Verses          string `yaml:"verses"`
	VersesTanakh    string `yaml:"verses_tanakh"`
	VersesApostolic string `yaml:"verses_apostolic"`
	Epochs          string `yaml:"epochs"`
	Events          string `yaml:"events"`
	PlaceVerses     string `yaml:"place_verses"`
	NameMeanings    string `yaml:"name_meanings"`
}

// Manifest is the full dataset configuration.
type Manifest struct {
	Tables  TablePaths `yaml:"tables"`
	Logging Logging    `yaml:"logging"`
}

// Logging controls log output.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the manifest for the standard dataset layout.
func Default() Manifest {
	return Manifest{
		Tables: TablePaths{
			People:          "BibleData-Person.csv",
			Labels:          "BibleData-PersonLabel.json",
			Relationships:   "BibleData-PersonRelationship.csv",
			Verses:          "BibleData-PersonVerse.csv",
			VersesTanakh:    "BibleData-PersonVerse-T.csv",
			VersesApostolic: "BibleData-PersonVerse-A.csv",
			Epochs:          "BibleData-Epoch.csv",
			Events:          "BibleData-Event.csv",
			PlaceVerses:     "BibleData-PlaceVerse.csv",
			NameMeanings:    "BibleData-NameMeaning.csv",
		},
		Logging: Logging{Level: "info", Format: "console"},
	}
}

// Load reads a manifest from fsys, layering it over Default. A missing
// file is not an error; the defaults apply unchanged.
func Load(fsys hackpadfs.FS, path string) (Manifest, error) {
	m := Default()

	data, err := hackpadfs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var overlay Manifest
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return m, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	merge(&m, overlay)
	return m, nil
}

func merge(dst *Manifest, src Manifest) {
	setIf(&dst.Tables.People, src.Tables.People)
	setIf(&dst.Tables.Labels, src.Tables.Labels)
	setIf(&dst.Tables.Relationships, src.Tables.Relationships)
	setIf(&dst.Tables.Verses, src.Tables.Verses)
	setIf(&dst.Tables.VersesTanakh, src.Tables.VersesTanakh)
	setIf(&dst.Tables.VersesApostolic, src.Tables.VersesApostolic)
	setIf(&dst.Tables.Epochs, src.Tables.Epochs)
	setIf(&dst.Tables.Events, src.Tables.Events)
	setIf(&dst.Tables.PlaceVerses, src.Tables.PlaceVerses)
	setIf(&dst.Tables.NameMeanings, src.Tables.NameMeanings)
	setIf(&dst.Logging.Level, src.Logging.Level)
	setIf(&dst.Logging.Format, src.Logging.Format)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
