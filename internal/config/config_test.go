package config

import (
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	m, err := Load(fs, "lineage.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), m)
}

func TestLoadOverlaysOnDefaults(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	manifest := []byte("tables:\n  people: custom-people.csv\nlogging:\n  level: debug\n")
	require.NoError(t, hackpadfs.WriteFullFile(fs, "lineage.yaml", manifest, 0644))

	m, err := Load(fs, "lineage.yaml")
	require.NoError(t, err)

	assert.Equal(t, "custom-people.csv", m.Tables.People)
	assert.Equal(t, "debug", m.Logging.Level)

	// Everything else keeps defaults
	assert.Equal(t, "BibleData-PersonLabel.json", m.Tables.Labels)
	assert.Equal(t, "console", m.Logging.Format)
}

func TestLoadMalformedManifest(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	require.NoError(t, hackpadfs.WriteFullFile(fs, "lineage.yaml", []byte("tables: ["), 0644))

	_, err = Load(fs, "lineage.yaml")
	assert.Error(t, err)
}
