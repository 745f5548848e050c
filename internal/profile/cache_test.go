package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReturnsIdenticalPointer(t *testing.T) {
	a := newTestAssembler(t, mosesDataset())
	c := NewCache(a)

	first, err := c.GetOrAssemble(Key{Name: "Moses"})
	require.NoError(t, err)

	second, err := c.GetOrAssemble(Key{Name: "Moses"})
	require.NoError(t, err)

	// Reference identity proves the second call never re-ran the join.
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCacheKeyIsCaseInsensitive(t *testing.T) {
	a := newTestAssembler(t, mosesDataset())
	c := NewCache(a)

	first, err := c.GetOrAssemble(Key{Name: "Moses"})
	require.NoError(t, err)
	second, err := c.GetOrAssemble(Key{Name: "MOSES"})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCacheDistinctKeysDistinctProfiles(t *testing.T) {
	a := newTestAssembler(t, mosesDataset())
	c := NewCache(a)

	moses, err := c.GetOrAssemble(Key{Name: "Moses"})
	require.NoError(t, err)
	amram, err := c.GetOrAssemble(Key{Name: "Amram"})
	require.NoError(t, err)

	assert.NotSame(t, moses, amram)
	assert.Equal(t, 2, c.Len())
}

func TestCacheRejectsEmptyKey(t *testing.T) {
	c := NewCache(newTestAssembler(t, mosesDataset()))
	_, err := c.GetOrAssemble(Key{})
	require.ErrorIs(t, err, ErrNoKey)
	assert.Equal(t, 0, c.Len())
}

func TestCacheIDOnlyKey(t *testing.T) {
	a := newTestAssembler(t, mosesDataset())
	c := NewCache(a)

	first, err := c.GetOrAssemble(Key{ID: "Moses_1"})
	require.NoError(t, err)
	second, err := c.GetOrAssemble(Key{ID: "moses_1"})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "Moses", first.PersonName)
}
