package kin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/lineage/internal/index"
	"github.com/kittclouds/lineage/internal/profile"
	"github.com/kittclouds/lineage/internal/tables"
)

func TestOutlineFullFamily(t *testing.T) {
	p := &profile.PersonProfile{
		PersonName: "Moses",
		Father:     "Amram",
		Mother:     "Jochebed",
		Children: []string{"Gershom", "Eliezer"},
		Relationships: []profile.Relationship{
			{Role: "father", OtherName: "Gershom"},
			{Role: "is child of", OtherName: "Amram"},
			{Role: "spouse", OtherName: "Zipporah"},
			{Role: "is father of", OtherName: "Amram"},
		},
	}

	tree := Outline(p)

	assert.Equal(t, "Moses", tree.Name)
	assert.Empty(t, tree.Role)

	var got [][2]string
	for _, n := range tree.Children {
		got = append(got, [2]string{n.Role, n.Name})
	}
	assert.Equal(t, [][2]string{
		{"Father", "Amram"},
		{"Mother", "Jochebed"},
		{"Child", "Gershom"},
		{"Child", "Eliezer"},
		{"spouse", "Zipporah"},
		{"is father of", "Amram"},
	}, got)
}

func TestOutlineSkipsNotListedParents(t *testing.T) {
	p := &profile.PersonProfile{
		PersonName: "Adam",
		Father:     profile.NotListed,
		Mother:     profile.NotListed,
	}

	tree := Outline(p)
	assert.Empty(t, tree.Children)
}

func TestOutlineFromAssembledProfile(t *testing.T) {
	store := tables.NewMemTables(tables.Dataset{
		People: []tables.PersonRecord{
			{PersonID: "Moses_1", PersonName: "Moses", Father: "Amram", Mother: "Jochebed"},
			{PersonID: "Gershom_1", PersonName: "Gershom", Father: "Moses"},
		},
		Relationships: []tables.RelationshipRecord{
			{PersonID1: "Moses_1", PersonID2: "Zipporah_1", RelationshipType: "spouse"},
		},
	})
	defer store.Close()

	assembler := profile.NewAssembler(index.Build(store))
	p, err := assembler.Assemble(profile.Key{Name: "Moses"})
	require.NoError(t, err)

	tree := Outline(p)
	assert.Equal(t, "Moses", tree.Name)
	assert.Equal(t, []Node{
		{Name: "Amram", Role: "Father"},
		{Name: "Jochebed", Role: "Mother"},
		{Name: "Gershom", Role: "Child"},
		{Name: "Zipporah_1", Role: "spouse"},
	}, tree.Children)
}

func TestOutlineLeafOnly(t *testing.T) {
	p := &profile.PersonProfile{PersonName: "Enoch", Father: "Jared", Mother: profile.NotListed}

	tree := Outline(p)
	assert.Equal(t, []Node{{Name: "Jared", Role: "Father"}}, tree.Children)
}
