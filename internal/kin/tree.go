// Package kin renders a profile's family circle as a small tree
// rooted at the person, suitable for direct serialization to a UI.
package kin

import (
	"strings"

	"github.com/kittclouds/lineage/internal/profile"
)

// Node is one person in the tree. Role says how the node relates to
// its parent node ("Father", "Mother", "Child", or a raw relationship
// role). The root carries no role.
type Node struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Outline builds the family tree for a profile. Parents and children
// come from the profile's own fields; remaining relationships are
// appended as extra nodes, except parental and child roles which would
// duplicate them.
func Outline(p *profile.PersonProfile) Node {
	root := Node{Name: p.PersonName}

	if p.Father != profile.NotListed && p.Father != "" {
		root.Children = append(root.Children, Node{Name: p.Father, Role: "Father"})
	}
	if p.Mother != profile.NotListed && p.Mother != "" {
		root.Children = append(root.Children, Node{Name: p.Mother, Role: "Mother"})
	}

	for _, child := range p.Children {
		root.Children = append(root.Children, Node{Name: child, Role: "Child"})
	}

	for _, rel := range p.Relationships {
		if skipRole(rel.Role) {
			continue
		}
		root.Children = append(root.Children, Node{Name: rel.OtherName, Role: rel.Role})
	}

	return root
}

// skipRole drops relationship roles already covered by the parent and
// child nodes. Only the bare parental roles are dropped; inverted
// forms like "is father of" still surface as extra nodes.
func skipRole(role string) bool {
	r := strings.ToLower(role)
	if r == "father" || r == "mother" {
		return true
	}
	return strings.Contains(r, "child")
}
