// Package navigation holds the navbar and footer entries of a site.
package navigation

import (
	"fmt"

	radix "github.com/armon/go-radix"
)

// Kind tells what a NavItem points at.
type Kind string

const (
	// KindSidebarRef points at a documentation sidebar by its id.
	KindSidebarRef Kind = "sidebarRef"
	// KindExternalLink points at an absolute URL.
	KindExternalLink Kind = "externalLink"
)

// ParseKind parses a nav item kind. The Docusaurus name "docSidebar" is
// accepted for KindSidebarRef.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case string(KindSidebarRef), "docSidebar":
		return KindSidebarRef, true
	case string(KindExternalLink):
		return KindExternalLink, true
	}
	return "", false
}

// Position is the side of the navbar an item is rendered on.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// Positions lists the valid positions in render order.
var Positions = []Position{PositionLeft, PositionRight}

// ParsePosition parses a navbar position.
func ParsePosition(s string) (Position, bool) {
	switch Position(s) {
	case PositionLeft, PositionRight:
		return Position(s), true
	}
	return "", false
}

// NavItem is one entry in the top navigation bar.
// Exactly one of TargetID and Href is set, matching Kind.
type NavItem struct {
	Kind     Kind
	Label    string
	TargetID string
	Href     string
	Position Position
}

// FooterLink is a labelled absolute link in a footer group.
type FooterLink struct {
	Label string
	Href  string
}

// FooterGroup is a titled cluster of footer links.
type FooterGroup struct {
	Title string
	Links []FooterLink
}

// NavItems is an ordered list of nav items.
type NavItems []NavItem

// Index groups nav items by position, keeping their configured order.
type Index struct {
	tree *radix.Tree
}

// NewIndex indexes items.
func NewIndex(items NavItems) *Index {
	tree := radix.New()
	for i, item := range items {
		tree.Insert(indexKey(item.Position, i), item)
	}
	return &Index{tree: tree}
}

// zero padded so the radix tree's lexical walk gives the configured order.
func indexKey(pos Position, i int) string {
	return fmt.Sprintf("%s/%06d", pos, i)
}

// At returns the items rendered at pos, in configured order.
func (idx *Index) At(pos Position) NavItems {
	var items NavItems
	idx.tree.WalkPrefix(string(pos)+"/", func(_ string, v any) bool {
		items = append(items, v.(NavItem))
		return false
	})
	return items
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return idx.tree.Len()
}
