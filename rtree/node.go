// Package rtree implements an in-memory R-tree spatial index over
// axis-aligned integer rectangles, built on Guttman's quadratic split.
package rtree

import "github.com/eikrem/rtreeidx/geo"

// Fan-out bounds. Fixed per this index's design; never configurable.
const (
	maxEntries = 4 // M
	minEntries = 2 // m
)

// entry is one slot inside a node: an MBR paired with either a child
// subtree (internal node) or nothing further (leaf node, where the MBR
// itself is the indexed rectangle).
type entry struct {
	mbr   geo.Rect
	child *node // nil for leaf entries
}

// node is a fixed-capacity container of entries. isLeaf never changes
// after a node is created. parent is nil only for the tree's root.
type node struct {
	isLeaf  bool
	entries []entry
	parent  *node
}

func newNode(isLeaf bool) *node {
	return &node{
		isLeaf:  isLeaf,
		entries: make([]entry, 0, maxEntries+1),
	}
}

// entryIndexFor returns the index in parent.entries whose child is n.
// Every non-root node has exactly one such entry; panics otherwise, since
// that would mean a back-reference invariant was broken somewhere.
func entryIndexFor(parent, n *node) int {
	for i := range parent.entries {
		if parent.entries[i].child == n {
			return i
		}
	}
	panic("rtree: node not found among its parent's entries")
}

// mbrOf returns the union of the MBRs of the given entries. Panics on an
// empty slice; callers never invoke it on an empty node because only the
// root may be empty, and the root's own MBR is never computed (nothing
// points at it).
func mbrOf(entries []entry) geo.Rect {
	r := entries[0].mbr
	for _, e := range entries[1:] {
		r = geo.Union(r, e.mbr)
	}
	return r
}
