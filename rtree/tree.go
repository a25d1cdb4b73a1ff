package rtree

import (
	"fmt"

	"github.com/eikrem/rtreeidx/geo"
)

// ErrInvalidRectangle is wrapped by Insert when bottomLeft is not
// componentwise <= topRight.
var ErrInvalidRectangle = geo.ErrInvalidRectangle

// Tree is an R-tree over axis-aligned integer rectangles. The zero value
// is not usable; construct one with New.
type Tree struct {
	root *node
}

// New returns an empty tree: a single empty leaf root.
func New() *Tree {
	return &Tree{root: newNode(true)}
}

// Insert adds the rectangle bounded by bottomLeft and topRight to the
// tree. bottomLeft must be componentwise <= topRight; otherwise Insert
// returns a wrapped ErrInvalidRectangle and the tree is left unchanged.
func (t *Tree) Insert(bottomLeft, topRight geo.Point) error {
	rect, err := geo.NewRect(bottomLeft, topRight)
	if err != nil {
		return fmt.Errorf("rtree: insert %v -> %v: %w", bottomLeft, topRight, err)
	}
	t.insertRect(rect)
	return nil
}

func (t *Tree) insertRect(rect geo.Rect) {
	leaf := t.chooseLeaf(rect)
	leaf.entries = append(leaf.entries, entry{mbr: rect})
	if len(leaf.entries) > maxEntries {
		n1, n2 := splitNode(leaf)
		t.adjustTree(leaf, n1, n2)
	} else {
		t.adjustTree(leaf, leaf, nil)
	}
}

// chooseLeaf descends from the root choosing, at each non-leaf node, the
// entry whose subtree needs the least enlargement to cover rect. Ties
// are broken by smaller entry MBR area, then by earlier entry position.
func (t *Tree) chooseLeaf(rect geo.Rect) *node {
	n := t.root
	for !n.isLeaf {
		best := 0
		bestEnlargement := geo.Enlargement(n.entries[0].mbr, rect)
		bestArea := n.entries[0].mbr.Area()
		for i := 1; i < len(n.entries); i++ {
			enlargement := geo.Enlargement(n.entries[i].mbr, rect)
			area := n.entries[i].mbr.Area()
			if enlargement < bestEnlargement ||
				(enlargement == bestEnlargement && area < bestArea) {
				best = i
				bestEnlargement = enlargement
				bestArea = area
			}
		}
		n = n.entries[best].child
	}
	return n
}

// adjustTree walks from n up to the root, refreshing parent MBRs and
// propagating splits. n1 and n2 describe what n became: if n2 is nil, n
// did not split and n1 == n; otherwise n was split into n1 (n itself,
// entries reduced) and the newly allocated n2.
func (t *Tree) adjustTree(n, n1, n2 *node) {
	for {
		if n == t.root {
			if n2 != nil {
				t.promoteRoot(n1, n2)
			}
			return
		}
		parent := n.parent
		idx := entryIndexFor(parent, n)
		parent.entries[idx] = entry{mbr: mbrOf(n1.entries), child: n1}
		n1.parent = parent
		if n2 != nil {
			parent.entries = append(parent.entries, entry{mbr: mbrOf(n2.entries), child: n2})
			n2.parent = parent
		}
		if len(parent.entries) > maxEntries {
			s1, s2 := splitNode(parent)
			n, n1, n2 = parent, s1, s2
		} else {
			n, n1, n2 = parent, parent, nil
		}
	}
}

// promoteRoot installs a new non-leaf root over n1 and n2, the two nodes
// the old root split into. Tree height increases by one.
func (t *Tree) promoteRoot(n1, n2 *node) {
	newRoot := newNode(false)
	newRoot.entries = append(newRoot.entries,
		entry{mbr: mbrOf(n1.entries), child: n1},
		entry{mbr: mbrOf(n2.entries), child: n2},
	)
	n1.parent = newRoot
	n2.parent = newRoot
	t.root = newRoot
}
