package rtree

import "github.com/eikrem/rtreeidx/geo"

// Search invokes visit once per leaf entry whose MBR overlaps window, in
// depth-first entry order. Read-only; makes no allocations itself and
// must not run concurrently with Insert.
func (t *Tree) Search(window geo.Rect, visit func(rect geo.Rect)) {
	searchNode(t.root, window, visit)
}

func searchNode(n *node, window geo.Rect, visit func(rect geo.Rect)) {
	for _, e := range n.entries {
		if !geo.Overlaps(window, e.mbr) {
			continue
		}
		if n.isLeaf {
			visit(e.mbr)
		} else {
			searchNode(e.child, window, visit)
		}
	}
}
