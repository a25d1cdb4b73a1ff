package rtree

import "github.com/eikrem/rtreeidx/geo"

// NodeKind labels a node for Preorder, matching the original's
// leaf-first, then-root, then-internal classification.
type NodeKind int

const (
	Leaf NodeKind = iota
	Root
	Internal
)

func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Root:
		return "Root"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Preorder walks the tree root first, emitting each node's entry MBRs to
// visit before descending into its children in entry order. Used by
// tests and the driver's printer to observe structure.
func (t *Tree) Preorder(visit func(kind NodeKind, mbrs []geo.Rect)) {
	preorderNode(t.root, visit)
}

func preorderNode(n *node, visit func(kind NodeKind, mbrs []geo.Rect)) {
	mbrs := make([]geo.Rect, len(n.entries))
	for i, e := range n.entries {
		mbrs[i] = e.mbr
	}
	visit(nodeKind(n), mbrs)
	if !n.isLeaf {
		for _, e := range n.entries {
			preorderNode(e.child, visit)
		}
	}
}

func nodeKind(n *node) NodeKind {
	switch {
	case n.isLeaf:
		return Leaf
	case n.parent == nil:
		return Root
	default:
		return Internal
	}
}
