package main

import (
	"fmt"
	"io"

	"github.com/eikrem/rtreeidx/geo"
	"github.com/eikrem/rtreeidx/rtree"
)

// printTree reproduces the original traversal printer: a "Tree MBR: ..."
// summary line computed from the root's direct entries, followed by one
// line per node labelled by kind, with leaf entries rendered as points
// when degenerate and every other entry rendered as a rectangle.
func printTree(w io.Writer, tree *rtree.Tree) {
	first := true
	tree.Preorder(func(kind rtree.NodeKind, mbrs []geo.Rect) {
		if first {
			fmt.Fprintf(w, "Tree MBR: %s", formatRectUnion(mbrs))
			first = false
		}
		fmt.Fprintf(w, "\n%s Node: ", kind)
		for i, r := range mbrs {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			if kind == rtree.Leaf && r.IsPoint() {
				fmt.Fprintf(w, "(%d, %d)", r.BottomLeft.X, r.BottomLeft.Y)
			} else {
				fmt.Fprintf(w, "(%d, %d) -> (%d, %d)", r.BottomLeft.X, r.BottomLeft.Y, r.TopRight.X, r.TopRight.Y)
			}
		}
	})
	fmt.Fprintln(w)
}

func formatRectUnion(mbrs []geo.Rect) string {
	if len(mbrs) == 0 {
		return "(empty)"
	}
	u := mbrs[0]
	for _, r := range mbrs[1:] {
		u = geo.Union(u, r)
	}
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", u.BottomLeft.X, u.BottomLeft.Y, u.TopRight.X, u.TopRight.Y)
}
