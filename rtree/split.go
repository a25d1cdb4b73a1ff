package rtree

import (
	"math"

	"github.com/eikrem/rtreeidx/geo"
)

// splitNode partitions an overflowing node n (holding maxEntries+1
// entries) into two nodes using Guttman's quadratic split. n1 reuses n's
// identity with a reduced entry set; n2 is freshly allocated. Both share
// n.isLeaf and n's parent (the caller is responsible for re-parenting
// both into whatever replaces n).
func splitNode(n *node) (n1, n2 *node) {
	entries := n.entries
	seedA, seedB := pickSeeds(entries)

	n1 = n
	n2 = newNode(n.isLeaf)
	n2.parent = n.parent

	group1 := make([]entry, 0, maxEntries+1)
	unassigned := make([]entry, 0, len(entries)-2)
	for i, e := range entries {
		switch i {
		case seedA:
			group1 = append(group1, e)
		case seedB:
			n2.entries = append(n2.entries, e)
		default:
			unassigned = append(unassigned, e)
		}
	}
	n1.entries = group1

	for len(unassigned) > 0 {
		// Underflow forcing: if assigning any more to the other group
		// would starve this one below minEntries, dump the rest here.
		if len(n1.entries) == maxEntries+1-minEntries {
			n2.entries = append(n2.entries, unassigned...)
			unassigned = nil
			break
		}
		if len(n2.entries) == maxEntries+1-minEntries {
			n1.entries = append(n1.entries, unassigned...)
			unassigned = nil
			break
		}

		mbr1 := mbrOf(n1.entries)
		mbr2 := mbrOf(n2.entries)

		next, d1, d2 := pickNext(unassigned, mbr1, mbr2)
		e := unassigned[next]
		unassigned = append(unassigned[:next], unassigned[next+1:]...)

		assignTo(n1, n2, e, d1, d2, mbr1, mbr2)
	}

	for i := range n2.entries {
		if n2.entries[i].child != nil {
			n2.entries[i].child.parent = n2
		}
	}
	return n1, n2
}

// pickSeeds scans all pairs and returns the indices maximizing wasted
// area: area(union(a,b)) - area(a) - area(b). The first-scanned maximum
// wins ties.
func pickSeeds(entries []entry) (i, j int) {
	bestI, bestJ := 0, 1
	bestWaste := math.MinInt
	for a := 0; a < len(entries); a++ {
		for b := a + 1; b < len(entries); b++ {
			union := geo.Union(entries[a].mbr, entries[b].mbr)
			waste := union.Area() - entries[a].mbr.Area() - entries[b].mbr.Area()
			if waste > bestWaste {
				bestWaste = waste
				bestI, bestJ = a, b
			}
		}
	}
	return bestI, bestJ
}

// pickNext selects, among the unassigned entries, the one with the
// greatest |d1-d2| (enlargement of group 1's MBR vs group 2's MBR). On
// ties the later-scanned entry wins, reproducing the source's
// maxDiff<=diff comparison. Returns the winning index plus its d1/d2 so
// the caller need not recompute them.
func pickNext(unassigned []entry, mbr1, mbr2 geo.Rect) (idx, d1, d2 int) {
	bestDiff := -1
	for k, e := range unassigned {
		k1 := geo.Enlargement(mbr1, e.mbr)
		k2 := geo.Enlargement(mbr2, e.mbr)
		diff := k1 - k2
		if diff < 0 {
			diff = -diff
		}
		if diff >= bestDiff {
			bestDiff = diff
			idx, d1, d2 = k, k1, k2
		}
	}
	return idx, d1, d2
}

// assignTo places e into n1 or n2, preferring the group with the smaller
// enlargement; ties break by smaller group MBR area, then fewer entries,
// then n1.
func assignTo(n1, n2 *node, e entry, d1, d2 int, mbr1, mbr2 geo.Rect) {
	switch {
	case d1 < d2:
		n1.entries = append(n1.entries, e)
	case d2 < d1:
		n2.entries = append(n2.entries, e)
	default:
		area1, area2 := mbr1.Area(), mbr2.Area()
		switch {
		case area1 < area2:
			n1.entries = append(n1.entries, e)
		case area2 < area1:
			n2.entries = append(n2.entries, e)
		default:
			if len(n2.entries) < len(n1.entries) {
				n2.entries = append(n2.entries, e)
			} else {
				n1.entries = append(n1.entries, e)
			}
		}
	}
}
