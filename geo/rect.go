// Package geo implements the integer-plane geometry primitives the R-tree
// engine is built on: points, axis-aligned rectangles, and the handful of
// area computations the tree maintenance algorithms need.
package geo

import "errors"

// ErrInvalidRectangle is returned by NewRect when bottomLeft is not
// componentwise <= topRight.
var ErrInvalidRectangle = errors.New("invalid rectangle: bottomLeft must be <= topRight")

// Point is a pair of integer coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle given by its bottom-left and top-right
// corners. A rectangle whose corners coincide represents a point.
type Rect struct {
	BottomLeft Point
	TopRight   Point
}

// NewRect validates and builds a Rect. bottomLeft must be componentwise
// <= topRight; otherwise ErrInvalidRectangle is returned and no state is
// changed on the caller's side.
func NewRect(bottomLeft, topRight Point) (Rect, error) {
	if bottomLeft.X > topRight.X || bottomLeft.Y > topRight.Y {
		return Rect{}, ErrInvalidRectangle
	}
	return Rect{BottomLeft: bottomLeft, TopRight: topRight}, nil
}

// IsPoint reports whether r is a degenerate rectangle representing a single point.
func (r Rect) IsPoint() bool {
	return r.BottomLeft == r.TopRight
}

// Area returns (topRight.X - bottomLeft.X) * (topRight.Y - bottomLeft.Y).
// Zero for a degenerate (point) rectangle. Overflows silently (two's
// complement wraparound) for coordinates near int's half-range; on the
// usual 64-bit platform that requires side lengths around 2^31, far
// beyond any coordinate this index is meant to hold.
func (r Rect) Area() int {
	return (r.TopRight.X - r.BottomLeft.X) * (r.TopRight.Y - r.BottomLeft.Y)
}

// Union returns the minimum bounding rectangle containing both a and b.
func Union(a, b Rect) Rect {
	return Rect{
		BottomLeft: Point{
			X: min(a.BottomLeft.X, b.BottomLeft.X),
			Y: min(a.BottomLeft.Y, b.BottomLeft.Y),
		},
		TopRight: Point{
			X: max(a.TopRight.X, b.TopRight.X),
			Y: max(a.TopRight.Y, b.TopRight.Y),
		},
	}
}

// Enlargement returns the increase in area when container is enlarged to
// cover added. Always non-negative.
func Enlargement(container, added Rect) int {
	return Union(container, added).Area() - container.Area()
}

// Overlaps reports whether a and b intersect, counting touching edges as overlap.
func Overlaps(a, b Rect) bool {
	xOK := max(a.BottomLeft.X, b.BottomLeft.X) <= min(a.TopRight.X, b.TopRight.X)
	yOK := max(a.BottomLeft.Y, b.BottomLeft.Y) <= min(a.TopRight.Y, b.TopRight.Y)
	return xOK && yOK
}
