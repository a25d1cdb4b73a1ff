package geo

import (
	"errors"
	"testing"
)

func TestNewRect(t *testing.T) {
	cases := []struct {
		bl, tr       Point
		expectedFail bool
	}{
		{Point{0, 0}, Point{0, 0}, false},
		{Point{-5, -3}, Point{2, 9}, false},
		{Point{0, 0}, Point{-1, 0}, true},
		{Point{0, 0}, Point{0, -1}, true},
		{Point{9000, 0}, Point{0, 0}, true},
	}
	for _, c := range cases {
		rect, err := NewRect(c.bl, c.tr)
		if c.expectedFail {
			if !errors.Is(err, ErrInvalidRectangle) {
				t.Errorf("NewRect(%v, %v): expected ErrInvalidRectangle, got %v", c.bl, c.tr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewRect(%v, %v): unexpected error %v", c.bl, c.tr, err)
		}
		if rect.BottomLeft != c.bl || rect.TopRight != c.tr {
			t.Errorf("NewRect(%v, %v): got inconsistent corners %v", c.bl, c.tr, rect)
		}
	}
}

var testRects = []struct {
	r            Rect
	expectedArea int
	isPoint      bool
}{
	{Rect{Point{0, 0}, Point{0, 0}}, 0, true},
	{Rect{Point{0, 0}, Point{1, 1}}, 1, false},
	{Rect{Point{-1, -1}, Point{0, 0}}, 1, false},
	{Rect{Point{0, 0}, Point{10, 0}}, 0, false},
	{Rect{Point{0, 0}, Point{10, 10}}, 100, false},
}

func TestArea(t *testing.T) {
	for _, c := range testRects {
		if got := c.r.Area(); got != c.expectedArea {
			t.Errorf("%v.Area() = %d, want %d", c.r, got, c.expectedArea)
		}
	}
}

func TestIsPoint(t *testing.T) {
	for _, c := range testRects {
		if got := c.r.IsPoint(); got != c.isPoint {
			t.Errorf("%v.IsPoint() = %v, want %v", c.r, got, c.isPoint)
		}
	}
}

func TestUnion(t *testing.T) {
	cases := []struct {
		a, b, want Rect
	}{
		{
			Rect{Point{0, 0}, Point{1, 1}},
			Rect{Point{1, 0}, Point{2, 1}},
			Rect{Point{0, 0}, Point{2, 1}},
		},
		{
			Rect{Point{0, 0}, Point{0, 0}},
			Rect{Point{0, 0}, Point{0, 0}},
			Rect{Point{0, 0}, Point{0, 0}},
		},
		{
			Rect{Point{-50, -50}, Point{0, 0}},
			Rect{Point{-20, -20}, Point{0, 0}},
			Rect{Point{-50, -50}, Point{0, 0}},
		},
	}
	for _, c := range cases {
		if got := Union(c.a, c.b); got != c.want {
			t.Errorf("Union(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		if got := Union(c.b, c.a); got != c.want {
			t.Errorf("Union(%v, %v) = %v, want %v", c.b, c.a, got, c.want)
		}
	}
}

func TestEnlargement(t *testing.T) {
	cases := []struct {
		container, added Rect
		want             int
	}{
		{Rect{Point{0, 0}, Point{10, 10}}, Rect{Point{5, 5}, Point{15, 15}}, 125},
		{Rect{Point{0, 0}, Point{10, 10}}, Rect{Point{2, 2}, Point{8, 8}}, 0},
		{Rect{Point{0, 0}, Point{0, 0}}, Rect{Point{0, 0}, Point{0, 0}}, 0},
	}
	for _, c := range cases {
		if got := Enlargement(c.container, c.added); got != c.want {
			t.Errorf("Enlargement(%v, %v) = %d, want %d", c.container, c.added, got, c.want)
		}
		if got := Enlargement(c.container, c.added); got < 0 {
			t.Errorf("Enlargement(%v, %v) = %d, must be non-negative", c.container, c.added, got)
		}
	}
}

var overlapCases = []struct {
	a, b     Rect
	expected bool
}{
	{Rect{Point{0, 0}, Point{0, 0}}, Rect{Point{0, 0}, Point{0, 0}}, true},
	{Rect{Point{-5, -5}, Point{5, 5}}, Rect{Point{10, -5}, Point{20, 5}}, false},
	{Rect{Point{0, 0}, Point{1, 1}}, Rect{Point{1, 0}, Point{2, 1}}, true}, // touching edge
	{Rect{Point{0, 2}, Point{1, 3}}, Rect{Point{0, 0}, Point{1, 1}}, false},
	{Rect{Point{0, 0}, Point{4, 4}}, Rect{Point{1, 3}, Point{5, 3}}, true},
}

func TestOverlaps(t *testing.T) {
	for _, c := range overlapCases {
		if got := Overlaps(c.a, c.b); got != c.expected {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", c.a, c.b, got, c.expected)
		}
		if got := Overlaps(c.b, c.a); got != c.expected {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", c.b, c.a, got, c.expected)
		}
	}
}
