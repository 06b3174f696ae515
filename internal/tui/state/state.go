package state

import "math"

// HeaderLines is the height of the header bar above the pages.
const HeaderLines = 3

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// PageHeight is the number of rows one feed page occupies.
func PageHeight(termHeight int) int {
	h := termHeight - HeaderLines
	if h < 3 {
		return 3
	}
	return h
}

// ScrollTarget is the scroll position that puts page index at the top of
// the viewport.
func ScrollTarget(index, pageHeight int) float64 {
	return float64(index * pageHeight)
}

// ViewportCenter is the vertical center of the viewport in screen rows.
func ViewportCenter(viewportHeight int) float64 {
	return float64(viewportHeight) / 2
}

// VisibleOffsets returns, for every page intersecting the viewport, the
// screen position of its vertical center relative to the viewport top.
// Positions may be negative or exceed the viewport for partly visible pages.
func VisibleOffsets(scrollPos float64, pageHeight, viewportHeight, n int) map[int]float64 {
	out := make(map[int]float64)
	if n <= 0 || pageHeight <= 0 || viewportHeight <= 0 {
		return out
	}
	ph := float64(pageHeight)
	first := int(math.Floor(scrollPos / ph))
	last := int(math.Ceil((scrollPos+float64(viewportHeight))/ph)) - 1
	first = max(first, 0)
	last = min(last, n-1)
	for i := first; i <= last; i++ {
		out[i] = float64(i)*ph + ph/2 - scrollPos
	}
	return out
}

// Settled reports whether a spring animation has come to rest.
func Settled(pos, velocity, target float64) bool {
	return math.Abs(pos-target) < 0.01 && math.Abs(velocity) < 0.01
}

// WindowStart converts a fractional scroll position into the first content
// row to draw.
func WindowStart(scrollPos float64) int {
	return int(math.Round(scrollPos))
}
