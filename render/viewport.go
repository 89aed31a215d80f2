package render

import (
	"fmt"

	"github.com/beka-birhanu/mazesolver/geometry"
)

// Viewport is the window of the grid that gets drawn. TL is inclusive and BR
// exclusive.
type Viewport struct {
	TL geometry.Point
	BR geometry.Point
}

// Width returns the number of columns in the viewport.
func (v Viewport) Width() int {
	return v.BR.X - v.TL.X
}

// Height returns the number of rows in the viewport.
func (v Viewport) Height() int {
	return v.BR.Y - v.TL.Y
}

// Contains reports whether p is drawn.
func (v Viewport) Contains(p geometry.Point) bool {
	return p.X >= v.TL.X && p.X < v.BR.X && p.Y >= v.TL.Y && p.Y < v.BR.Y
}

func (v Viewport) String() string {
	return fmt.Sprintf("%s-%s", v.TL, v.BR)
}

// ComputeViewport centres a width x height window on focus inside a
// cols x rows grid. A window that sticks out is pushed back inside and then
// clipped to the grid, so it never extends past it.
func ComputeViewport(cols, rows int, focus geometry.Point, width, height int) Viewport {
	tlx, brx := fitAxis(focus.X, width, cols)
	tly, bry := fitAxis(focus.Y, height, rows)
	return Viewport{
		TL: geometry.Point{X: tlx, Y: tly},
		BR: geometry.Point{X: brx, Y: bry},
	}
}

// fitAxis places the span [focus-size/2, focus+size/2) inside [0, limit).
func fitAxis(focus, size, limit int) (int, int) {
	lo, hi := focus-size/2, focus+size/2
	if lo < 0 {
		hi -= lo
		lo = 0
	}
	if hi > limit {
		lo -= hi - limit
		hi = limit
		lo = max(lo, 0)
	}
	return lo, hi
}
