// Package layout computes picker window geometry from host-supplied display
// rectangles. It is a pure function of its inputs and knows nothing about
// filtering or selection.
package layout

// Rect is a display rectangle in virtual-desktop coordinates.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the bounding rectangle of r and o. An empty operand does not
// contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	x2 := max(r.X+r.W, o.X+o.W)
	y2 := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x, Y: y, W: x2 - x, H: y2 - y}
}

// Target returns the rectangle the picker window should occupy. With spanAll
// set it is the bounding rectangle of every display; otherwise it is the
// primary display (the first entry). An empty display list yields an empty
// rectangle and the caller falls back to its own bounds.
func Target(displays []Rect, spanAll bool) Rect {
	if len(displays) == 0 {
		return Rect{}
	}
	if !spanAll {
		return displays[0]
	}
	out := displays[0]
	for _, d := range displays[1:] {
		out = out.Union(d)
	}
	return out
}
