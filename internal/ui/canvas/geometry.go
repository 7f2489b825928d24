// Package canvas is a cell-grid renderer for widgets that lay themselves out
// in terminal cells and paint through quads and text runs.
package canvas

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Rect is a half-open cell rectangle: it covers columns [X, X+W) and rows
// [Y, Y+H). A rectangle with W or H <= 0 is empty and contains nothing.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right is the first column past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past r.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Translate shifts r by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Shrink insets r by dx columns on each side and dy rows top and bottom.
// The result never has negative size.
func (r Rect) Shrink(dx, dy int) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: max(r.W-2*dx, 0),
		H: max(r.H-2*dy, 0),
	}
}

// Center places a w×h box centred inside r. Odd leftovers go right/down.
func (r Rect) Center(w, h int) Rect {
	w, h = min(w, r.W), min(h, r.H)
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: max(w, 0),
		H: max(h, 0),
	}
}
