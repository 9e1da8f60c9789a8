// Package core provides the types shared between games and the terminal
// platform: screen buffers, input frames and runtime configuration.
// It has no external dependencies so game logic stays testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the rectangle inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Centered returns a w x h rectangle centered inside an area of the given size.
// The origin is clamped at zero when the area is too small.
func Centered(areaW, areaH, w, h int) Rect {
	return Rect{X: max((areaW-w)/2, 0), Y: max((areaH-h)/2, 0), W: w, H: h}
}
