// Package core provides the platform types shared by games and front ends:
// the colored screen buffer, input frames, and runtime configuration.
// It has no external dependencies so game logic stays testable without a
// terminal.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// Clamp restricts val to [lo, hi]. If hi < lo, lo wins.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
