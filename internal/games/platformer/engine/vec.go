// Package engine provides the level simulation for the platformer.
// It is UI-agnostic: it consumes a key snapshot and a time delta per call
// and exposes tiles, actors and the level status for a renderer to read.
package engine

import "fmt"

// Vec is a 2D point or displacement in tile units.
type Vec struct {
	X, Y float64
}

// V is a shorthand constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the componentwise sum of two vectors.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by factor.
func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// String returns a compact representation for debugging.
func (v Vec) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
