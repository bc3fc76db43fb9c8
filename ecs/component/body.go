package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Body is a simulated axis-aligned box. Pos is the box center.
type Body struct {
	Size cp.Vector
	Pos  cp.Vector
	Vel  cp.Vector
	Mass float64
	Fill color.RGBA
}

// HalfExtents returns half the body's width and height.
func (b *Body) HalfExtents() cp.Vector {
	return cp.Vector{X: b.Size.X / 2, Y: b.Size.Y / 2}
}

// BB returns the body's bounding box in world coordinates.
// B and T hold the top and bottom edges since y grows downward on screen.
func (b *Body) BB() cp.BB {
	h := b.HalfExtents()
	return cp.BB{
		L: b.Pos.X - h.X,
		B: b.Pos.Y - h.Y,
		R: b.Pos.X + h.X,
		T: b.Pos.Y + h.Y,
	}
}
