package blob

import "math"

// closeEpsilon is the tolerance used when checking that an outline is closed.
const closeEpsilon = 1e-9

// Outline is a closed polygon: the last point repeats the first.
type Outline []Point

// Closed reports whether the outline has at least a triangle and ends where
// it starts.
func (o Outline) Closed() bool {
	if len(o) < 4 {
		return false
	}
	first, last := o[0], o[len(o)-1]
	return math.Abs(first.X-last.X) <= closeEpsilon && math.Abs(first.Y-last.Y) <= closeEpsilon
}

// Vertices returns the distinct vertices, without the closing repeat.
func (o Outline) Vertices() []Point {
	if len(o) == 0 {
		return nil
	}
	return o[:len(o)-1]
}

// Viewport is the rectangle an outline is centred in.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

func (v Viewport) Center() Point {
	return Point{X: v.X + v.Width/2, Y: v.Y + v.Height/2}
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// CenteredViewport returns a size x size square centred in a w x h surface.
func CenteredViewport(w, h, size float64) Viewport {
	return Viewport{
		X:      (w - size) / 2,
		Y:      (h - size) / 2,
		Width:  size,
		Height: size,
	}
}
