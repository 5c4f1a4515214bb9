// Package paint turns an outline into a gradient-filled triangle mesh.
package paint

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/fluid-bubble/internal/blob"
)

// RGBA is a colour with straight (non-premultiplied) alpha, channels in 0..1.
type RGBA struct {
	R, G, B, A float64
}

func (c RGBA) color() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// LinearGradient blends From into To along the line Start->End. Start and
// End are in unit coordinates of the box being painted: (0,0) is its
// top-left corner, (1,1) its bottom-right.
type LinearGradient struct {
	From, To   RGBA
	Start, End blob.Point
}

// At returns the gradient colour at offset t, clamped to 0..1.
func (g LinearGradient) At(t float64) RGBA {
	t = clamp01(t)
	c := g.From.color().BlendRgb(g.To.color(), t)
	return RGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: g.From.A + (g.To.A-g.From.A)*t,
	}
}

// Offset projects p, given in surface coordinates, onto the gradient axis
// of box. The result is not clamped.
func (g LinearGradient) Offset(p blob.Point, box blob.Viewport) float64 {
	sx := box.X + g.Start.X*box.Width
	sy := box.Y + g.Start.Y*box.Height
	dx := (g.End.X - g.Start.X) * box.Width
	dy := (g.End.Y - g.Start.Y) * box.Height

	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((p.X-sx)*dx + (p.Y-sy)*dy) / l2
}

// ColorAt is At(Offset(p, box)).
func (g LinearGradient) ColorAt(p blob.Point, box blob.Viewport) RGBA {
	return g.At(g.Offset(p, box))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
