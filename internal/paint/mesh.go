package paint

import "github.com/iburimskiy/fluid-bubble/internal/blob"

// Vertex is a coloured mesh vertex in surface coordinates.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of triangles in m.
func (m Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Fill triangulates outline as a fan around center and colours every vertex
// from g over box. The fan is exact for outlines that are star-shaped around
// center, which holds whenever the radius stays positive. Fill reuses dst's
// backing arrays.
func Fill(dst Mesh, outline blob.Outline, center blob.Point, box blob.Viewport, g LinearGradient) Mesh {
	dst.Vertices = dst.Vertices[:0]
	dst.Indices = dst.Indices[:0]
	if !outline.Closed() {
		return dst
	}

	pts := outline.Vertices()
	if len(pts)+1 > 1<<16 {
		return dst
	}

	dst.Vertices = append(dst.Vertices, vertex(center, g.ColorAt(center, box)))
	for _, p := range pts {
		dst.Vertices = append(dst.Vertices, vertex(p, g.ColorAt(p, box)))
	}

	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		next := (i+1)%n + 1
		dst.Indices = append(dst.Indices, 0, i+1, next)
	}
	return dst
}

// Area is the signed shoelace area of a closed outline. Positive means the
// points run clockwise on a y-down surface.
func Area(outline blob.Outline) float64 {
	var sum float64
	for i := 0; i+1 < len(outline); i++ {
		a, b := outline[i], outline[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func vertex(p blob.Point, c RGBA) Vertex {
	return Vertex{
		X: float32(p.X),
		Y: float32(p.Y),
		R: float32(c.R),
		G: float32(c.G),
		B: float32(c.B),
		A: float32(c.A),
	}
}
