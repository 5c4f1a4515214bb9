package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fluid-bubble/internal/paint"
)

var (
	backgroundColor = color.RGBA{R: 18, G: 22, B: 30, A: 255}
	rimColor        = color.RGBA{R: 200, G: 235, B: 245, A: 140}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawBubble(screen)
	g.drawButton(screen)

	status := fmt.Sprintf("%s  %.0f fps  %s",
		formatDuration(g.view.Elapsed()), g.frames.FPS(), g.view.Direction())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawBubble fills the outline with the gradient as a triangle fan.
func (g *Game) drawBubble(screen *ebiten.Image) {
	outline := g.view.Outline()
	if outline == nil {
		return
	}
	vp := g.view.Viewport()
	g.mesh = paint.Fill(g.mesh, outline, vp.Center(), vp, g.opts.Gradient)
	if g.mesh.Triangles() == 0 {
		return
	}

	g.vertices = g.vertices[:0]
	for _, v := range g.mesh.Vertices {
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		})
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(g.vertices, g.mesh.Indices, g.white, op)

	// Thin rim along the outline
	for i := 0; i+1 < len(outline); i++ {
		a, b := outline[i], outline[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, rimColor, true)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	r := g.buttonRect()
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Direction: " + g.view.Direction().String()
	textWidth := len(text) * 6 // debug font glyphs are 6px wide
	textX := r.Min.X + (r.Dx()-textWidth)/2
	textY := r.Min.Y + (r.Dy()-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
