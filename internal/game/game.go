// Package game is the ebiten surface that drives and paints the bubble.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fluid-bubble/internal/blob"
	"github.com/iburimskiy/fluid-bubble/internal/config"
	"github.com/iburimskiy/fluid-bubble/internal/framestat"
	"github.com/iburimskiy/fluid-bubble/internal/paint"
)

type Options struct {
	BubbleSize float64
	Gradient   paint.LinearGradient
}

// Game implements ebiten.Game. Update is the frame tick, Layout reports
// resizes and Draw paints the latest outline.
type Game struct {
	view *blob.View
	opts Options

	width, height int

	mesh     paint.Mesh
	vertices []ebiten.Vertex
	white    *ebiten.Image

	frames *framestat.History

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

func New(view *blob.View, opts Options) *Game {
	if opts.BubbleSize <= 0 {
		opts.BubbleSize = config.BubbleSize
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Game{
		view:   view,
		opts:   opts,
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		frames: framestat.NewHistory(config.FrameHistory),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.updateButton() || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.view.Toggle()
	}

	if _, err := g.view.Frame(); err != nil {
		if errors.Is(err, blob.ErrViewClosed) {
			return ebiten.Termination
		}
		return fmt.Errorf("animation stopped: %w", err)
	}
	g.frames.Record(g.view.LastDelta())
	return nil
}

// updateButton tracks hover/press and reports a completed click.
func (g *Game) updateButton() bool {
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inRect(mouseX, mouseY, g.buttonRect())

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	clicked := false
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked = g.buttonPressed && g.buttonHovered
		g.buttonPressed = false
	}
	return clicked
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		_, err := g.view.ResizeSurface(float64(outsideWidth), float64(outsideHeight), g.opts.BubbleSize)
		if err != nil {
			// ResizeSurface has already stopped the view; the next Update
			// returns the error and ends the game loop.
			g.lastErr = err
			log.Printf("resize to %dx%d failed: %v", outsideWidth, outsideHeight, err)
		} else {
			vp := g.view.Viewport()
			log.Printf("surface resized to %dx%d, bubble at (%.0f, %.0f)", outsideWidth, outsideHeight, vp.X, vp.Y)
		}
	}
	return outsideWidth, outsideHeight
}

// Close stops the animation. Frames after Close end the game loop.
func (g *Game) Close() error {
	return g.view.Close()
}

func (g *Game) buttonRect() image.Rectangle {
	x := (g.width - config.ButtonWidth) / 2
	y := g.height - config.ButtonBottomMargin - config.ButtonHeight
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}
