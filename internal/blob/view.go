package blob

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrViewClosed is returned by a View after Close.
var ErrViewClosed = errors.New("view closed")

// View binds an Animator to a render surface. The surface calls Frame once
// per display refresh and Resize whenever its geometry changes; the view
// keeps the latest outline for painting. All methods except RequestToggle
// must be called from the goroutine that drives frames.
type View struct {
	animator  *Animator
	clock     *Clock
	viewport  Viewport
	outline   Outline
	fixedStep bool
	lastDelta time.Duration
	frames    uint64

	onDirection func(Direction)

	// toggles requested from other goroutines, applied on the next Frame
	pendingToggles atomic.Int32

	err error
}

type ViewOption func(*View)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c *Clock) ViewOption {
	return func(v *View) { v.clock = c }
}

// WithFixedStep advances one reference tick per frame regardless of the
// elapsed time.
func WithFixedStep(fixed bool) ViewOption {
	return func(v *View) { v.fixedStep = fixed }
}

// WithDirectionListener is called on the frame goroutine after every
// direction change.
func WithDirectionListener(fn func(Direction)) ViewOption {
	return func(v *View) { v.onDirection = fn }
}

// NewView starts the animation clock for a.
func NewView(a *Animator, opts ...ViewOption) *View {
	v := &View{animator: a}
	for _, opt := range opts {
		opt(v)
	}
	if v.clock == nil {
		v.clock = NewClock(nil)
	}
	return v
}

// Frame advances the animation and resamples the outline.
func (v *View) Frame() (Outline, error) {
	if v.err != nil {
		return nil, v.err
	}

	if n := v.pendingToggles.Swap(0); n%2 != 0 {
		v.animator.ToggleDirection()
		v.notifyDirection()
	}

	var dt time.Duration
	if v.frames == 0 {
		// The clock may have started long before the surface produced its
		// first frame; the first frame advances exactly one reference tick.
		v.clock.Reset()
		dt = ReferenceTick
	} else {
		dt = min(v.clock.Advance(), MaxFrameDelta)
	}
	if v.fixedStep {
		v.animator.Step()
	} else {
		v.animator.Tick(dt)
	}
	v.lastDelta = dt
	v.frames++

	v.resample()
	return v.outline, nil
}

// Resize recentres the outline on vp without advancing the animation.
func (v *View) Resize(vp Viewport) (Outline, error) {
	if v.err != nil {
		return nil, v.err
	}
	if vp.Empty() {
		return nil, fmt.Errorf("resize to empty viewport %gx%g", vp.Width, vp.Height)
	}
	if vp != v.viewport || v.outline == nil {
		v.viewport = vp
		v.resample()
	}
	return v.outline, nil
}

// ResizeSurface recentres a size x size bubble in a w x h surface. A surface
// with no area, such as a minimised window, keeps the current outline. Any
// other resize failure stops the animation.
func (v *View) ResizeSurface(w, h, size float64) (Outline, error) {
	if v.err != nil {
		return nil, v.err
	}
	if w <= 0 || h <= 0 {
		return v.outline, nil
	}
	out, err := v.Resize(CenteredViewport(w, h, size))
	if err != nil {
		v.Fail(err)
		return nil, err
	}
	return out, nil
}

// Toggle flips the direction and resamples immediately.
func (v *View) Toggle() {
	if v.err != nil {
		return
	}
	v.animator.ToggleDirection()
	v.notifyDirection()
	v.resample()
}

// SetDirection sets the direction explicitly.
func (v *View) SetDirection(d Direction) {
	if v.err != nil || v.animator.Direction() == d {
		return
	}
	v.animator.SetDirection(d)
	v.notifyDirection()
	v.resample()
}

// RequestToggle queues a toggle from any goroutine. It takes effect on the
// next Frame.
func (v *View) RequestToggle() {
	v.pendingToggles.Add(1)
}

func (v *View) Direction() Direction     { return v.animator.Direction() }
func (v *View) Outline() Outline         { return v.outline }
func (v *View) Viewport() Viewport       { return v.viewport }
func (v *View) Config() WaveConfig       { return v.animator.Config() }
func (v *View) LastDelta() time.Duration { return v.lastDelta }
func (v *View) Elapsed() time.Duration   { return v.clock.Elapsed() }
func (v *View) Frames() uint64           { return v.frames }
func (v *View) Err() error               { return v.err }

// Fail stops the animation with err. Later frames return it.
func (v *View) Fail(err error) {
	if v.err != nil || err == nil {
		return
	}
	v.err = err
	v.outline = nil
}

// Close tears the view down. It is safe to call more than once.
func (v *View) Close() error {
	if v.err == nil {
		v.err = ErrViewClosed
		v.outline = nil
	}
	return nil
}

func (v *View) resample() {
	if v.viewport.Empty() {
		return
	}
	v.outline = v.animator.SampleOutline(v.viewport.Center())
}

func (v *View) notifyDirection() {
	if v.onDirection != nil {
		v.onDirection(v.animator.Direction())
	}
}
