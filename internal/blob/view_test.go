package blob

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTime hands out a monotonically increasing time in fixed steps.
type fakeTime struct {
	now  time.Time
	step time.Duration
}

func (f *fakeTime) Now() time.Time {
	t := f.now
	f.now = f.now.Add(f.step)
	return t
}

func newTestView(t *testing.T, opts ...ViewOption) *View {
	t.Helper()
	ft := &fakeTime{now: time.Unix(0, 0), step: ReferenceTick}
	opts = append([]ViewOption{WithClock(NewClock(ft.Now))}, opts...)
	return NewView(newTestAnimator(t, CounterClockwise), opts...)
}

func TestView_FrameBeforeResize(t *testing.T) {
	v := newTestView(t)
	out, err := v.Frame()
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.InDelta(t, -0.03, v.animator.State().PrimaryPhase, 1e-12)
}

func TestView_Frame(t *testing.T) {
	v := newTestView(t)
	_, err := v.Resize(CenteredViewport(480, 480, 300))
	require.NoError(t, err)

	out, err := v.Frame()
	require.NoError(t, err)
	require.Len(t, out, 121)
	assert.True(t, out.Closed())
	assert.Equal(t, ReferenceTick, v.LastDelta())
	assert.Equal(t, uint64(1), v.Frames())
	assert.InDelta(t, -0.039, v.animator.State().SecondaryPhase, 1e-12)
}

func TestView_ResizeRecentresWithoutTicking(t *testing.T) {
	v := newTestView(t)
	_, err := v.Resize(CenteredViewport(300, 300, 300))
	require.NoError(t, err)
	_, err = v.Frame()
	require.NoError(t, err)
	state := v.animator.State()
	before := v.Outline()

	after, err := v.Resize(CenteredViewport(500, 400, 300))
	require.NoError(t, err)
	assert.Equal(t, state, v.animator.State())
	require.Len(t, after, len(before))
	for i := range after {
		assert.InDelta(t, before[i].X+100, after[i].X, 1e-9)
		assert.InDelta(t, before[i].Y+50, after[i].Y, 1e-9)
	}
	assert.Equal(t, Point{X: 250, Y: 200}, v.Viewport().Center())

	_, err = v.Resize(Viewport{Width: 0, Height: 10})
	assert.Error(t, err)
}

func TestView_FixedStep(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0), step: 50 * time.Millisecond}
	v := NewView(newTestAnimator(t, Clockwise), WithClock(NewClock(ft.Now)), WithFixedStep(true))
	for i := 0; i < 10; i++ {
		_, err := v.Frame()
		require.NoError(t, err)
	}
	assert.InDelta(t, 0.3, v.animator.State().PrimaryPhase, 1e-9)
}

func TestView_ToggleResamples(t *testing.T) {
	var seen []Direction
	v := newTestView(t, WithDirectionListener(func(d Direction) { seen = append(seen, d) }))
	_, err := v.Resize(CenteredViewport(300, 300, 300))
	require.NoError(t, err)

	v.Toggle()
	assert.Equal(t, Clockwise, v.Direction())
	v.SetDirection(Clockwise)
	v.SetDirection(CounterClockwise)
	assert.Equal(t, []Direction{Clockwise, CounterClockwise}, seen)
	assert.True(t, v.Outline().Closed())
}

func TestView_RequestToggleFromOtherGoroutines(t *testing.T) {
	v := newTestView(t)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.RequestToggle()
		}()
	}
	wg.Wait()

	// Requests are not applied until the next frame.
	assert.Equal(t, CounterClockwise, v.Direction())
	_, err := v.Frame()
	require.NoError(t, err)
	assert.Equal(t, Clockwise, v.Direction())
	assert.InDelta(t, 0.03, v.animator.State().PrimaryPhase, 1e-12)

	v.RequestToggle()
	v.RequestToggle()
	_, err = v.Frame()
	require.NoError(t, err)
	assert.Equal(t, Clockwise, v.Direction())
}

func TestView_Close(t *testing.T) {
	v := newTestView(t)
	_, err := v.Resize(CenteredViewport(300, 300, 300))
	require.NoError(t, err)

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	assert.Nil(t, v.Outline())

	_, err = v.Frame()
	assert.ErrorIs(t, err, ErrViewClosed)
	_, err = v.Resize(CenteredViewport(10, 10, 5))
	assert.ErrorIs(t, err, ErrViewClosed)

	v.Toggle()
	assert.Equal(t, CounterClockwise, v.Direction())
}

func TestView_FailIsSticky(t *testing.T) {
	v := newTestView(t)
	boom := errors.New("display link lost")
	v.Fail(boom)
	v.Fail(errors.New("second"))

	_, err := v.Frame()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, boom, v.Err())
	require.NoError(t, v.Close())
	assert.ErrorIs(t, v.Err(), boom)
}

func TestView_FirstFrameIgnoresStartupDelay(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0), step: ReferenceTick}
	v := NewView(newTestAnimator(t, CounterClockwise), WithClock(NewClock(ft.Now)))

	// Window creation takes a while before the first frame arrives.
	ft.now = ft.now.Add(800 * time.Millisecond)

	_, err := v.Frame()
	require.NoError(t, err)
	assert.InDelta(t, -0.03, v.animator.State().PrimaryPhase, 1e-12)
	assert.Equal(t, ReferenceTick, v.LastDelta())
	assert.Equal(t, time.Duration(0), v.Elapsed())

	_, err = v.Frame()
	require.NoError(t, err)
	assert.InDelta(t, -0.06, v.animator.State().PrimaryPhase, 1e-12)
}

func TestView_StallIsCapped(t *testing.T) {
	v := newTestView(t)
	ft := &fakeTime{now: time.Unix(0, 0), step: ReferenceTick}
	v.clock = NewClock(ft.Now)

	_, err := v.Frame()
	require.NoError(t, err)
	before := v.animator.State().PrimaryPhase

	ft.now = ft.now.Add(10 * time.Second)
	_, err = v.Frame()
	require.NoError(t, err)

	assert.Equal(t, MaxFrameDelta, v.LastDelta())
	ticks := float64(MaxFrameDelta) / float64(ReferenceTick)
	assert.InDelta(t, before-0.03*ticks, v.animator.State().PrimaryPhase, 1e-12)
}

func TestClock_Reset(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0), step: time.Second}
	c := NewClock(ft.Now)
	c.Advance()
	c.Reset()

	assert.Equal(t, time.Unix(2, 0), c.Start())
	assert.Equal(t, c.Start(), c.Current())
	assert.Equal(t, time.Duration(0), c.Elapsed())
}

func TestView_ResizeSurface(t *testing.T) {
	v := newTestView(t)

	out, err := v.ResizeSurface(500, 400, 300)
	require.NoError(t, err)
	require.Len(t, out, 121)
	assert.Equal(t, Point{X: 250, Y: 200}, v.Viewport().Center())

	// A minimised window keeps the last outline.
	same, err := v.ResizeSurface(0, 0, 300)
	require.NoError(t, err)
	assert.Equal(t, out, same)
	assert.NoError(t, v.Err())
}

func TestView_ResizeSurfaceFailureStopsAnimation(t *testing.T) {
	v := newTestView(t)

	_, err := v.ResizeSurface(480, 480, 0)
	require.Error(t, err)
	assert.ErrorIs(t, v.Err(), err)
	assert.Nil(t, v.Outline())

	_, err = v.Frame()
	assert.Error(t, err)
	_, err = v.ResizeSurface(480, 480, 300)
	assert.Error(t, err)
}
