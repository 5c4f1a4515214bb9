package blob

import (
	"math"
	"time"
)

// State is the mutable part of an Animator. Phases are unbounded.
type State struct {
	PrimaryPhase   float64
	SecondaryPhase float64
	Direction      Direction
}

// Animator advances wave phases and samples the resulting outline.
// It is not safe for concurrent use; a single goroutine must drive it.
type Animator struct {
	cfg   WaveConfig
	state State
}

// NewAnimator validates cfg and returns an animator with zero phases.
func NewAnimator(cfg WaveConfig, dir Direction) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animator{
		cfg:   cfg,
		state: State{Direction: dir},
	}, nil
}

func (a *Animator) Config() WaveConfig   { return a.cfg }
func (a *Animator) State() State         { return a.state }
func (a *Animator) Direction() Direction { return a.state.Direction }

// Tick advances the phases by dt, measured in reference ticks, so the wave
// speed does not depend on the frame rate. Non-positive dt is a no-op.
func (a *Animator) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	a.advance(float64(dt) / float64(ReferenceTick))
}

// Step advances the phases by exactly one reference tick.
func (a *Animator) Step() {
	a.advance(1)
}

func (a *Animator) advance(ticks float64) {
	scale := a.cfg.Speed * a.state.Direction.Sign() * ticks
	a.state.PrimaryPhase += a.cfg.PrimaryIncrement * scale
	a.state.SecondaryPhase += a.cfg.SecondaryIncrement * scale
}

// SampleOutline returns Samples+1 points around center for the current
// phases. The closing point is a copy of the first one.
func (a *Animator) SampleOutline(center Point) Outline {
	n := a.cfg.Samples
	out := make(Outline, n+1)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := RadiusAt(angle, a.state.PrimaryPhase, a.state.SecondaryPhase, a.cfg)
		out[i] = PointAt(angle, center, r)
	}
	out[n] = out[0]
	return out
}

func (a *Animator) ToggleDirection() {
	a.state.Direction = a.state.Direction.Opposite()
}

func (a *Animator) SetDirection(d Direction) {
	a.state.Direction = d
}
