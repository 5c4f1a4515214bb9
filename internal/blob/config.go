package blob

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ReferenceTick is the frame interval the per-tick increments are tuned for.
const ReferenceTick = time.Second / 60

// MaxFrameDelta caps the time a single frame may advance the animation, so
// a stalled or suspended surface does not make the outline jump.
const MaxFrameDelta = 4 * ReferenceTick

// MaxSamples keeps outline meshes addressable with 16-bit indices.
const MaxSamples = 4096

// ErrInvalidConfig is returned when a WaveConfig would produce a degenerate
// or self-intersecting outline.
var ErrInvalidConfig = errors.New("invalid wave config")

// WaveConfig holds the immutable shape and animation parameters.
type WaveConfig struct {
	BaseRadius float64
	Samples    int

	PrimaryFrequency   int
	SecondaryFrequency int
	PrimaryAmplitude   float64
	SecondaryAmplitude float64

	// Phase advance per ReferenceTick, before Speed is applied.
	PrimaryIncrement   float64
	SecondaryIncrement float64
	Speed              float64
}

// NewConfig validates cfg and returns it unchanged when it is usable.
func NewConfig(cfg WaveConfig) (WaveConfig, error) {
	if err := cfg.Validate(); err != nil {
		return WaveConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first violated constraint, wrapped in ErrInvalidConfig.
func (c WaveConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"base radius", c.BaseRadius},
		{"primary amplitude", c.PrimaryAmplitude},
		{"secondary amplitude", c.SecondaryAmplitude},
		{"primary increment", c.PrimaryIncrement},
		{"secondary increment", c.SecondaryIncrement},
		{"speed", c.Speed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, f.name)
		}
	}

	switch {
	case c.BaseRadius <= 0:
		return fmt.Errorf("%w: base radius must be positive, got %g", ErrInvalidConfig, c.BaseRadius)
	case c.Samples < 3:
		return fmt.Errorf("%w: need at least 3 samples, got %d", ErrInvalidConfig, c.Samples)
	case c.Samples > MaxSamples:
		return fmt.Errorf("%w: at most %d samples, got %d", ErrInvalidConfig, MaxSamples, c.Samples)
	case c.PrimaryFrequency < 1 || c.SecondaryFrequency < 1:
		return fmt.Errorf("%w: frequencies must be >= 1, got %d and %d", ErrInvalidConfig, c.PrimaryFrequency, c.SecondaryFrequency)
	case c.PrimaryFrequency == c.SecondaryFrequency:
		return fmt.Errorf("%w: primary and secondary frequency are both %d", ErrInvalidConfig, c.PrimaryFrequency)
	case c.PrimaryAmplitude < 0 || c.SecondaryAmplitude < 0:
		return fmt.Errorf("%w: amplitudes must not be negative", ErrInvalidConfig)
	case c.PrimaryAmplitude+c.SecondaryAmplitude >= c.BaseRadius:
		return fmt.Errorf("%w: amplitude sum %g must stay below base radius %g",
			ErrInvalidConfig, c.PrimaryAmplitude+c.SecondaryAmplitude, c.BaseRadius)
	}
	return nil
}

// MaxWobble is the largest possible deviation from BaseRadius.
func (c WaveConfig) MaxWobble() float64 {
	return c.PrimaryAmplitude + c.SecondaryAmplitude
}
