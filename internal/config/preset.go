package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/fluid-bubble/internal/blob"
	"github.com/iburimskiy/fluid-bubble/internal/paint"
)

// Preset is the optional YAML override for the built-in constants. Keys that
// are missing from the file keep their default value.
type Preset struct {
	Window    WindowPreset   `yaml:"window"`
	Wave      WavePreset     `yaml:"wave"`
	Gradient  GradientPreset `yaml:"gradient"`
	Direction string         `yaml:"direction"`
	FixedStep bool           `yaml:"fixed_step"`
}

type WindowPreset struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	BubbleSize float64 `yaml:"bubble_size"`
}

type WavePreset struct {
	BaseRadius         float64 `yaml:"base_radius"`
	Samples            int     `yaml:"samples"`
	PrimaryFrequency   int     `yaml:"primary_frequency"`
	SecondaryFrequency int     `yaml:"secondary_frequency"`
	PrimaryAmplitude   float64 `yaml:"primary_amplitude"`
	SecondaryAmplitude float64 `yaml:"secondary_amplitude"`
	PrimaryIncrement   float64 `yaml:"primary_increment"`
	SecondaryIncrement float64 `yaml:"secondary_increment"`
	Speed              float64 `yaml:"speed"`
}

// GradientPreset colours are RGBA in 0..1; points are unit box coordinates.
type GradientPreset struct {
	From  [4]float64 `yaml:"from"`
	To    [4]float64 `yaml:"to"`
	Start [2]float64 `yaml:"start"`
	End   [2]float64 `yaml:"end"`
}

// Default returns the built-in preset.
func Default() *Preset {
	return &Preset{
		Window: WindowPreset{
			Width:      WindowWidth,
			Height:     WindowHeight,
			BubbleSize: BubbleSize,
		},
		Wave: WavePreset{
			BaseRadius:         BaseRadius,
			Samples:            Samples,
			PrimaryFrequency:   PrimaryFrequency,
			SecondaryFrequency: SecondaryFrequency,
			PrimaryAmplitude:   PrimaryAmplitude,
			SecondaryAmplitude: SecondaryAmplitude,
			PrimaryIncrement:   PrimaryIncrement,
			SecondaryIncrement: SecondaryIncrement,
			Speed:              AnimationSpeed,
		},
		Gradient: GradientPreset{
			From:  [4]float64{0.4, 0.8, 0.9, 0.8},
			To:    [4]float64{0.3, 0.6, 0.8, 0.8},
			Start: [2]float64{0, 0},
			End:   [2]float64{1, 1},
		},
		Direction: blob.CounterClockwise.String(),
	}
}

// LoadPreset reads a YAML preset on top of Default and validates it.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset is LoadPreset for data already in memory.
func ParsePreset(data []byte) (*Preset, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the window, wave and direction settings.
func (p *Preset) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", p.Window.Width, p.Window.Height)
	}
	if p.Window.BubbleSize <= 0 {
		return fmt.Errorf("bubble size must be positive, got %g", p.Window.BubbleSize)
	}
	if _, err := p.WaveConfig(); err != nil {
		return err
	}
	if _, err := blob.ParseDirection(p.Direction); err != nil {
		return err
	}
	return nil
}

// WaveConfig converts the wave section into a validated blob.WaveConfig.
func (p *Preset) WaveConfig() (blob.WaveConfig, error) {
	w := p.Wave
	return blob.NewConfig(blob.WaveConfig{
		BaseRadius:         w.BaseRadius,
		Samples:            w.Samples,
		PrimaryFrequency:   w.PrimaryFrequency,
		SecondaryFrequency: w.SecondaryFrequency,
		PrimaryAmplitude:   w.PrimaryAmplitude,
		SecondaryAmplitude: w.SecondaryAmplitude,
		PrimaryIncrement:   w.PrimaryIncrement,
		SecondaryIncrement: w.SecondaryIncrement,
		Speed:              w.Speed,
	})
}

// InitialDirection parses Direction, falling back to counter-clockwise.
func (p *Preset) InitialDirection() blob.Direction {
	d, err := blob.ParseDirection(p.Direction)
	if err != nil {
		return blob.CounterClockwise
	}
	return d
}

func (p *Preset) LinearGradient() paint.LinearGradient {
	g := p.Gradient
	return paint.LinearGradient{
		From:  paint.RGBA{R: g.From[0], G: g.From[1], B: g.From[2], A: g.From[3]},
		To:    paint.RGBA{R: g.To[0], G: g.To[1], B: g.To[2], A: g.To[3]},
		Start: blob.Point{X: g.Start[0], Y: g.Start[1]},
		End:   blob.Point{X: g.End[0], Y: g.End[1]},
	}
}
