// Package blob generates the outline of a wobbling circle: a base radius
// perturbed by two sine waves whose phases advance every frame.
package blob

import "math"

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// RadiusAt returns the perturbed radius at angle for the given phases.
func RadiusAt(angle, primaryPhase, secondaryPhase float64, cfg WaveConfig) float64 {
	primary := cfg.PrimaryAmplitude * math.Sin(float64(cfg.PrimaryFrequency)*angle+primaryPhase)
	secondary := cfg.SecondaryAmplitude * math.Sin(float64(cfg.SecondaryFrequency)*angle+secondaryPhase)
	return cfg.BaseRadius + primary + secondary
}

// PointAt maps a polar sample around center to surface coordinates.
func PointAt(angle float64, center Point, radius float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
