package blob

import (
	"fmt"
	"strings"
)

// Direction selects which way the waves travel around the outline.
type Direction int

const (
	CounterClockwise Direction = iota
	Clockwise
)

// Sign is the multiplier applied to phase increments.
func (d Direction) Sign() float64 {
	if d == Clockwise {
		return 1
	}
	return -1
}

func (d Direction) Opposite() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// ParseDirection accepts "clockwise"/"cw" and "counter-clockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counter-clockwise", "counterclockwise", "anticlockwise", "ccw":
		return CounterClockwise, nil
	}
	return CounterClockwise, fmt.Errorf("unknown direction %q", s)
}
