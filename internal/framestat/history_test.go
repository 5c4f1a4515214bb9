package framestat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(4)
	assert.Equal(t, 0.0, h.FPS())

	h.Record(0)
	h.Record(-time.Second)
	assert.Equal(t, 0.0, h.FPS())
}

func TestHistory_PartiallyFilled(t *testing.T) {
	h := NewHistory(4)
	h.Record(10 * time.Millisecond)
	h.Record(30 * time.Millisecond)

	assert.InDelta(t, 50, h.FPS(), 1e-9)
}

func TestHistory_WrapAround(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 3; i++ {
		h.Record(100 * time.Millisecond)
	}
	assert.InDelta(t, 10, h.FPS(), 1e-9)

	// Newer intervals overwrite the oldest ones.
	for i := 0; i < 4; i++ {
		h.Record(20 * time.Millisecond)
	}
	assert.InDelta(t, 50, h.FPS(), 1e-9)

	h.Record(50 * time.Millisecond)
	assert.InDelta(t, 3/0.09, h.FPS(), 1e-9)
}

func TestHistory_MinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Record(40 * time.Millisecond)
	h.Record(25 * time.Millisecond)
	assert.InDelta(t, 40, h.FPS(), 1e-9)
}
