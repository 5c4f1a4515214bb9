// Package framestat tracks recent frame intervals.
package framestat

import "time"

// History keeps the last N frame intervals so the status line can show a
// smoothed frame rate.
type History struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buffer: make([]time.Duration, size)}
}

func (h *History) Record(dt time.Duration) {
	if dt <= 0 {
		return
	}
	h.buffer[h.nextIndex] = dt
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
		h.filled = true
	}
}

// FPS averages the recorded intervals. It returns 0 before the first frame.
func (h *History) FPS() float64 {
	n := h.nextIndex
	if h.filled {
		n = len(h.buffer)
	}
	if n == 0 {
		return 0
	}
	var total time.Duration
	for _, dt := range h.buffer[:n] {
		total += dt
	}
	return float64(n) / total.Seconds()
}
