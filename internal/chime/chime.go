// Package chime plays a short tone whenever the bubble changes direction.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/fluid-bubble/internal/blob"
)

const (
	toneLength = 140 * time.Millisecond

	clockwiseFreq        = 660.0
	counterClockwiseFreq = 440.0
)

// Player owns the speaker. Only one Player may exist per process.
type Player struct {
	rate   beep.SampleRate
	volume float64
}

// New initialises the speaker at rate with a 50ms buffer.
func New(rate int, volume float64) (*Player, error) {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{rate: sr, volume: volume}, nil
}

// Play queues the tone for d. It does not block.
func (p *Player) Play(d blob.Direction) {
	freq := counterClockwiseFreq
	if d == blob.Clockwise {
		freq = clockwiseFreq
	}
	speaker.Play(newTone(p.rate, freq, toneLength, p.volume))
}

// Close drops anything still playing.
func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// tone is a sine burst with a linear fade-out so it ends without a click.
type tone struct {
	step   float64
	pos    int
	total  int
	volume float64
}

func newTone(sr beep.SampleRate, freq float64, length time.Duration, volume float64) *tone {
	return &tone{
		step:   2 * math.Pi * freq / float64(sr),
		total:  sr.N(length),
		volume: volume,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		fade := 1 - float64(t.pos)/float64(t.total)
		v := t.volume * fade * math.Sin(t.step*float64(t.pos))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
