package input

import (
	"time"

	"github.com/gopxl/beep"
)

// clapTone is a square wave of fixed length. Every sample sits at plus or
// minus the amplitude, so any sample taken while it plays is equally loud.
type clapTone struct {
	amp      float64
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	duration int
}

// ClapTone returns a square-wave burst lasting d at amplitude amp (0..1).
func ClapTone(rate beep.SampleRate, d time.Duration, amp float64) beep.Streamer {
	return &clapTone{
		amp:      amp,
		freq:     440,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (c *clapTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}

		val := c.amp
		if c.phase >= 0.5 {
			val = -c.amp
		}
		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(c.rate)
		if c.phase >= 1 {
			c.phase--
		}
		c.position++
	}
	return len(samples), true
}

func (c *clapTone) Err() error { return nil }
