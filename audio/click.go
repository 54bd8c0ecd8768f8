package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// clickDuration is the length of one strum click
const clickDuration = 60 * time.Millisecond

// Stroke pitches: downstrokes land low, upstrokes high, so a pattern is
// audible without any real synthesis
const (
	downFreq = 660.0
	upFreq   = 990.0
)

// strumClick is a short sine burst with a linear attack/decay envelope
type strumClick struct {
	freq     float64
	level    float64
	phase    float64
	position int
	duration int
}

// NewStrumClick creates a one-shot click streamer at the given
// frequency and volume level
func NewStrumClick(freq, level float64) beep.Streamer {
	return &strumClick{
		freq:     freq,
		level:    level,
		duration: sampleRate.N(clickDuration),
	}
}

func (c *strumClick) Stream(samples [][2]float64) (n int, ok bool) {
	attack := c.duration / 8
	for i := range samples {
		if c.position >= c.duration {
			return i, false
		}

		val := math.Sin(2*math.Pi*c.phase) * c.level
		if c.position < attack {
			val *= float64(c.position) / float64(attack)
		} else {
			val *= float64(c.duration-c.position) / float64(c.duration-attack)
		}

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(sampleRate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *strumClick) Err() error { return nil }
