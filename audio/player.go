// Package audio gives the demo UI an audible strum: short synthesized
// clicks played through the speaker on each strike event. The playback
// core itself produces no sound; this package is consumer-side only.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/strummer/pattern"
)

// Player owns the speaker and mixes strum clicks
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player; call Initialize before use
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences and releases the mixer. The speaker has no close in
// beep; clearing the mixer stops all output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Strum plays one stroke click. Direction picks the pitch, intensity
// the volume. No-op before Initialize.
func (p *Player) Strum(dir pattern.Direction, intensity float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	freq := downFreq
	if dir == pattern.DirectionUp {
		freq = upFreq
	}
	level := 0.5 * intensity
	if level > 1 {
		level = 1
	}

	speaker.Lock()
	p.mixer.Add(NewStrumClick(freq, level))
	speaker.Unlock()
}
