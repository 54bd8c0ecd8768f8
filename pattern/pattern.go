package pattern

import (
	"sort"
	"sync"

	"github.com/lixenwraith/strummer/parameter"
	"github.com/lixenwraith/strummer/vmath"
)

// Direction is the stroke direction of a strike
type Direction int8

const (
	DirectionDown Direction = iota
	DirectionUp
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// Sign returns the vertical motion sense of the stroke: down strokes
// sweep the pick downward (-1), up strokes upward (+1)
func (d Direction) Sign() float64 {
	if d == DirectionUp {
		return 1
	}
	return -1
}

// Strike is one stroke event within a rhythmic cycle
type Strike struct {
	Offset    float64 // beat offset as a fraction of the cycle, [0,1)
	Direction Direction
	Intensity float64 // relative amplitude, >= 0
}

// Pattern is immutable reference data: a named strumming pattern with
// its strike events and default tempo
type Pattern struct {
	ID      string
	Name    string
	BPM     float64 // suggested tempo
	Beats   float64 // cycle length in beats
	Strikes []Strike
}

// normalize wraps offsets into [0,1), floors negative intensities at
// zero, orders strikes by offset, and defaults a non-positive cycle
// length so phase advancement never divides by zero
func (p *Pattern) normalize() {
	if p.Beats <= 0 {
		p.Beats = parameter.DefaultBeatsPerCycle
	}
	for i := range p.Strikes {
		p.Strikes[i].Offset = vmath.WrapUnit(p.Strikes[i].Offset)
		if p.Strikes[i].Intensity < 0 {
			p.Strikes[i].Intensity = 0
		}
	}
	sort.SliceStable(p.Strikes, func(i, j int) bool {
		return p.Strikes[i].Offset < p.Strikes[j].Offset
	})
}

var (
	patterns  = make(map[string]*Pattern)
	patternMu sync.RWMutex
)

// Register adds a pattern to the registry, replacing any previous
// pattern with the same ID
func Register(p *Pattern) {
	p.normalize()
	patternMu.Lock()
	patterns[p.ID] = p
	patternMu.Unlock()
}

// Get retrieves a pattern by ID, nil if unknown
func Get(id string) *Pattern {
	patternMu.RLock()
	defer patternMu.RUnlock()
	return patterns[id]
}

// IDs returns the registered pattern IDs, sorted
func IDs() []string {
	patternMu.RLock()
	defer patternMu.RUnlock()
	ids := make([]string, 0, len(patterns))
	for id := range patterns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
