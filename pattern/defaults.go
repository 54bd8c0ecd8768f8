package pattern

import "github.com/lixenwraith/strummer/parameter"

// Step symbols for FromSteps
const (
	StepDown = "down"
	StepUp   = "up"
	StepRest = "rest"
)

// Downstrokes carry full intensity; upstrokes are the lighter return
// stroke of an alternating hand motion
const (
	downIntensity = 1.0
	upIntensity   = 0.85
)

// FromSteps builds a pattern from an evenly spaced step sequence, one
// cycle per sequence. Rest steps contribute no strike event.
func FromSteps(id, name string, bpm float64, steps []string) *Pattern {
	p := &Pattern{
		ID:    id,
		Name:  name,
		BPM:   bpm,
		Beats: parameter.DefaultBeatsPerCycle,
	}
	n := len(steps)
	for i, s := range steps {
		offset := float64(i) / float64(n)
		switch s {
		case StepDown:
			p.Strikes = append(p.Strikes, Strike{Offset: offset, Direction: DirectionDown, Intensity: downIntensity})
		case StepUp:
			p.Strikes = append(p.Strikes, Strike{Offset: offset, Direction: DirectionUp, Intensity: upIntensity})
		}
	}
	return p
}

// InitDefaultPatterns registers the built-in strumming patterns
// Called at startup; externally loaded patterns override these
func InitDefaultPatterns() {
	Register(FromSteps("basic_down", "Basic Down Strokes", 120,
		[]string{StepDown, StepRest, StepDown, StepRest}))

	Register(FromSteps("basic_alternating", "Basic Alternating", 120,
		[]string{StepDown, StepUp, StepDown, StepUp}))

	Register(FromSteps("folk", "Folk Pattern (D-D-U-rest-U-D-U-rest)", 100,
		[]string{StepDown, StepDown, StepUp, StepRest, StepUp, StepDown, StepUp, StepRest}))

	Register(FromSteps("rock", "Rock Pattern", 130,
		[]string{StepDown, StepRest, StepDown, StepUp, StepRest, StepUp, StepDown, StepUp}))

	Register(FromSteps("reggae", "Reggae Up-Strokes", 80,
		[]string{StepRest, StepUp, StepRest, StepUp, StepRest, StepUp, StepRest, StepUp}))

	Register(FromSteps("flamenco", "Flamenco Pattern", 140,
		[]string{StepDown, StepUp, StepUp, StepDown, StepUp, StepDown, StepDown, StepUp}))

	Register(FromSteps("slow_ballad", "Slow Ballad", 70,
		[]string{StepDown, StepRest, StepRest, StepRest, StepUp, StepRest, StepDown, StepRest}))
}
