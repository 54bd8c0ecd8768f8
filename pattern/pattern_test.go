package pattern

import (
	"math"
	"testing"

	"github.com/lixenwraith/strummer/parameter"
)

func TestInitDefaultPatterns(t *testing.T) {
	InitDefaultPatterns()

	for _, id := range []string{
		"basic_down", "basic_alternating", "folk", "rock",
		"reggae", "flamenco", "slow_ballad",
	} {
		p := Get(id)
		if p == nil {
			t.Errorf("built-in pattern %q not registered", id)
			continue
		}
		if p.BPM <= 0 || p.Beats <= 0 {
			t.Errorf("pattern %q has invalid timing: bpm=%v beats=%v", id, p.BPM, p.Beats)
		}
	}

	if Get("no_such_pattern") != nil {
		t.Error("unknown ID must return nil")
	}
}

func TestFromSteps(t *testing.T) {
	p := FromSteps("t", "test", 120, []string{StepDown, StepUp, StepRest, StepUp})

	if len(p.Strikes) != 3 {
		t.Fatalf("got %d strikes, want 3 (rest contributes none)", len(p.Strikes))
	}

	want := []struct {
		offset float64
		dir    Direction
	}{
		{0.0, DirectionDown},
		{0.25, DirectionUp},
		{0.75, DirectionUp},
	}
	for i, w := range want {
		s := p.Strikes[i]
		if math.Abs(s.Offset-w.offset) > 1e-12 || s.Direction != w.dir {
			t.Errorf("strike %d = {%v %v}, want {%v %v}", i, s.Offset, s.Direction, w.offset, w.dir)
		}
		if s.Intensity <= 0 {
			t.Errorf("strike %d intensity %v must be positive", i, s.Intensity)
		}
	}
}

func TestRegisterNormalizes(t *testing.T) {
	Register(&Pattern{
		ID:    "scrambled",
		BPM:   100,
		Beats: 4,
		Strikes: []Strike{
			{Offset: 1.5, Direction: DirectionUp, Intensity: 0.5},
			{Offset: -0.25, Direction: DirectionDown, Intensity: -1},
			{Offset: 0.1, Direction: DirectionDown, Intensity: 1},
		},
	})

	p := Get("scrambled")
	prev := -1.0
	for i, s := range p.Strikes {
		if s.Offset < 0 || s.Offset >= 1 {
			t.Errorf("strike %d offset %v outside [0,1)", i, s.Offset)
		}
		if s.Offset < prev {
			t.Errorf("strikes not sorted at %d", i)
		}
		if s.Intensity < 0 {
			t.Errorf("strike %d intensity %v negative", i, s.Intensity)
		}
		prev = s.Offset
	}
}

func TestRegisterDefaultsCycleLength(t *testing.T) {
	Register(&Pattern{ID: "no_beats", BPM: 120})

	p := Get("no_beats")
	if p.Beats != parameter.DefaultBeatsPerCycle {
		t.Errorf("zero Beats = %v after Register, want default %v",
			p.Beats, parameter.DefaultBeatsPerCycle)
	}

	Register(&Pattern{ID: "neg_beats", BPM: 120, Beats: -2})
	if p := Get("neg_beats"); p.Beats != parameter.DefaultBeatsPerCycle {
		t.Errorf("negative Beats = %v after Register, want default %v",
			p.Beats, parameter.DefaultBeatsPerCycle)
	}
}

func TestDirection(t *testing.T) {
	if DirectionDown.Sign() != -1 || DirectionUp.Sign() != 1 {
		t.Error("direction signs inverted")
	}
	if DirectionDown.String() != "down" || DirectionUp.String() != "up" {
		t.Error("direction names wrong")
	}
}

func TestNormalizeChords(t *testing.T) {
	got := NormalizeChords([]string{"G", "Zz9", "Am"})
	want := []string{"G", "C", "Am"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeChords[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if def := NormalizeChords(nil); len(def) != len(DefaultProgression) {
		t.Errorf("empty request should yield the default progression, got %v", def)
	}
}

func TestChordSuggestions(t *testing.T) {
	easy := ChordSuggestions(1)
	for _, name := range easy {
		c, ok := LookupChord(name)
		if !ok || c.Difficulty > 1 {
			t.Errorf("suggestion %q not an easy chord", name)
		}
	}

	all := ChordSuggestions(5)
	if len(all) <= len(easy) {
		t.Errorf("difficulty 5 should include barre chords: %d vs %d", len(all), len(easy))
	}
}
