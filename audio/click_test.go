package audio

import (
	"math"
	"testing"
)

func TestStrumClickFinite(t *testing.T) {
	c := NewStrumClick(downFreq, 0.8)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := c.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > sampleRate.N(clickDuration)+len(buf) {
			t.Fatal("click streamer never terminated")
		}
	}

	want := sampleRate.N(clickDuration)
	if total != want {
		t.Errorf("click produced %d samples, want %d", total, want)
	}
}

func TestStrumClickBoundedAmplitude(t *testing.T) {
	c := NewStrumClick(upFreq, 1.0)

	buf := make([][2]float64, 256)
	for {
		n, ok := c.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1.0 || math.Abs(buf[i][1]) > 1.0 {
				t.Fatalf("sample %v exceeds unity gain", buf[i])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("click must be mono-identical on both channels")
			}
		}
		if !ok {
			break
		}
	}
}

func TestStrumClickEnvelopeStartsAndEndsQuiet(t *testing.T) {
	c := NewStrumClick(downFreq, 1.0)

	total := sampleRate.N(clickDuration)
	buf := make([][2]float64, total)
	c.Stream(buf)

	if math.Abs(buf[0][0]) > 0.01 {
		t.Errorf("click starts at %v, want silence", buf[0][0])
	}
	if math.Abs(buf[total-1][0]) > 0.01 {
		t.Errorf("click ends at %v, want silence", buf[total-1][0])
	}
}

func TestPlayerStrumBeforeInitialize(t *testing.T) {
	// Must not panic or touch the speaker
	p := NewPlayer()
	p.Strum(0, 1.0)
	p.Cleanup()
}
