package pattern

import "sort"

// Chord is display/progression metadata for the fretting hand. The
// strumming arm's motion is chord-independent; the session cycles
// through a chord progression and exposes the current name to readers.
type Chord struct {
	Name       string
	Frets      [6]int // fret per string, 0 = open, -1 = muted
	Difficulty int    // 1-5
}

// DefaultChordName is substituted for unknown chord names
const DefaultChordName = "C"

// DefaultProgression is the stock four-chord progression
var DefaultProgression = []string{"G", "C", "D", "Em"}

var chordLibrary = map[string]Chord{
	"G":  {Name: "G", Frets: [6]int{3, 2, 0, 0, 3, 3}, Difficulty: 1},
	"C":  {Name: "C", Frets: [6]int{-1, 3, 2, 0, 1, 0}, Difficulty: 1},
	"D":  {Name: "D", Frets: [6]int{-1, -1, 0, 2, 3, 2}, Difficulty: 1},
	"Em": {Name: "Em", Frets: [6]int{0, 2, 2, 0, 0, 0}, Difficulty: 1},
	"Am": {Name: "Am", Frets: [6]int{-1, 0, 2, 2, 1, 0}, Difficulty: 1},
	"E":  {Name: "E", Frets: [6]int{0, 2, 2, 1, 0, 0}, Difficulty: 1},
	"A":  {Name: "A", Frets: [6]int{-1, 0, 2, 2, 2, 0}, Difficulty: 1},
	"F":  {Name: "F", Frets: [6]int{1, 3, 3, 2, 1, 1}, Difficulty: 3},
	"Bm": {Name: "Bm", Frets: [6]int{-1, 2, 4, 4, 3, 2}, Difficulty: 3},
}

// LookupChord returns the chord for name, if known
func LookupChord(name string) (Chord, bool) {
	c, ok := chordLibrary[name]
	return c, ok
}

// NormalizeChords maps a requested progression onto known chords,
// substituting DefaultChordName for unknown names. An empty request
// yields DefaultProgression.
func NormalizeChords(names []string) []string {
	if len(names) == 0 {
		out := make([]string, len(DefaultProgression))
		copy(out, DefaultProgression)
		return out
	}
	out := make([]string, len(names))
	for i, name := range names {
		if _, ok := chordLibrary[name]; ok {
			out[i] = name
		} else {
			out[i] = DefaultChordName
		}
	}
	return out
}

// ChordSuggestions returns the names of chords at or below the given
// difficulty, sorted
func ChordSuggestions(maxDifficulty int) []string {
	var names []string
	for name, c := range chordLibrary {
		if c.Difficulty <= maxDifficulty {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
