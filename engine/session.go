package engine

import (
	"errors"

	"github.com/lixenwraith/strummer/kinematics"
	"github.com/lixenwraith/strummer/pattern"
)

// Recoverable caller-input rejections. The session always keeps its
// prior state when one of these is returned.
var (
	ErrInvalidTempo   = errors.New("tempo outside supported range")
	ErrUnknownPattern = errors.New("unknown pattern")
)

// State is the playback lifecycle state
type State int

const (
	// StateIdle: no session exists
	StateIdle State = iota
	// StateActive: session running, phase advancing every tick
	StateActive
	// StateStopped: session frozen at its last phase and joint state
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// session is the live mutable playback state. The Scheduler owns all
// writes; readers only ever see copies via Snapshot.
type session struct {
	pat      *pattern.Pattern
	chords   []string
	chordIdx int
	tempo    float64 // BPM
	phase    float64 // cycle position in [0,1)
	joints   kinematics.JointVector
	pose     kinematics.Pose
}

// Snapshot is an immutable copy of the arm state at one instant.
// Safe to retain: the joint vector is cloned, never shared.
type Snapshot struct {
	Joints    kinematics.JointVector
	Pose      kinematics.Pose
	PatternID string
	Chord     string
	TempoBPM  float64
	Phase     float64
	State     State
}

// Active reports whether the snapshot was taken from a running session
func (s Snapshot) Active() bool {
	return s.State == StateActive
}
