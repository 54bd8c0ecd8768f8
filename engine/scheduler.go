// Package engine owns the playback lifecycle: a continuously ticking
// scheduler advances a session's musical phase, samples the trajectory
// generator, and publishes the arm state for concurrent readers.
package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/strummer/kinematics"
	"github.com/lixenwraith/strummer/parameter"
	"github.com/lixenwraith/strummer/pattern"
	"github.com/lixenwraith/strummer/trajectory"
	"github.com/lixenwraith/strummer/vmath"
)

// Scheduler drives strumming playback on a fixed wall-clock tick.
// One internal goroutine owns all state writes; any number of readers
// may call State concurrently without blocking the writer beyond the
// instant of the snapshot copy.
//
// The tick cadence is independent of tempo and of reader polling:
// tempo only scales how far phase advances per tick, and ticking
// continues whether or not anyone reads.
type Scheduler struct {
	gen *trajectory.Generator
	arm *kinematics.Arm

	mu    sync.RWMutex
	state State
	sess  *session

	rest     kinematics.JointVector
	restPose kinematics.Pose

	tickInterval time.Duration
	tp           TimeProvider

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler around gen. A non-positive
// tickInterval selects the default cadence; a nil tp selects system
// time.
func NewScheduler(gen *trajectory.Generator, tickInterval time.Duration, tp TimeProvider) *Scheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.DefaultTickInterval
	}
	if tp == nil {
		tp = NewSystemTimeProvider()
	}

	arm := gen.Arm()
	rest := gen.Rest()
	return &Scheduler{
		gen:          gen,
		arm:          arm,
		rest:         rest,
		restPose:     arm.Forward(rest),
		tickInterval: tickInterval,
		tp:           tp,
		stopChan:     make(chan struct{}),
	}
}

// Play begins a new session, replacing any prior one wholesale. Phase
// resets to zero; the joint state carries over from the current pose so
// the arm glides rather than teleports into the new pattern.
func (s *Scheduler) Play(patternID string, chords []string, bpm float64) error {
	if bpm < parameter.MinBPM || bpm > parameter.MaxBPM {
		return fmt.Errorf("%w: %.1f not in [%.0f, %.0f]",
			ErrInvalidTempo, bpm, parameter.MinBPM, parameter.MaxBPM)
	}
	pat := pattern.Get(patternID)
	if pat == nil {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, patternID)
	}
	chords = pattern.NormalizeChords(chords)

	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.rest.Clone()
	if s.sess != nil {
		start = s.sess.joints.Clone()
	}
	s.sess = &session{
		pat:    pat,
		chords: chords,
		tempo:  bpm,
		joints: start,
		pose:   s.arm.Forward(start),
	}
	s.state = StateActive
	return nil
}

// Stop freezes the session at its current phase and joint state. The
// session remains inspectable. Idempotent: stopping while already
// stopped or idle is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive {
		s.state = StateStopped
	}
}

// SetTempo updates the session tempo in place. Phase is untouched, so
// motion stays continuous across the change; the new speed applies from
// the next tick. An out-of-range value is rejected and the prior tempo
// retained. With no session the call is a no-op.
func (s *Scheduler) SetTempo(bpm float64) error {
	if bpm < parameter.MinBPM || bpm > parameter.MaxBPM {
		return fmt.Errorf("%w: %.1f not in [%.0f, %.0f]",
			ErrInvalidTempo, bpm, parameter.MinBPM, parameter.MaxBPM)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess != nil {
		s.sess.tempo = bpm
	}
	return nil
}

// State returns an immutable snapshot of the current arm state. Safe in
// any scheduler state; with no session it reports the rest pose.
func (s *Scheduler) State() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sess == nil {
		return Snapshot{
			Joints:   s.rest.Clone(),
			Pose:     s.restPose,
			TempoBPM: parameter.DefaultBPM,
			State:    StateIdle,
		}
	}
	return Snapshot{
		Joints:    s.sess.joints.Clone(),
		Pose:      s.sess.pose,
		PatternID: s.sess.pat.ID,
		Chord:     s.sess.chords[s.sess.chordIdx],
		TempoBPM:  s.sess.tempo,
		Phase:     s.sess.phase,
		State:     s.state,
	}
}

// Tick advances the session by dt. Exported so any scheduling
// primitive can drive playback: the internal loop, a caller-managed
// timer, or a test harness stepping manually. Not active: no-op.
//
// phase ← (phase + dt·tempo/60/beats) mod 1. The generator target is
// followed through a per-joint rate limiter, so no tick moves any joint
// by more than MaxJointVelocity·dt.
func (s *Scheduler) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	s.mu.RLock()
	sess := s.sess
	active := s.state == StateActive
	var (
		phase, tempo float64
		pat          *pattern.Pattern
		joints       kinematics.JointVector
	)
	if active && sess != nil {
		phase = sess.phase
		tempo = sess.tempo
		pat = sess.pat
		joints = sess.joints.Clone()
	}
	s.mu.RUnlock()

	if !active || sess == nil {
		return
	}

	secs := dt.Seconds()
	next := phase + secs*tempo/60.0/pat.Beats
	wrapped := next >= 1.0
	next = vmath.WrapUnit(next)

	raw := s.gen.Sample(pat, next)
	maxStep := parameter.MaxJointVelocity * secs
	for i := range joints {
		d := raw[i] - joints[i]
		switch {
		case d > maxStep:
			joints[i] += maxStep
		case d < -maxStep:
			joints[i] -= maxStep
		default:
			joints[i] = raw[i]
		}
	}
	pose := s.arm.Forward(joints)

	s.mu.Lock()
	// Play may have replaced the session mid-compute; never write a
	// stale tick into the new session
	if s.sess == sess && s.state == StateActive {
		sess.phase = next
		sess.joints = joints
		sess.pose = pose
		if wrapped {
			sess.chordIdx = (sess.chordIdx + 1) % len(sess.chords)
		}
	}
	s.mu.Unlock()
}

// Start launches the internal tick loop. The loop lifecycle is
// one-shot: after Shutdown the scheduler cannot be restarted, and
// Start becomes a no-op.
func (s *Scheduler) Start() {
	select {
	case <-s.stopChan:
		return
	default:
	}
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.run()
	}
}

// Shutdown halts the tick loop and waits for it to exit. The session
// state remains readable afterwards; Tick may still be driven
// manually.
func (s *Scheduler) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
		s.running.Store(false)
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	last := s.tp.Now()
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			now := s.tp.Now()
			s.Tick(now.Sub(last))
			last = now
		}
	}
}
