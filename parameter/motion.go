package parameter

import "time"

// Tempo and timing
const (
	DefaultBPM = 120.0
	MinBPM     = 60.0
	MaxBPM     = 200.0

	// DefaultBeatsPerCycle is one 4/4 bar per rhythmic cycle
	DefaultBeatsPerCycle = 4.0
)

// Scheduler tick cadence. The tick loop runs at a fixed wall-clock rate
// independent of tempo; tempo only scales phase advance per tick.
const (
	DefaultTickInterval = 20 * time.Millisecond // 50 Hz, matches the reference update rate
	MaxTickDelta        = 100 * time.Millisecond
)

// Strum motion shaping
const (
	// StrikeWindow is the half-width of a strike's activation window as a
	// fraction of the rhythmic cycle. A strike at offset o is active for
	// phase within [o-StrikeWindow, o+StrikeWindow], circularly.
	StrikeWindow = 0.06

	// Wrist deflection amplitudes in radians at intensity 1.0
	StrumAmplitude      = 0.4
	StrumMinorAmplitude = 0.1

	// StrumDepth is the end-effector dip depth in meters at intensity 1.0
	StrumDepth = 0.05
)

// Strum point: where the pick meets the strings, in the arm-base frame
const (
	StrumRestX = 0.26 // guitar body distance from the base
	StrumRestZ = 0.10 // string height, level with the base column top
)

// MaxJointVelocity bounds observable joint motion in rad/s. The scheduler
// rate-limits each joint toward its generator target with this slope, so
// no tick ever moves a joint by more than MaxJointVelocity*dt.
const MaxJointVelocity = 6.0

// PoseTolerance is the inverse-kinematics acceptance tolerance in meters
const PoseTolerance = 1e-3
