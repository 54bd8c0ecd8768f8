// Package trajectory converts a strumming pattern and a cycle phase
// into a joint-space target for a single instant in time.
//
// Strumming is modeled as two superposed components: the proximal
// joints track the pick contact point through inverse kinematics as it
// dips through the strings, and the wrist joints add the fast stroke
// flick. Each strike event owns a short activation window around its
// beat offset; within the window the deflection follows a half-sine
// envelope (zero at both window edges), so adjacent phase samples never
// jump, including across the cycle seam. Between strikes everything
// rests at the chord-hold pose.
package trajectory

import (
	"fmt"

	"github.com/lixenwraith/strummer/kinematics"
	"github.com/lixenwraith/strummer/parameter"
	"github.com/lixenwraith/strummer/pattern"
	"github.com/lixenwraith/strummer/vmath"
)

// Generator samples joint-space targets for an arm. Stateless after
// construction; Sample is pure in (pattern, phase).
type Generator struct {
	arm  *kinematics.Arm
	hold kinematics.JointVector // chord-hold posture, IK seed
	rest kinematics.JointVector // neutral pose: hold with the pick at the strum rest point
}

// NewGenerator builds a generator for arm. Fails if the configured
// strum point lies outside the arm's workspace, since no strumming
// motion could then be produced.
func NewGenerator(arm *kinematics.Arm) (*Generator, error) {
	hold := arm.Zero()
	for i := range hold {
		if i < len(parameter.HoldPose) {
			hold[i] = parameter.HoldPose[i]
		}
	}
	arm.Clamp(hold)

	g := &Generator{arm: arm, hold: hold}

	restTarget := kinematics.Pose{
		Position: vmath.Vec3{X: parameter.StrumRestX, Z: parameter.StrumRestZ},
	}
	rest, err := arm.Inverse(restTarget, hold)
	if err != nil {
		return nil, fmt.Errorf("strum rest point unreachable for this arm geometry: %w", err)
	}
	g.rest = rest

	return g, nil
}

// Arm returns the kinematics solver the generator drives
func (g *Generator) Arm() *kinematics.Arm {
	return g.arm
}

// Rest returns the neutral joint configuration (copy)
func (g *Generator) Rest() kinematics.JointVector {
	return g.rest.Clone()
}

// Sample returns the full joint-angle target for pat at the given cycle
// phase. A nil pattern or one with no strike events yields the held
// neutral pose. The output always has the arm's joint count and is
// clamped to joint limits.
func (g *Generator) Sample(pat *pattern.Pattern, phase float64) kinematics.JointVector {
	phase = vmath.WrapUnit(phase)

	dir, env := 0.0, 0.0
	if pat != nil {
		if s, t, ok := activeStrike(pat, phase); ok {
			env = vmath.EaseSin(t) * s.Intensity
			dir = s.Direction.Sign()
		}
	}

	// Proximal joints: follow the pick contact point through IK as the
	// stroke dips through the strings
	target := kinematics.Pose{
		Position: vmath.Vec3{
			X: parameter.StrumRestX,
			Z: parameter.StrumRestZ + dir*parameter.StrumDepth*env,
		},
	}
	joints, err := g.arm.Inverse(target, g.hold)
	if err != nil {
		joints, err = g.arm.Inverse(g.arm.ClampToWorkspace(target), g.hold)
	}
	if err != nil {
		// No valid configuration for this instant: hold neutral
		joints = g.rest.Clone()
	}

	// Wrist joints: the stroke flick
	if i := parameter.StrumJointMain; i < len(joints) {
		joints[i] += dir * parameter.StrumAmplitude * env
	}
	if i := parameter.StrumJointMinor; i < len(joints) {
		joints[i] += dir * parameter.StrumMinorAmplitude * env
	}

	return g.arm.Clamp(joints)
}

// activeStrike selects the strike governing phase, if any, and the
// progress t in (0,1) through its activation window. When windows
// overlap the higher intensity wins, ties broken by earliest offset
// (strikes are registered in offset order).
func activeStrike(p *pattern.Pattern, phase float64) (pattern.Strike, float64, bool) {
	best := -1
	for i, s := range p.Strikes {
		d := vmath.CircularDelta(phase, s.Offset)
		if d < -parameter.StrikeWindow || d > parameter.StrikeWindow {
			continue
		}
		if best < 0 || s.Intensity > p.Strikes[best].Intensity {
			best = i
		}
	}
	if best < 0 {
		return pattern.Strike{}, 0, false
	}

	s := p.Strikes[best]
	t := (vmath.CircularDelta(phase, s.Offset) + parameter.StrikeWindow) / (2 * parameter.StrikeWindow)
	return s, t, true
}
