package kinematics

import (
	"math"

	"github.com/lixenwraith/strummer/vmath"
)

// Pose is the end-effector placement in the arm-base frame. Derived
// data: always recomputed from a JointVector, never mutated directly.
type Pose struct {
	Position vmath.Vec3
	Yaw      float64 // azimuth of the arm plane about Z
	Pitch    float64 // cumulative pitch of the position chain
}

// Forward computes the wrist-point pose for a joint vector.
// Deterministic and pure: identical input yields identical output.
// joints must have length JointCount; any in-range vector is valid input.
func (a *Arm) Forward(joints JointVector) Pose {
	yaw := joints[0]

	pitch := 0.0
	r := 0.0
	z := a.cfg.LinkLengths[0]
	for i := 1; i <= 2; i++ {
		pitch += joints[i]
		r += a.cfg.LinkLengths[i] * math.Cos(pitch)
		z += a.cfg.LinkLengths[i] * math.Sin(pitch)
	}

	return Pose{
		Position: vmath.Vec3{
			X: r * math.Cos(yaw),
			Y: r * math.Sin(yaw),
			Z: z,
		},
		Yaw:   yaw,
		Pitch: pitch,
	}
}

// JointPositions returns the base-frame position of the arm base, each
// joint, and the pick tip, for rendering the skeleton. Distal links
// continue the chain with their joints' angles added to the cumulative
// pitch. len(result) == JointCount+1.
func (a *Arm) JointPositions(joints JointVector) []vmath.Vec3 {
	pts := make([]vmath.Vec3, 0, a.n+1)
	pts = append(pts, vmath.Vec3{})

	yaw := joints[0]
	cy, sy := math.Cos(yaw), math.Sin(yaw)

	// Column top
	r := 0.0
	z := a.cfg.LinkLengths[0]
	pts = append(pts, vmath.Vec3{Z: z})

	pitch := 0.0
	for i := 1; i < a.n; i++ {
		pitch += joints[i]
		r += a.cfg.LinkLengths[i] * math.Cos(pitch)
		z += a.cfg.LinkLengths[i] * math.Sin(pitch)
		pts = append(pts, vmath.Vec3{X: r * cy, Y: r * sy, Z: z})
	}
	return pts
}
