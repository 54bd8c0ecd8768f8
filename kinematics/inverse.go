package kinematics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/strummer/vmath"
)

// ErrUnreachable indicates an inverse-kinematics target outside the
// arm's workspace. Recoverable: clamp the target with ClampToWorkspace
// and retry, or hold the last valid configuration.
var ErrUnreachable = errors.New("target outside workspace")

// reachMargin keeps boundary targets numerically solvable
const reachMargin = 1e-9

// Inverse solves for a joint configuration placing the wrist point at
// target.Position. Law-of-cosines closed form on the two-link position
// chain; yaw comes straight from the target azimuth.
//
// Two solutions exist (elbow-up / elbow-down); the one whose shoulder
// and elbow angles lie closest to seed is chosen, so repeated solves
// along a continuous path never snap between branches. Distal joints
// are copied from seed unchanged.
//
// The result is clamped to joint limits. If clamping moves the wrist
// off target the configuration is still returned best-effort: strumming
// favors smoothness over millimeter accuracy.
func (a *Arm) Inverse(target Pose, seed JointVector) (JointVector, error) {
	p := target.Position
	r := math.Hypot(p.X, p.Y)
	zr := p.Z - a.cfg.LinkLengths[0]

	d := math.Hypot(r, zr)
	if d > a.maxReach+reachMargin || d < a.minReach-reachMargin {
		return nil, fmt.Errorf("%w: distance %.4f outside [%.4f, %.4f]",
			ErrUnreachable, d, a.minReach, a.maxReach)
	}

	yaw := seed[0]
	if r > reachMargin {
		yaw = math.Atan2(p.Y, p.X)
	}

	l1, l2 := a.cfg.LinkLengths[1], a.cfg.LinkLengths[2]
	c2 := vmath.Clamp((d*d-l1*l1-l2*l2)/(2*l1*l2), -1, 1)
	elbow := math.Acos(c2)

	base := math.Atan2(zr, r)
	k := math.Atan2(l2*math.Sin(elbow), l1+l2*math.Cos(elbow))

	// Candidate branches: (shoulder, elbow) pairs
	s1, e1 := base-k, elbow
	s2, e2 := base+k, -elbow

	shoulder, elb := s1, e1
	if jointDistSq(s2, e2, seed[1], seed[2]) < jointDistSq(s1, e1, seed[1], seed[2]) {
		shoulder, elb = s2, e2
	}

	out := seed.Clone()
	out[0] = yaw
	out[1] = shoulder
	out[2] = elb
	return a.Clamp(out), nil
}

func jointDistSq(s, e, seedS, seedE float64) float64 {
	ds := s - seedS
	de := e - seedE
	return ds*ds + de*de
}

// ClampToWorkspace projects a target back inside the reachable envelope,
// slightly off the boundary so a retried solve succeeds. Targets already
// in reach are returned unchanged.
func (a *Arm) ClampToWorkspace(target Pose) Pose {
	p := target.Position
	r := math.Hypot(p.X, p.Y)
	zr := p.Z - a.cfg.LinkLengths[0]
	d := math.Hypot(r, zr)

	var scale float64
	switch {
	case d > a.maxReach:
		scale = a.maxReach * 0.999 / d
	case d < a.minReach && d > 0:
		scale = a.minReach * 1.001 / d
	default:
		return target
	}

	target.Position = vmath.Vec3{
		X: p.X * scale,
		Y: p.Y * scale,
		Z: a.cfg.LinkLengths[0] + zr*scale,
	}
	return target
}
