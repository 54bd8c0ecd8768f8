package kinematics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/strummer/parameter"
)

// ErrConfig indicates malformed arm geometry or limits. Construction
// fails; a malformed kinematic chain cannot safely produce motion.
var ErrConfig = errors.New("invalid arm configuration")

// Config holds the structural parameters of a serial arm. These are
// fixed at construction and not runtime-tunable.
type Config struct {
	LinkLengths []float64    // meters, base → end effector
	Limits      [][2]float64 // radians, [min, max] per joint
}

// DefaultConfig returns the stock 6-joint arm geometry
func DefaultConfig() Config {
	links := make([]float64, len(parameter.DefaultLinkLengths))
	copy(links, parameter.DefaultLinkLengths)
	limits := make([][2]float64, len(parameter.DefaultJointLimits))
	copy(limits, parameter.DefaultJointLimits)
	return Config{LinkLengths: links, Limits: limits}
}

// JointVector is an ordered sequence of joint angles in radians,
// base → end effector. Length always equals the arm's joint count.
type JointVector []float64

// Clone returns an independent copy
func (v JointVector) Clone() JointVector {
	out := make(JointVector, len(v))
	copy(out, v)
	return out
}

// Arm is a fixed-topology serial arm kinematics solver. It carries no
// mutable state; all methods are pure with respect to the arm.
//
// Geometry model: joint 0 yaws the arm plane about the vertical axis,
// link 0 is a vertical base column, joints 1-2 pitch the position chain
// (links 1-2) within the plane. Joints 3+ are distal wrist/pick joints
// that orient the end effector; their links extend the chain visually
// but do not move the wrist point the solver positions.
type Arm struct {
	cfg      Config
	n        int
	maxReach float64 // planar reach of the position chain from the column top
	minReach float64
}

// New validates cfg and constructs the solver
func New(cfg Config) (*Arm, error) {
	n := len(cfg.LinkLengths)
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 joints, got %d", ErrConfig, n)
	}
	if len(cfg.Limits) != n {
		return nil, fmt.Errorf("%w: %d link lengths but %d joint limits", ErrConfig, n, len(cfg.Limits))
	}
	for i, l := range cfg.LinkLengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: link %d length %v must be positive", ErrConfig, i, l)
		}
	}
	for i, lim := range cfg.Limits {
		if lim[0] > lim[1] {
			return nil, fmt.Errorf("%w: joint %d limit min %v exceeds max %v", ErrConfig, i, lim[0], lim[1])
		}
	}

	l1, l2 := cfg.LinkLengths[1], cfg.LinkLengths[2]
	minReach := l1 - l2
	if minReach < 0 {
		minReach = -minReach
	}

	return &Arm{
		cfg:      cfg,
		n:        n,
		maxReach: l1 + l2,
		minReach: minReach,
	}, nil
}

// JointCount returns N, the fixed joint count
func (a *Arm) JointCount() int {
	return a.n
}

// LinkLengths returns the configured link lengths (copy)
func (a *Arm) LinkLengths() []float64 {
	out := make([]float64, a.n)
	copy(out, a.cfg.LinkLengths)
	return out
}

// MaxReach returns the maximum planar distance of the wrist point from
// the top of the base column
func (a *Arm) MaxReach() float64 {
	return a.maxReach
}

// MinReach returns the minimum such distance
func (a *Arm) MinReach() float64 {
	return a.minReach
}

// Clamp limits each angle to its mechanical range, in place, and
// returns the same vector
func (a *Arm) Clamp(v JointVector) JointVector {
	for i := range v {
		lim := a.cfg.Limits[i]
		if v[i] < lim[0] {
			v[i] = lim[0]
		} else if v[i] > lim[1] {
			v[i] = lim[1]
		}
	}
	return v
}

// Zero returns an all-zero joint vector of the arm's joint count,
// clamped into limits
func (a *Arm) Zero() JointVector {
	return a.Clamp(make(JointVector, a.n))
}
