package parameter

import "math"

// Default arm geometry, modeled on a 6-joint SO101-class arm.
// Link 0 is the vertical base column; links 1-2 are the position chain
// (upper arm, forearm); links 3-5 are distal pick/wrist segments that
// orient the end effector without moving the wrist point.

// ArmJointCount is the default number of joints
const ArmJointCount = 6

// Joint chain indices (base → end effector)
const (
	JointBaseYaw    = 0 // shoulder pan
	JointShoulder   = 1 // shoulder lift
	JointElbow      = 2 // elbow flex
	JointWristRoll  = 3
	JointWristFlex  = 4
	JointGripper    = 5
	StrumJointMain  = JointWristFlex // primary strumming axis
	StrumJointMinor = JointWristRoll // secondary strumming axis
)

// DefaultLinkLengths in meters
var DefaultLinkLengths = []float64{0.1, 0.15, 0.15, 0.1, 0.05, 0.05}

// DefaultJointLimits in radians, [min, max] per joint
var DefaultJointLimits = [][2]float64{
	{-math.Pi, math.Pi},
	{-math.Pi / 2, math.Pi / 2},
	{-math.Pi / 2, math.Pi / 2},
	{-math.Pi, math.Pi},
	{-math.Pi / 2, math.Pi / 2},
	{0, math.Pi / 2},
}

// HoldPose is the chord-hold posture: distal joints rest here while the
// proximal joints track the strum point through inverse kinematics.
// Values follow the strumming posture of the reference arm (slight pan,
// lowered shoulder, bent elbow, pick-holding gripper).
var HoldPose = []float64{0.0, 0.2, 0.7, 0.0, 0.0, 0.3}
