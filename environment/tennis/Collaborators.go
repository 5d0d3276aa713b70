package tennis

import "gonum.org/v1/gonum/spatial/r3"

// Kinematics is anything whose position and velocity can be read. The
// opponent racket is only ever seen through this interface.
type Kinematics interface {
	Position() r3.Vec
	Velocity() r3.Vec
}

// Body is the physical rigid body of a racket as provided by the host
// physics engine. Rotations are Euler angles in degrees.
type Body interface {
	Kinematics
	Rotation() r3.Vec

	// ApplyVelocityChange changes the velocity of the body instantly
	// by dv, independent of the body's mass
	ApplyVelocityChange(dv r3.Vec)

	// ApplyForce applies a continuous force for the current physics step
	ApplyForce(f r3.Vec)

	SetVelocity(v r3.Vec)
	SetPosition(p r3.Vec)
	SetRotation(euler r3.Vec)
}

// Touch records the last surface the ball touched
type Touch int

const (
	TouchUnset Touch = iota
	TouchRacket
	TouchFloor
)

func (t Touch) String() string {
	switch t {
	case TouchRacket:
		return "Racket"
	case TouchFloor:
		return "Floor"
	default:
		return "Unset"
	}
}

// Ball is the ball shared by both rackets. Agents read its state and
// may rescale it, but do not own it.
type Ball interface {
	Kinematics
	LastTouch() Touch
	SetScale(scale float64)
}

// ParameterSource provides externally configurable scalars. Missing
// names resolve to def.
type ParameterSource interface {
	Parameter(name string, def float64) float64
}

// MatchResetter resets the state shared by both rackets (ball, court)
type MatchResetter interface {
	ResetMatch()
}

// ScoreDisplay shows the score of one racket
type ScoreDisplay interface {
	SetDisplayedScore(score int)
}

// ManualInput is polled by Agent.Heuristic when no decision process
// is attached
type ManualInput interface {
	Axis(name string) float64
	Key(name string) bool
}

// CollisionRewardPolicy computes the reward an agent receives when its
// racket touches the ball. ballTouch is the value of the ball_touch
// parameter read at the start of the episode. Agents without a policy
// receive no collision reward.
type CollisionRewardPolicy interface {
	CollisionReward(ballTouch float64) float64
}

type noDisplay struct{}

func (noDisplay) SetDisplayedScore(int) {}
