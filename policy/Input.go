package policy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/utils/floatutils"
)

// Scripted is a tennis.ManualInput that reports fixed axis and key
// states. Unknown axes read 0 and unknown keys are released.
type Scripted struct {
	Axes map[string]float64
	Keys map[string]bool
}

// Axis returns the position of the named axis
func (s Scripted) Axis(name string) float64 {
	return s.Axes[name]
}

// Key returns whether the named key is pressed
func (s Scripted) Key(name string) bool {
	return s.Keys[name]
}

const (
	// TrackDistance is the horizontal distance to the ball at which the
	// Tracker moves at full speed
	TrackDistance float64 = 2.0

	// ReachDistance is the horizontal distance to the ball within which
	// the Tracker jumps and swings
	ReachDistance float64 = 1.5
)

var axisBounds = r1.Interval{Min: -1.0, Max: 1.0}

// Tracker is a tennis.ManualInput that follows the ball. Horizontal
// moves the racket under the ball, Space jumps when the ball is above
// the racket and within reach, and Vertical swings when within reach.
type Tracker struct {
	mirror float64
	own    tennis.Kinematics
	ball   tennis.Kinematics
}

// NewTracker returns a new Tracker for the racket own on side
func NewTracker(side tennis.Side, own, ball tennis.Kinematics) *Tracker {
	return &Tracker{side.Mirror(), own, ball}
}

// NewTrackerInput has the signature of arena.Config.NewInput
func NewTrackerInput(side tennis.Side, own,
	ball tennis.Kinematics) tennis.ManualInput {
	return NewTracker(side, own, ball)
}

// dx returns the horizontal distance from the racket to the ball as
// seen from the racket's side
func (t *Tracker) dx() float64 {
	return t.mirror * (t.ball.Position().X - t.own.Position().X)
}

// Axis returns the Horizontal or Vertical axis, any other axis reads 0
func (t *Tracker) Axis(name string) float64 {
	switch name {
	case "Horizontal":
		return floatutils.ClipInterval(t.dx()/TrackDistance, axisBounds)
	case "Vertical":
		if math.Abs(t.dx()) < ReachDistance {
			return 1.0
		}
	}
	return 0.0
}

// Key returns whether Space is pressed, any other key is released
func (t *Tracker) Key(name string) bool {
	if name != "Space" {
		return false
	}
	return math.Abs(t.dx()) < ReachDistance &&
		t.ball.Position().Y > t.own.Position().Y
}
