package tennis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment"
	"github.com/samuelfneumann/tennisrl/utils/floatutils"
)

var (
	horizontalSpeedBounds = r1.Interval{
		Min: -MaxHorizontalSpeed,
		Max: MaxHorizontalSpeed,
	}
	verticalSpeedBounds = r1.Interval{
		Min: math.Inf(-1),
		Max: MaxVerticalSpeed,
	}
)

// Act applies one tick of action to the racket. Each action coordinate
// is clipped to [-1, 1]. Act panics if the action does not have
// exactly ActionSize elements.
func (a *Agent) Act(action mat.Vector) {
	if action.Len() != ActionSize {
		panic(fmt.Sprintf("act: illegal number of actions "+
			"\n\twant(%v) \n\thave(%v)", ActionSize, action.Len()))
	}

	moveX := floatutils.ClipInterval(action.AtVec(0), actionBounds) * a.mirror
	moveY := floatutils.ClipInterval(action.AtVec(1), actionBounds)
	rotate := floatutils.ClipInterval(action.AtVec(2), actionBounds) * a.mirror

	// Jumping only works from the ground
	upward := 0.0
	if moveY > 0.0 && a.Grounded() {
		upward = moveY
	}

	a.body.ApplyVelocityChange(r3.Vec{X: moveX * MoveScale,
		Y: upward * JumpScale})
	a.body.SetRotation(r3.Vec{X: 0, Y: RacketYaw,
		Z: SwingAngle*rotate + a.mirror*BaseTilt})

	a.enforceBaseline()

	v := a.body.Velocity()
	a.body.SetVelocity(r3.Vec{
		X: floatutils.ClipInterval(v.X, horizontalSpeedBounds),
		Y: floatutils.ClipInterval(v.Y, verticalSpeedBounds),
		Z: v.Z,
	})

	a.energyPenalty += EnergyWeight * (math.Abs(moveX) + upward)

	a.display.SetDisplayedScore(a.score)
}

// Grounded returns whether the racket is below the court origin and
// so is able to jump
func (a *Agent) Grounded() bool {
	return a.body.Position().Y-a.origin.Y < 0.0
}

// enforceBaseline moves the racket back onto its own half of the court
// if it has come closer than Baseline to the net
func (a *Agent) enforceBaseline() {
	p := a.body.Position()
	if a.mirror*(p.X-a.origin.X) > -Baseline {
		a.body.SetPosition(r3.Vec{X: a.origin.X - a.mirror*Baseline,
			Y: p.Y, Z: p.Z})
	}
}

// FixedUpdate applies the custom gravity to the racket. It should be
// called once every physics step, independent of Act.
func (a *Agent) FixedUpdate() {
	a.body.ApplyForce(r3.Vec{Y: Gravity})
}

// Heuristic returns an action read from the manual input. Without an
// input source, Heuristic returns the zero action.
func (a *Agent) Heuristic() *mat.VecDense {
	action := mat.NewVecDense(ActionSize, nil)
	if a.input == nil {
		return action
	}

	action.SetVec(0, a.input.Axis("Horizontal"))
	if a.input.Key("Space") {
		action.SetVec(1, 1.0)
	}
	action.SetVec(2, a.input.Axis("Vertical"))

	return action
}

// ActionSpec returns the action specification of an agent
func ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionSize, nil)
	lowerBound := mat.NewVecDense(ActionSize, []float64{-1., -1., -1.})
	upperBound := mat.NewVecDense(ActionSize, []float64{1., 1., 1.})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Continuous)
}
