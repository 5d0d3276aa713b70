package tennis

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment"
)

// Observe returns the agent's current observation. Observe has no side
// effects.
func (a *Agent) Observe() *mat.VecDense {
	obs := make([]float64, 0, ObservationSize)

	obs = a.appendKinematics(obs, a.body)
	obs = a.appendKinematics(obs, a.ball)
	obs = a.appendKinematics(obs, a.opponent)

	obs = append(obs, a.mirror*a.body.Rotation().Z)

	var unset float64
	if a.ball.LastTouch() == TouchUnset {
		unset = 1.0
	}
	obs = append(obs, unset)

	return mat.NewVecDense(ObservationSize, obs)
}

// appendKinematics appends the mirrored position of k relative to the
// court origin followed by its mirrored velocity
func (a *Agent) appendKinematics(obs []float64, k Kinematics) []float64 {
	p, v := k.Position(), k.Velocity()
	rel := r3.Vec{X: p.X - a.origin.X, Y: p.Y - a.origin.Y}

	return append(obs, a.mirror*rel.X, rel.Y, a.mirror*v.X, v.Y)
}

// ObservationSpec returns the observation specification of an agent
func ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationSize, nil)

	lower := make([]float64, ObservationSize)
	upper := make([]float64, ObservationSize)
	for i := 0; i < ObservationSize-1; i++ {
		lower[i] = math.Inf(-1)
		upper[i] = math.Inf(1)
	}
	lower[ObservationSize-1] = 0.0
	upper[ObservationSize-1] = 1.0

	return environment.NewSpec(shape, environment.Observation,
		mat.NewVecDense(ObservationSize, lower),
		mat.NewVecDense(ObservationSize, upper), environment.Continuous)
}
