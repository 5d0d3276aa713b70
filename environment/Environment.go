// Package environment outlines the interfaces and structs shared by
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tennisrl/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes end
type Ender interface {
	// End returns whether the episode should end. If so, End sets
	// the StepType of t to timestep.Last and records the end type.
	End(t *timestep.TimeStep) bool
}

// Environment implements a simulated environment in which two
// players act simultaneously. Actions and timesteps are ordered by
// player index.
type Environment interface {
	Reset() ([]timestep.TimeStep, error)
	Step(actions ...mat.Vector) ([]timestep.TimeStep, bool, error)
	ObservationSpec() Spec
	ActionSpec() Spec
	DiscountSpec() Spec
}
