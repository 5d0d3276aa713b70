package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/tennisrl/environment"
	"github.com/samuelfneumann/tennisrl/timestep"
)

// Uniform selects continuous actions uniformly at random within the
// bounds of an action specification
type Uniform struct {
	dists []distuv.Uniform
	seed  uint64
}

// NewUniform returns a new Uniform policy over the actions in spec
func NewUniform(spec environment.Spec, seed uint64) *Uniform {
	if spec.Cardinality != environment.Continuous {
		panic(fmt.Sprintf("newUniform: actions must be %v but got %v",
			environment.Continuous, spec.Cardinality))
	}

	source := rand.NewSource(seed)
	dists := make([]distuv.Uniform, spec.Shape.Len())
	for i := range dists {
		dists[i] = distuv.Uniform{
			Min: spec.LowerBound.AtVec(i),
			Max: spec.UpperBound.AtVec(i),
			Src: source,
		}
	}

	return &Uniform{dists, seed}
}

// Seed returns the seed of the policy's random number generator
func (u *Uniform) Seed() uint64 {
	return u.seed
}

// SelectAction samples a random action
func (u *Uniform) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	action := mat.NewVecDense(len(u.dists), nil)
	for i := range u.dists {
		action.SetVec(i, u.dists[i].Rand())
	}
	return action
}
