// Package policy implements the decision processes that choose the
// actions of a tennis racket
package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/timestep"
)

// Policy selects actions given the current timestep of an agent
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

// Constant always selects the same action
type Constant struct {
	action *mat.VecDense
}

// NewConstant returns a new Constant policy which always selects action
func NewConstant(action []float64) *Constant {
	return &Constant{mat.NewVecDense(len(action), action)}
}

// NewIdle returns a Constant policy selecting the zero action
func NewIdle() *Constant {
	return NewConstant(make([]float64, tennis.ActionSize))
}

// SelectAction returns a copy of the policy's action
func (c *Constant) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	return mat.VecDenseCopyOf(c.action)
}

// Heuristic selects the actions an agent reads from its manual input
type Heuristic struct {
	agent *tennis.Agent
}

// NewHeuristic returns a new Heuristic policy for agent
func NewHeuristic(agent *tennis.Agent) *Heuristic {
	return &Heuristic{agent}
}

// SelectAction returns the agent's heuristic action
func (h *Heuristic) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	return h.agent.Heuristic()
}
