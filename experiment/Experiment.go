// Package experiment implements functionality for running tennis
// experiments
package experiment

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment/envconfig"
	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/environment/tennis/arena"
	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	"github.com/samuelfneumann/tennisrl/experiment/trackers"
	"github.com/samuelfneumann/tennisrl/policy"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each TimeStep to Trackers, which cache the data
// they need in RAM. The Save() function then saves all cached data to
// disk, usually after the experiment has been run. The Run() method
// runs episodes until the maximum timestep limit is reached or the
// context is cancelled. The RunEpisode() method runs a single episode.
type Experiment interface {
	Run(ctx context.Context) error

	// RunEpisode returns whether the step limit has been reached
	RunEpisode(ctx context.Context) (bool, error)

	// Register adds a Tracker for the timesteps of side
	Register(side tennis.Side, t tracker.Tracker)

	Save() error
}

// ArenaSpacing is the distance between the origins of neighbouring
// arenas
const ArenaSpacing float64 = 100.0

// New creates the i-th self-play experiment of a run described by c.
// All arenas of a run share params. If c.Output is set, the returns,
// episode lengths, and energy penalties of both rackets are tracked
// and saved in c.Output.
func New(c envconfig.Config, i int, params tennis.ParameterSource,
	logger *zap.Logger) (*SelfPlay, error) {
	name := fmt.Sprintf("arena-%d", i)
	seed := arena.Seed(c.Seed, name)

	a, err := arena.New(arena.Config{
		Name:          name,
		Origin:        r3.Vec{X: float64(i) * ArenaSpacing},
		Seed:          seed,
		Parameters:    params,
		EpisodeCutoff: c.EpisodeCutoff,
		PhysicsSteps:  c.PhysicsSteps,
		Discount:      c.Discount,
		NewInput:      policy.NewTrackerInput,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new: could not create %v: %w", name, err)
	}

	var policies [2]policy.Policy
	for j, side := range arena.Sides {
		policyName := c.LeftPolicy
		if side == tennis.Right {
			policyName = c.RightPolicy
		}

		policies[j], err = newPolicy(policyName, a.Agent(side),
			arena.PolicySeed(seed, side))
		if err != nil {
			return nil, fmt.Errorf("new: %v policy: %w", side, err)
		}
	}

	exp := NewSelfPlay(a, policies[tennis.Left], policies[tennis.Right],
		uint(c.MaxSteps), logger)

	if c.Output != "" {
		for _, side := range arena.Sides {
			prefix := filepath.Join(c.Output, fmt.Sprintf("%v-%v", name,
				side))
			exp.Register(side, trackers.NewReturn(prefix+".return"))
			exp.Register(side, trackers.NewEpisodeLength(prefix+".length"))
			exp.Register(side, trackers.NewEnergy(prefix+".energy",
				a.Agent(side).EnergyPenalty))
		}
	}

	return exp, nil
}

// newPolicy creates the named policy for agent
func newPolicy(name envconfig.PolicyName, agent *tennis.Agent,
	seed uint64) (policy.Policy, error) {
	switch name {
	case envconfig.Uniform:
		return policy.NewUniform(tennis.ActionSpec(), seed), nil

	case envconfig.Heuristic:
		return policy.NewHeuristic(agent), nil

	case envconfig.Idle:
		return policy.NewIdle(), nil
	}

	return nil, fmt.Errorf("newPolicy: no such policy %v", name)
}
