// Package trackers implements Trackers for tennis experiments
package trackers

import (
	"fmt"

	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	ts "github.com/samuelfneumann/tennisrl/timestep"
)

// Return tracks and saves the episodic return of one racket. When the
// arena returns a TimeStep, this Tracker extracts the reward and
// accumulates the return for each episode in the experiment.
//
// An episode must finish for this Tracker to save its return. If the
// last episode in an experiment does not finish, that episode's
// return is not saved.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. When a new episode
// starts, Track starts accumulating the rewards for the new episode
// separately from the rewards seen on previous episodes.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Returns returns the returns of all finished episodes
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}

// Save saves the episodic returns to disk
func (r *Return) Save() error {
	return tracker.Save(r.filename, r.episodeReturns)
}
