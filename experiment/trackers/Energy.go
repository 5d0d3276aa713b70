package trackers

import (
	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	ts "github.com/samuelfneumann/tennisrl/timestep"
)

// Energy tracks and saves the energy penalty a racket accumulated over
// each episode. The penalty is not part of the reward, so it is read
// from penalty when an episode ends.
type Energy struct {
	penalty  func() float64
	energies []float64
	filename string
}

// NewEnergy returns a new Energy tracker reading the accumulated energy
// penalty from penalty, usually a tennis.Agent's EnergyPenalty method
func NewEnergy(filename string, penalty func() float64) *Energy {
	return &Energy{penalty: penalty, filename: filename}
}

// Track caches the episode's energy penalty if t is the last timestep
// in its episode
func (e *Energy) Track(t ts.TimeStep) {
	if t.Last() {
		e.energies = append(e.energies, e.penalty())
	}
}

// Energies returns the energy penalties of all finished episodes
func (e *Energy) Energies() []float64 {
	return e.energies
}

// Save saves the episodic energy penalties to disk
func (e *Energy) Save() error {
	return tracker.Save(e.filename, e.energies)
}
