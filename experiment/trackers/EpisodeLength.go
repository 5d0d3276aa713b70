package trackers

import (
	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	"github.com/samuelfneumann/tennisrl/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment along with the reason each episode ended
type EpisodeLength struct {
	episodeLengths []int
	endTypes       []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which saves its
// data at filename. End types are saved to filename with an ".end"
// suffix.
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if t is the last timestep in its
// episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
		e.endTypes = append(e.endTypes, int(t.EndType()))
	}
}

// Lengths returns the lengths of all finished episodes
func (e *EpisodeLength) Lengths() []int {
	return e.episodeLengths
}

// EndTypes returns why each finished episode ended
func (e *EpisodeLength) EndTypes() []timestep.EndType {
	ends := make([]timestep.EndType, len(e.endTypes))
	for i := range e.endTypes {
		ends[i] = timestep.EndType(e.endTypes[i])
	}
	return ends
}

// Save saves the episode lengths and end types to disk
func (e *EpisodeLength) Save() error {
	if err := tracker.Save(e.filename, e.episodeLengths); err != nil {
		return err
	}
	return tracker.Save(e.filename+".end", e.endTypes)
}
