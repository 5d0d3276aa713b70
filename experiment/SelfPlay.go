package experiment

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/environment/tennis/arena"
	"github.com/samuelfneumann/tennisrl/experiment/tracker"
	"github.com/samuelfneumann/tennisrl/policy"
	ts "github.com/samuelfneumann/tennisrl/timestep"
)

// SelfPlay is an Experiment that runs two policies against each other
// in a single arena
type SelfPlay struct {
	arena        *arena.Arena
	policies     [2]policy.Policy
	maxSteps     uint
	currentSteps uint
	episodes     int
	trackers     [2][]tracker.Tracker
	onStep       func()
	logger       *zap.Logger
}

// NewSelfPlay creates and returns a new self-play experiment in arena
// a, with left and right playing on either side of the net. The steps
// parameter determines how many timesteps the experiment is run for.
func NewSelfPlay(a *arena.Arena, left, right policy.Policy, steps uint,
	logger *zap.Logger) *SelfPlay {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SelfPlay{
		arena:    a,
		policies: [2]policy.Policy{left, right},
		maxSteps: steps,
		logger:   logger.With(zap.String("arena", a.Name())),
	}
}

// Register registers a Tracker with the experiment so that the
// timesteps of side are tracked and saved
func (s *SelfPlay) Register(side tennis.Side, t tracker.Tracker) {
	s.trackers[side] = append(s.trackers[side], t)
}

// OnStep registers a function called after every environment step
func (s *SelfPlay) OnStep(f func()) {
	s.onStep = f
}

// Arena returns the arena the experiment runs in
func (s *SelfPlay) Arena() *arena.Arena {
	return s.arena
}

// Steps returns the number of steps taken so far
func (s *SelfPlay) Steps() uint {
	return s.currentSteps
}

// Episodes returns the number of episodes started so far
func (s *SelfPlay) Episodes() int {
	return s.episodes
}

// RunEpisode runs a single episode of the experiment
func (s *SelfPlay) RunEpisode(ctx context.Context) (bool, error) {
	steps, err := s.arena.Reset()
	if err != nil {
		return false, err
	}
	s.episodes++
	s.track(steps)

	last := false
	for !last && s.currentSteps < s.maxSteps {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.currentSteps++

		actions := make([]mat.Vector, len(s.policies))
		for i, p := range s.policies {
			actions[i] = p.SelectAction(steps[i])
		}

		steps, last, err = s.arena.Step(actions...)
		if err != nil {
			return false, err
		}
		s.track(steps)

		if s.onStep != nil {
			s.onStep()
		}
	}

	if last {
		s.logger.Debug("episode end",
			zap.Int("episode", s.episodes),
			zap.Int("length", steps[tennis.Left].Number),
			zap.Stringer("end", steps[tennis.Left].EndType()),
			zap.Float64("leftReturn",
				s.arena.Agent(tennis.Left).CumulativeReward()),
			zap.Float64("rightReturn",
				s.arena.Agent(tennis.Right).CumulativeReward()),
		)
	}

	return s.currentSteps >= s.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (s *SelfPlay) Run(ctx context.Context) error {
	for {
		ended, err := s.RunEpisode(ctx)
		if err != nil {
			return err
		}
		if ended {
			break
		}
	}

	s.logger.Info("experiment finished",
		zap.Uint("steps", s.currentSteps),
		zap.Int("episodes", s.episodes),
		zap.Int("leftScore", s.arena.Agent(tennis.Left).Score()),
		zap.Int("rightScore", s.arena.Agent(tennis.Right).Score()),
	)
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (s *SelfPlay) Save() error {
	var err error
	for _, side := range s.trackers {
		for _, t := range side {
			err = errors.Join(err, t.Save())
		}
	}
	return err
}

// track sends the timestep of each side to that side's trackers
func (s *SelfPlay) track(steps []ts.TimeStep) {
	for i := range steps {
		for _, t := range s.trackers[i] {
			t.Track(steps[i])
		}
	}
}
