// Package arena puts two tennis agents on a Box2D court and steps them
// together, producing one timestep per agent on every step.
package arena

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment"
	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/environment/tennis/court"
	ts "github.com/samuelfneumann/tennisrl/timestep"
)

const (
	WinReward  float64 = 1.0
	LoseReward float64 = -1.0
)

// Sides lists the sides of a court in the order agents, actions, and
// timesteps are indexed by
var Sides = []tennis.Side{tennis.Left, tennis.Right}

// Config configures an Arena. Parameters is required.
type Config struct {
	Name   string
	Origin r3.Vec

	// Seed is the arena seed. The court and both start position
	// samplers each derive their own seed from it.
	Seed uint64

	Parameters tennis.ParameterSource

	// EpisodeCutoff ends episodes after this many steps, 0 disables it
	EpisodeCutoff int

	// PhysicsSteps is the number of physics steps taken per action,
	// defaults to 1
	PhysicsSteps int
	Discount     float64

	CollisionReward tennis.CollisionRewardPolicy

	// NewInput, if set, creates the manual input of the racket on side
	// given the kinematics of that racket and of the ball
	NewInput func(side tennis.Side, own, ball tennis.Kinematics) tennis.ManualInput

	Logger *zap.Logger
}

// Arena is a court with two agents. The Left agent owns the match
// reset. Arena implements environment.Environment and, like the agents
// it holds, is not safe for concurrent use.
type Arena struct {
	name         string
	court        *court.Court
	agents       [2]*tennis.Agent
	scoreboards  [2]*Scoreboard
	ender        environment.Ender
	discount     float64
	physicsSteps int

	lastSteps [2]ts.TimeStep
	done      bool

	logger *zap.Logger
}

// New returns a new Arena. Reset must be called before the first Step.
func New(c Config) (*Arena, error) {
	if c.Parameters == nil {
		return nil, fmt.Errorf("new: arena %v has no parameter source",
			c.Name)
	}
	if c.PhysicsSteps == 0 {
		c.PhysicsSteps = 1
	}
	if c.PhysicsSteps < 0 {
		return nil, fmt.Errorf("new: physics steps must be positive but "+
			"got %v", c.PhysicsSteps)
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("arena", c.Name))

	a := &Arena{
		name:         c.Name,
		court:        court.New(c.Origin, CourtSeed(c.Seed), logger),
		ender:        environment.NewStepLimit(c.EpisodeCutoff),
		discount:     c.Discount,
		physicsSteps: c.PhysicsSteps,
		done:         true,
		logger:       logger,
	}

	for i, side := range Sides {
		role := tennis.Follower
		if side == tennis.Left {
			role = tennis.MatchResetOwner
		}
		a.scoreboards[i] = NewScoreboard(side, logger)

		var input tennis.ManualInput
		if c.NewInput != nil {
			input = c.NewInput(side, a.court.Racket(side), a.court.Ball())
		}

		agent, err := tennis.New(tennis.Config{
			Side:            side,
			Role:            role,
			Origin:          c.Origin,
			Body:            a.court.Racket(side),
			Ball:            a.court.Ball(),
			Opponent:        a.court.Racket(side.Opposite()),
			Parameters:      c.Parameters,
			MatchResetter:   a.court,
			Display:         a.scoreboards[i],
			Input:           input,
			CollisionReward: c.CollisionReward,
			Seed:            StarterSeed(c.Seed, side),
			Logger:          logger,
		})
		if err != nil {
			return nil, fmt.Errorf("new: could not create %v agent: %w",
				side, err)
		}
		a.agents[i] = agent
	}

	a.court.OnHit(func(side tennis.Side) {
		a.agents[side].OnBallCollision()
	})

	return a, nil
}

// Name returns the name of the arena
func (a *Arena) Name() string {
	return a.name
}

// Agent returns the agent playing on side
func (a *Arena) Agent(side tennis.Side) *tennis.Agent {
	return a.agents[side]
}

// Court returns the court of the arena
func (a *Arena) Court() *court.Court {
	return a.court
}

// Scoreboard returns the score display of side
func (a *Arena) Scoreboard(side tennis.Side) *Scoreboard {
	return a.scoreboards[side]
}

// Reset begins a new episode for both agents and returns their first
// timesteps
func (a *Arena) Reset() ([]ts.TimeStep, error) {
	for _, agent := range a.agents {
		agent.OnEpisodeBegin()
	}

	steps := make([]ts.TimeStep, len(a.agents))
	for i, agent := range a.agents {
		steps[i] = ts.New(ts.First, 0.0, a.discount, agent.Observe(), 0)
		a.lastSteps[i] = steps[i]
	}
	a.done = false

	return steps, nil
}

// Step applies one action per agent, ordered as Sides, and advances the
// physics simulation. The returned bool is true if the episode ended.
func (a *Arena) Step(actions ...mat.Vector) ([]ts.TimeStep, bool, error) {
	if a.done {
		return nil, true, fmt.Errorf("step: episode has ended, reset " +
			"the arena before stepping")
	}
	if len(actions) != len(a.agents) {
		return nil, false, fmt.Errorf("step: expected %v actions but got %v",
			len(a.agents), len(actions))
	}
	for i, action := range actions {
		if action.Len() != tennis.ActionSize {
			return nil, false, fmt.Errorf("step: action %v should have %v "+
				"elements but has %v", i, tennis.ActionSize, action.Len())
		}
	}

	for i, agent := range a.agents {
		agent.Act(actions[i])
	}

	var point *court.Point
	for k := 0; k < a.physicsSteps && point == nil; k++ {
		for _, agent := range a.agents {
			agent.FixedUpdate()
		}
		point = a.court.Step(1.0 / court.FPS)
	}

	if point != nil {
		winner := a.agents[point.Winner]
		loser := a.agents[point.Winner.Opposite()]
		winner.AddPoint()
		winner.AddReward(WinReward)
		loser.AddReward(LoseReward)

		a.logger.Info("point",
			zap.Stringer("winner", point.Winner),
			zap.Stringer("reason", point.Reason),
			zap.Int("left", a.agents[tennis.Left].Score()),
			zap.Int("right", a.agents[tennis.Right].Score()),
		)
	}

	steps := make([]ts.TimeStep, len(a.agents))
	last := false
	for i, agent := range a.agents {
		step := ts.New(ts.Mid, agent.TakeReward(), a.discount,
			agent.Observe(), a.lastSteps[i].Number+1)

		if point != nil {
			step.StepType = ts.Last
			step.SetEnd(ts.Point)
		} else {
			a.ender.End(&step)
		}
		last = last || step.Last()

		steps[i] = step
		a.lastSteps[i] = step
	}
	a.done = last

	return steps, last, nil
}

// CurrentTimeSteps returns the most recent timestep of each agent
func (a *Arena) CurrentTimeSteps() []ts.TimeStep {
	return []ts.TimeStep{a.lastSteps[0], a.lastSteps[1]}
}

// ObservationSpec returns the observation specification of each agent
func (a *Arena) ObservationSpec() environment.Spec {
	return tennis.ObservationSpec()
}

// ActionSpec returns the action specification of each agent
func (a *Arena) ActionSpec() environment.Spec {
	return tennis.ActionSpec()
}

// DiscountSpec returns the discounting specification of the arena
func (a *Arena) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{a.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

func (a *Arena) String() string {
	return fmt.Sprintf("Arena %v  |  Left: %v  |  Right: %v", a.name,
		a.agents[tennis.Left].Score(), a.agents[tennis.Right].Score())
}
