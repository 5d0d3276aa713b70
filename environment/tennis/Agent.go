// Package tennis implements the control loop of a single racket in a
// two player tennis game.
//
// Each tick the host calls Observe to get the racket's observation,
// hands it to some decision process, and applies the resulting action
// with Act. At the start of every episode the host calls
// OnEpisodeBegin, which puts the racket back into a random starting
// position and re-reads the environment parameters.
//
// Observations are vectors consisting of the following features in
// the following order. All x features are multiplied by the side's
// mirror sign so that both rackets see the court as if playing from
// the left:
//
//  1. Racket x position relative to the court origin
//  2. Racket y position relative to the court origin
//  3. Racket x velocity
//  4. Racket y velocity
//  5. Ball x position relative to the court origin
//  6. Ball y position relative to the court origin
//  7. Ball x velocity
//  8. Ball y velocity
//  9. Opponent x position relative to the court origin
//  10. Opponent y position relative to the court origin
//  11. Opponent x velocity
//  12. Opponent y velocity
//  13. Racket z rotation in degrees
//  14. 1 if the ball has touched nothing since it was served, else 0
//
// Actions are 3-dimensional and continuous, each coordinate clipped to
// [-1, 1]:
//
//  1. Horizontal movement
//  2. Jump, only effective when positive and the racket is grounded
//  3. Racket rotation
package tennis

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment"
)

const (
	ObservationSize int = 14
	ActionSize      int = 3

	// Action scaling
	MoveScale  float64 = 30.0
	JumpScale  float64 = 10.0
	SwingAngle float64 = 55.0 // degrees of racket swing per unit action
	BaseTilt   float64 = 90.0
	RacketYaw  float64 = -180.0

	// Velocity caps
	MaxHorizontalSpeed float64 = 30.0
	MaxVerticalSpeed   float64 = 20.0

	// Rackets may not come closer than Baseline to the net
	Baseline float64 = 1.0

	// Custom gravity applied every physics step
	Gravity float64 = -100.0

	EnergyWeight float64 = -0.001

	// Starting offsets from the court origin
	MinStartX  float64 = 12.0
	MaxStartX  float64 = 16.0
	MinStartY  float64 = -1.5
	MaxStartY  float64 = 0.0
	StartDepth float64 = -1.8

	// Environment parameters
	AngleKey         string  = "angle"
	ScaleKey         string  = "scale"
	BallTouchKey     string  = "ball_touch"
	DefaultAngle     float64 = 55.0
	DefaultScale     float64 = 0.5
	DefaultBallTouch float64 = 0.0
)

var (
	actionBounds = r1.Interval{Min: -1.0, Max: 1.0}
	startBounds  = []r1.Interval{
		{Min: MinStartX, Max: MaxStartX},
		{Min: MinStartY, Max: MaxStartY},
		{Min: StartDepth, Max: StartDepth},
	}
)

// Config holds the collaborators and settings of an Agent. Body, Ball,
// Opponent, and Parameters are required. MatchResetter is required for
// the MatchResetOwner. All other fields are optional.
type Config struct {
	Side Side
	Role Role

	// Origin is the reference point of the racket's court
	Origin r3.Vec

	Body          Body
	Ball          Ball
	Opponent      Kinematics
	Parameters    ParameterSource
	MatchResetter MatchResetter
	Display       ScoreDisplay
	Input         ManualInput

	// CollisionReward is left nil to disable rewards for touching the
	// ball
	CollisionReward CollisionRewardPolicy

	// Starter samples (x, y, z) start offsets. The x offset is negated
	// by the mirror sign. If nil, offsets are sampled uniformly from
	// [MinStartX, MaxStartX] x [MinStartY, MaxStartY] x {StartDepth}
	// using Seed.
	Starter environment.Starter
	Seed    uint64

	Logger *zap.Logger
}

// Agent is a single racket. It is not safe for concurrent use; the
// host drives Observe, Act, FixedUpdate, and OnEpisodeBegin from a
// single goroutine.
type Agent struct {
	id     uuid.UUID
	side   Side
	role   Role
	mirror float64
	origin r3.Vec

	body            Body
	ball            Ball
	opponent        Kinematics
	params          ParameterSource
	matchResetter   MatchResetter
	display         ScoreDisplay
	input           ManualInput
	collisionReward CollisionRewardPolicy
	starter         environment.Starter

	status        Status
	energyPenalty float64
	ballTouch     float64
	angle         float64
	scale         float64
	score         int

	pendingReward    float64
	cumulativeReward float64

	logger *zap.Logger
}

// New returns a new Agent. The environment parameters are applied
// immediately so that the racket and ball are valid before the first
// episode begins.
func New(c Config) (*Agent, error) {
	if c.Body == nil {
		return nil, fmt.Errorf("new: body must not be nil")
	}
	if c.Ball == nil {
		return nil, fmt.Errorf("new: ball must not be nil")
	}
	if c.Opponent == nil {
		return nil, fmt.Errorf("new: opponent must not be nil")
	}
	if c.Parameters == nil {
		return nil, fmt.Errorf("new: parameter source must not be nil")
	}
	if c.Role == MatchResetOwner && c.MatchResetter == nil {
		return nil, fmt.Errorf("new: %v must have a match resetter", c.Role)
	}

	display := c.Display
	if display == nil {
		display = noDisplay{}
	}

	starter := c.Starter
	if starter == nil {
		starter = environment.NewUniformStarter(startBounds, c.Seed)
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Agent{
		id:              uuid.New(),
		side:            c.Side,
		role:            c.Role,
		mirror:          c.Side.Mirror(),
		origin:          c.Origin,
		body:            c.Body,
		ball:            c.Ball,
		opponent:        c.Opponent,
		params:          c.Parameters,
		matchResetter:   c.MatchResetter,
		display:         display,
		input:           c.Input,
		collisionReward: c.CollisionReward,
		starter:         starter,
		status:          Active,
	}
	a.logger = logger.With(
		zap.String("agent", a.id.String()),
		zap.Stringer("side", a.side),
	)

	a.ApplyParameters()
	return a, nil
}

// ID returns the unique identifier of the agent
func (a *Agent) ID() uuid.UUID {
	return a.id
}

// Side returns the side of the court the agent plays on
func (a *Agent) Side() Side {
	return a.side
}

// Role returns the role the agent was constructed with
func (a *Agent) Role() Role {
	return a.role
}

// Mirror returns the current mirror sign of the agent
func (a *Agent) Mirror() float64 {
	return a.mirror
}

// Status returns the lifecycle state of the agent
func (a *Agent) Status() Status {
	return a.status
}

// Body returns the racket's physical body
func (a *Agent) Body() Body {
	return a.body
}

// EnergyPenalty returns the energy penalty accumulated this episode.
// It is always non-positive.
func (a *Agent) EnergyPenalty() float64 {
	return a.energyPenalty
}

// BallTouch returns the ball_touch parameter read at the start of the
// current episode
func (a *Agent) BallTouch() float64 {
	return a.ballTouch
}

// Angle returns the last applied racket angle parameter
func (a *Agent) Angle() float64 {
	return a.angle
}

// Scale returns the last applied ball scale parameter
func (a *Agent) Scale() float64 {
	return a.scale
}

// Score returns the number of points the agent has won
func (a *Agent) Score() int {
	return a.score
}

// AddPoint increments the agent's score
func (a *Agent) AddPoint() {
	a.score++
}

// AddReward adds r to the reward of the current step
func (a *Agent) AddReward(r float64) {
	a.pendingReward += r
	a.cumulativeReward += r
}

// TakeReward returns the reward accumulated since the last call and
// clears it
func (a *Agent) TakeReward() float64 {
	r := a.pendingReward
	a.pendingReward = 0
	return r
}

// CumulativeReward returns the reward accumulated this episode
func (a *Agent) CumulativeReward() float64 {
	return a.cumulativeReward
}

// OnBallCollision is called by the host whenever the ball touches the
// racket
func (a *Agent) OnBallCollision() {
	if a.collisionReward == nil {
		return
	}
	a.AddReward(a.collisionReward.CollisionReward(a.ballTouch))
}

func (a *Agent) String() string {
	p := a.body.Position()
	return fmt.Sprintf("Agent %v  |  Side: %v  |  Position: (%.2f, %.2f)"+
		"  |  Score: %v  |  Energy: %.4f", a.id, a.side, p.X, p.Y, a.score,
		a.energyPenalty)
}
