package tennis

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// OnEpisodeBegin resets the racket at the start of an episode. The
// energy penalty and episode reward are cleared, the ball_touch
// parameter is re-read, the shared match state is reset if the agent
// is the MatchResetOwner, and the racket is placed at a random
// starting position with zero velocity before the environment
// parameters are applied.
func (a *Agent) OnEpisodeBegin() {
	a.status = Resetting
	defer func() { a.status = Active }()

	a.energyPenalty = 0
	a.pendingReward = 0
	a.cumulativeReward = 0
	a.ballTouch = a.params.Parameter(BallTouchKey, DefaultBallTouch)
	a.mirror = a.side.Mirror()

	if a.role == MatchResetOwner {
		a.matchResetter.ResetMatch()
	}

	start := a.starter.Start()
	if start.Len() != 3 {
		panic(fmt.Sprintf("onEpisodeBegin: starting offsets should be "+
			"3-dimensional but got %v dimensions", start.Len()))
	}
	position := r3.Vec{
		X: a.origin.X - a.mirror*start.AtVec(0),
		Y: a.origin.Y + start.AtVec(1),
		Z: a.origin.Z + start.AtVec(2),
	}
	a.body.SetPosition(position)
	a.body.SetVelocity(r3.Vec{})

	a.ApplyParameters()

	a.logger.Debug("episode begin",
		zap.Float64("x", position.X),
		zap.Float64("y", position.Y),
		zap.Float64("ballTouch", a.ballTouch),
		zap.Stringer("role", a.role),
	)
}
