package arena

import (
	"go.uber.org/zap"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

// Scoreboard displays the score of one side. Scoreboard implements
// tennis.ScoreDisplay.
type Scoreboard struct {
	side   tennis.Side
	score  int
	logger *zap.Logger
}

// NewScoreboard returns a new Scoreboard for side
func NewScoreboard(side tennis.Side, logger *zap.Logger) *Scoreboard {
	return &Scoreboard{side: side, logger: logger}
}

// SetDisplayedScore shows score on the scoreboard
func (s *Scoreboard) SetDisplayedScore(score int) {
	if score != s.score {
		s.logger.Debug("score", zap.Stringer("side", s.side),
			zap.Int("score", score))
	}
	s.score = score
}

// Displayed returns the score currently shown
func (s *Scoreboard) Displayed() int {
	return s.score
}
