package tennis

import "gonum.org/v1/gonum/spatial/r3"

// ApplyRacketAngle reads the angle parameter and tilts the racket to
// it, mirrored by side
func (a *Agent) ApplyRacketAngle() {
	a.angle = a.params.Parameter(AngleKey, DefaultAngle)

	rot := a.body.Rotation()
	a.body.SetRotation(r3.Vec{X: rot.X, Y: rot.Y, Z: a.mirror * a.angle})
}

// ApplyBallScale reads the scale parameter and uniformly scales the
// shared ball to it
func (a *Agent) ApplyBallScale() {
	a.scale = a.params.Parameter(ScaleKey, DefaultScale)
	a.ball.SetScale(a.scale)
}

// ApplyParameters applies the racket angle and then the ball scale
func (a *Agent) ApplyParameters() {
	a.ApplyRacketAngle()
	a.ApplyBallScale()
}
