package court

import (
	"github.com/ByteArena/box2d"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

// Ball is the Box2D body of the ball. Ball implements tennis.Ball.
type Ball struct {
	court *Court
	body  *box2d.B2Body
	shape *box2d.B2CircleShape
	scale float64

	lastTouch  tennis.Touch
	lastHitter tennis.Side
	hit        bool
}

func newBall(c *Court) *Ball {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Bullet = true
	body := c.world.CreateBody(&def)

	shape := box2d.NewB2CircleShape()
	shape.M_radius = BallRadius * tennis.DefaultScale

	fix := box2d.MakeB2FixtureDef()
	fix.Shape = shape
	fix.Density = BallDensity
	fix.Friction = 0.1
	fix.Restitution = BallRestitution
	body.CreateFixtureFromDef(&fix)

	// The fixture holds a clone of the shape
	circle := body.GetFixtureList().M_shape.(*box2d.B2CircleShape)

	return &Ball{court: c, body: body, shape: circle,
		scale: tennis.DefaultScale}
}

// reset places the ball at rest at (x, y) in court coordinates
func (b *Ball) reset(x, y float64) {
	b.body.SetTransform(box2d.MakeB2Vec2(x, y), 0)
	b.body.SetLinearVelocity(box2d.MakeB2Vec2(0, 0))
	b.body.SetAngularVelocity(0)
	b.body.SetAwake(true)

	b.lastTouch = tennis.TouchUnset
	b.hit = false
}

// Position returns the position of the ball
func (b *Ball) Position() r3.Vec {
	p := b.body.GetPosition()
	o := b.court.origin
	return r3.Vec{X: o.X + p.X, Y: o.Y + p.Y, Z: o.Z + tennis.StartDepth}
}

// Velocity returns the velocity of the ball
func (b *Ball) Velocity() r3.Vec {
	v := b.body.GetLinearVelocity()
	return r3.Vec{X: v.X, Y: v.Y}
}

// LastTouch returns the last surface the ball touched since it was
// served
func (b *Ball) LastTouch() tennis.Touch {
	return b.lastTouch
}

// LastHitter returns the side of the racket that last touched the
// ball. The returned bool is false if no racket has touched the ball
// since it was served.
func (b *Ball) LastHitter() (tennis.Side, bool) {
	return b.lastHitter, b.hit
}

// Scale returns the current scale of the ball
func (b *Ball) Scale() float64 {
	return b.scale
}

// Radius returns the current radius of the ball
func (b *Ball) Radius() float64 {
	return b.shape.M_radius
}

// SetScale uniformly scales the ball
func (b *Ball) SetScale(scale float64) {
	b.scale = scale
	b.shape.M_radius = BallRadius * scale
	b.body.ResetMassData()
}

func (b *Ball) touchRacket(side tennis.Side) {
	b.lastTouch = tennis.TouchRacket
	b.lastHitter = side
	b.hit = true
}

func (b *Ball) touchFloor() {
	b.lastTouch = tennis.TouchFloor
}
