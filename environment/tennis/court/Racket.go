package court

import (
	"github.com/ByteArena/box2d"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
	"github.com/samuelfneumann/tennisrl/utils/floatutils"
)

// Racket is the Box2D body of a racket. Racket implements tennis.Body.
// Box2D only simulates rotation about the z axis, the x and y Euler
// angles are stored as given.
type Racket struct {
	court *Court
	side  tennis.Side
	body  *box2d.B2Body
	z     float64
	rotX  float64
	rotY  float64
}

func newRacket(c *Court, side tennis.Side, x, y, z float64) *Racket {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = box2d.MakeB2Vec2(x, y)

	// Orientation is set directly by the agent, never by collisions
	def.FixedRotation = true
	body := c.world.CreateBody(&def)

	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(RacketHalfWidth, RacketHalfHeight)

	fix := box2d.MakeB2FixtureDef()
	fix.Shape = shape
	fix.Density = RacketDensity
	fix.Friction = 0.1
	fix.Restitution = 0.0
	body.CreateFixtureFromDef(&fix)

	return &Racket{court: c, side: side, body: body, z: z}
}

// Side returns the side of the court the racket plays on
func (r *Racket) Side() tennis.Side {
	return r.side
}

// Position returns the position of the racket
func (r *Racket) Position() r3.Vec {
	p := r.body.GetPosition()
	o := r.court.origin
	return r3.Vec{X: o.X + p.X, Y: o.Y + p.Y, Z: r.z}
}

// Velocity returns the velocity of the racket
func (r *Racket) Velocity() r3.Vec {
	v := r.body.GetLinearVelocity()
	return r3.Vec{X: v.X, Y: v.Y}
}

// Rotation returns the Euler angles of the racket in degrees
func (r *Racket) Rotation() r3.Vec {
	return r3.Vec{X: r.rotX, Y: r.rotY,
		Z: floatutils.Rad2Deg(r.body.GetAngle())}
}

// ApplyVelocityChange applies an impulse that changes the racket's
// velocity by dv
func (r *Racket) ApplyVelocityChange(dv r3.Vec) {
	m := r.body.GetMass()
	impulse := box2d.MakeB2Vec2(dv.X*m, dv.Y*m)
	r.body.ApplyLinearImpulse(impulse, r.body.GetWorldCenter(), true)
}

// ApplyForce applies f at the racket's centre of mass for the next
// physics step
func (r *Racket) ApplyForce(f r3.Vec) {
	r.body.ApplyForceToCenter(box2d.MakeB2Vec2(f.X, f.Y), true)
}

// SetVelocity sets the velocity of the racket. Depth velocity is
// ignored.
func (r *Racket) SetVelocity(v r3.Vec) {
	r.body.SetLinearVelocity(box2d.MakeB2Vec2(v.X, v.Y))
}

// SetPosition moves the racket to p
func (r *Racket) SetPosition(p r3.Vec) {
	o := r.court.origin
	r.body.SetTransform(box2d.MakeB2Vec2(p.X-o.X, p.Y-o.Y),
		r.body.GetAngle())
	r.z = p.Z
}

// SetRotation sets the Euler angles of the racket in degrees
func (r *Racket) SetRotation(euler r3.Vec) {
	r.rotX, r.rotY = euler.X, euler.Y
	r.body.SetTransform(r.body.GetPosition(), floatutils.Deg2Rad(euler.Z))
}
