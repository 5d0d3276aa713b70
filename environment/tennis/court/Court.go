// Package court implements the host simulation of a tennis court using
// Box2D. The court owns the floor, net, ball, and both racket bodies,
// serves the ball when the match is reset, and detects points.
//
// Box2D simulates the x-y plane of the court. Depth is carried along
// by the bodies but never simulated.
package court

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

const (
	FPS float64 = 50

	XGravity float64 = 0.0
	YGravity float64 = -9.81

	VelocityIterations int = 8
	PositionIterations int = 3

	// Court geometry, relative to the court origin
	FloorY         float64 = -4.0
	FloorHalfWidth float64 = 30.0
	NetHeight      float64 = 2.5
	NetHalfWidth   float64 = 0.1

	// Points are awarded when the ball leaves this region
	OutOfBoundsX float64 = 24.0
	OutOfBoundsY float64 = FloorY - 5.0

	// Rackets are boxes of these half extents
	RacketHalfWidth  float64 = 0.25
	RacketHalfHeight float64 = 1.0
	RacketDensity    float64 = 10.0

	BallRadius      float64 = 1.0 // radius at scale 1
	BallDensity     float64 = 0.1
	BallRestitution float64 = 0.9

	// The ball is served from rest at (±ServeX, ServeY)
	ServeX float64 = 7.0
	ServeY float64 = 4.0
)

// Reason describes how a point was won
type Reason int

const (
	FloorHit Reason = iota
	OutOfBounds
)

func (r Reason) String() string {
	if r == OutOfBounds {
		return "OutOfBounds"
	}
	return "FloorHit"
}

// Point describes a finished rally
type Point struct {
	Winner tennis.Side
	Reason Reason
}

func (p Point) String() string {
	return fmt.Sprintf("Point  |  Winner: %v  |  Reason: %v", p.Winner,
		p.Reason)
}

// Court is a single tennis court. Court is not safe for concurrent use.
type Court struct {
	origin r3.Vec
	world  box2d.B2World

	floor   *box2d.B2Body
	net     *box2d.B2Body
	rackets [2]*Racket
	ball    *Ball

	rng distuv.Uniform

	// Events recorded by the contact detector during a physics step
	hits     []tennis.Side
	floorHit bool

	onHit  func(tennis.Side)
	logger *zap.Logger
}

// New returns a new Court centred at origin. The ball is served
// immediately.
func New(origin r3.Vec, seed uint64, logger *zap.Logger) *Court {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Court{
		origin: origin,
		world:  box2d.MakeB2World(box2d.MakeB2Vec2(XGravity, YGravity)),
		rng: distuv.Uniform{
			Min: 0.0,
			Max: 1.0,
			Src: rand.NewSource(seed),
		},
		logger: logger,
	}

	c.floor = c.createStatic(0, FloorY-0.5, FloorHalfWidth, 0.5)
	c.net = c.createStatic(0, FloorY+NetHeight/2, NetHalfWidth, NetHeight/2)

	for _, side := range []tennis.Side{tennis.Left, tennis.Right} {
		x := -side.Mirror() * tennis.MinStartX
		c.rackets[side] = newRacket(c, side, x, FloorY+RacketHalfHeight,
			origin.Z+tennis.StartDepth)
	}
	c.ball = newBall(c)

	c.world.SetContactListener(newContactDetector(c))
	c.ResetMatch()

	return c
}

// createStatic creates a static box centred at (x, y) in court
// coordinates
func (c *Court) createStatic(x, y, halfWidth, halfHeight float64) *box2d.B2Body {
	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_staticBody
	def.Position = box2d.MakeB2Vec2(x, y)
	body := c.world.CreateBody(&def)

	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(halfWidth, halfHeight)

	fix := box2d.MakeB2FixtureDef()
	fix.Shape = shape
	fix.Friction = 0.3
	body.CreateFixtureFromDef(&fix)

	return body
}

// Origin returns the reference point of the court
func (c *Court) Origin() r3.Vec {
	return c.origin
}

// Racket returns the racket playing on side
func (c *Court) Racket(side tennis.Side) *Racket {
	return c.rackets[side]
}

// Ball returns the ball
func (c *Court) Ball() *Ball {
	return c.ball
}

// OnHit registers a function called once for every racket-ball contact.
// Handlers are called after the physics step in which the contact began.
func (c *Court) OnHit(f func(tennis.Side)) {
	c.onHit = f
}

// ResetMatch serves the ball from rest above a randomly chosen half of
// the court and clears the ball's touch state
func (c *Court) ResetMatch() {
	serveSide := tennis.Left
	if c.rng.Rand() < 0.5 {
		serveSide = tennis.Right
	}

	c.ball.reset(-serveSide.Mirror()*ServeX, ServeY)
	c.hits = c.hits[:0]
	c.floorHit = false

	c.logger.Debug("match reset", zap.Stringer("serve", serveSide))
}

// Step advances the physics simulation by dt seconds. If the step ended
// a rally, the point is returned, otherwise Step returns nil.
func (c *Court) Step(dt float64) *Point {
	c.world.Step(dt, VelocityIterations, PositionIterations)

	hits := c.hits
	c.hits = c.hits[:0]
	if c.onHit != nil {
		for _, side := range hits {
			c.onHit(side)
		}
	}

	return c.point()
}

// point determines whether the ball's current state ends the rally
func (c *Court) point() *Point {
	pos := c.ball.body.GetPosition()

	if c.floorHit {
		c.floorHit = false

		// The ball landed on the loser's half
		loser := tennis.Left
		if pos.X > 0 {
			loser = tennis.Right
		}
		return &Point{Winner: loser.Opposite(), Reason: FloorHit}
	}

	if math.Abs(pos.X) > OutOfBoundsX || pos.Y < OutOfBoundsY {
		// Whoever sent the ball out loses; a ball nobody has touched
		// counts against the half it left from
		loser := tennis.Left
		if pos.X > 0 {
			loser = tennis.Right
		}
		if hitter, ok := c.ball.LastHitter(); ok {
			loser = hitter
		}
		return &Point{Winner: loser.Opposite(), Reason: OutOfBounds}
	}

	return nil
}
