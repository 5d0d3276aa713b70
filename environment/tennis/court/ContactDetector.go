package court

import (
	"github.com/ByteArena/box2d"

	"github.com/samuelfneumann/tennisrl/environment/tennis"
)

// contactDetector records ball contacts during a physics step. Box2D
// does not allow the world to be modified from within callbacks, so
// contacts are only recorded here and handled by the Court after the
// step.
type contactDetector struct {
	court *Court
}

func newContactDetector(c *Court) *contactDetector {
	return &contactDetector{c}
}

func (c *contactDetector) BeginContact(contact box2d.B2ContactInterface) {
	a := contact.GetFixtureA().GetBody()
	b := contact.GetFixtureB().GetBody()

	var other *box2d.B2Body
	switch c.court.ball.body {
	case a:
		other = b
	case b:
		other = a
	default:
		return
	}

	for _, side := range []tennis.Side{tennis.Left, tennis.Right} {
		if other == c.court.rackets[side].body {
			c.court.ball.touchRacket(side)
			c.court.hits = append(c.court.hits, side)
			return
		}
	}

	if other == c.court.floor {
		c.court.ball.touchFloor()
		c.court.floorHit = true
	}
}

func (c *contactDetector) EndContact(contact box2d.B2ContactInterface) {}

func (c *contactDetector) PreSolve(contact box2d.B2ContactInterface,
	oldManifold box2d.B2Manifold) {
}

func (c *contactDetector) PostSolve(contact box2d.B2ContactInterface,
	impulse *box2d.B2ContactImpulse) {
}
