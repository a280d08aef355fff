package physics

import (
	"math"

	"github.com/san-kum/arcade2d/internal/vec"
)

// PairKind selects the pool a pair is recycled through.
type PairKind int

const (
	PairBoxBox PairKind = iota
	PairCircleCircle
	PairBoxCircle
)

// Solver tuning. Position correction removes a fraction of the overlap
// beyond the slop per iteration; the tangential impulse is clamped to a
// fraction of the accumulated normal impulse.
const (
	positionCorrection = 0.2
	positionSlop       = 0.01
	tangentFriction    = 0.2
)

// Pair tracks one potentially-colliding shape combination and its
// accumulated solver state. Exactly one pair exists per unordered shape
// pair; for mixed kinds the box is canonicalized on the A side.
type Pair interface {
	PairKind() PairKind

	// Set initializes a pooled pair for a new shape combination.
	Set(shapeA, shapeB *Collider, bodyA, bodyB *Body)
	// Reset returns the pair to its zero state before pooling.
	Reset()

	ShapeA() *Collider
	ShapeB() *Collider
	BodyA() *Body
	BodyB() *Body

	InCollision() bool
	// Normal points from A's side toward B's side; unit length.
	Normal() vec.Vec2
	// Overlap is the penetration depth, > 0 while colliding.
	Overlap() float64

	// Test runs the exact narrow-phase check, updating collision state,
	// normal, and overlap. Exact touch does not collide.
	Test() bool
	// PreSolve computes per-step constants for the impulse iterations.
	PreSolve()
	// SolveVelocity applies one sequential impulse along the normal plus
	// a clamped tangential impulse.
	SolveVelocity()
	// SolvePosition nudges the bodies apart along the normal to remove
	// residual penetration.
	SolvePosition()

	markCandidate()
	clearCollision()
}

// pairKey is the canonical unordered identifier: smaller shape id first,
// so (A,B) and (B,A) index identically.
type pairKey struct {
	lo, hi uint64
}

func keyFor(a, b *Collider) pairKey {
	if a.id < b.id {
		return pairKey{lo: a.id, hi: b.id}
	}
	return pairKey{lo: b.id, hi: a.id}
}

// contact holds the state and solver shared by every pair kind.
type contact struct {
	shapeA, shapeB *Collider
	bodyA, bodyB   *Body

	colliding bool
	normal    vec.Vec2
	overlap   float64

	normalImpulse  float64
	tangentImpulse float64
	invMassSum     float64
}

func (c *contact) Set(shapeA, shapeB *Collider, bodyA, bodyB *Body) {
	c.shapeA, c.shapeB = shapeA, shapeB
	c.bodyA, c.bodyB = bodyA, bodyB
}

func (c *contact) Reset() {
	*c = contact{}
}

func (c *contact) ShapeA() *Collider { return c.shapeA }
func (c *contact) ShapeB() *Collider { return c.shapeB }
func (c *contact) BodyA() *Body { return c.bodyA }
func (c *contact) BodyB() *Body { return c.bodyB }

func (c *contact) InCollision() bool { return c.colliding }
func (c *contact) Normal() vec.Vec2 { return c.normal }
func (c *contact) Overlap() float64 { return c.overlap }

// markCandidate optimistically flags the pair for narrow-phase testing.
func (c *contact) markCandidate() { c.colliding = true }

// clearCollision records a separation. Accumulated impulses are dropped
// so a later contact starts cold (no warm-starting across separation).
func (c *contact) clearCollision() {
	c.colliding = false
	c.overlap = 0
	c.normalImpulse = 0
	c.tangentImpulse = 0
}

func (c *contact) PreSolve() {
	c.invMassSum = c.bodyA.invMass + c.bodyB.invMass
}

func (c *contact) SolveVelocity() {
	if c.invMassSum == 0 {
		return
	}

	// normal impulse, accumulated and clamped to stay repulsive
	rv := c.bodyB.Velocity.Sub(c.bodyA.Velocity)
	vn := rv.Dot(c.normal)
	lambda := -vn / c.invMassSum
	accumulated := math.Max(c.normalImpulse+lambda, 0)
	delta := accumulated - c.normalImpulse
	c.normalImpulse = accumulated

	p := c.normal.Scale(delta)
	c.bodyA.Velocity = c.bodyA.Velocity.Sub(p.Scale(c.bodyA.invMass))
	c.bodyB.Velocity = c.bodyB.Velocity.Add(p.Scale(c.bodyB.invMass))

	// tangential impulse, clamped by the accumulated normal impulse
	tangent := c.normal.Perp()
	rv = c.bodyB.Velocity.Sub(c.bodyA.Velocity)
	vt := rv.Dot(tangent)
	lambdaT := -vt / c.invMassSum
	maxT := tangentFriction * c.normalImpulse
	accumulatedT := vec.Clamp(c.tangentImpulse+lambdaT, -maxT, maxT)
	deltaT := accumulatedT - c.tangentImpulse
	c.tangentImpulse = accumulatedT

	pt := tangent.Scale(deltaT)
	c.bodyA.Velocity = c.bodyA.Velocity.Sub(pt.Scale(c.bodyA.invMass))
	c.bodyB.Velocity = c.bodyB.Velocity.Add(pt.Scale(c.bodyB.invMass))
}

func (c *contact) SolvePosition() {
	if c.invMassSum == 0 || c.overlap <= 0 {
		return
	}
	depth := math.Max(c.overlap-positionSlop, 0)
	if depth == 0 {
		return
	}
	correction := depth * positionCorrection / c.invMassSum

	p := c.normal.Scale(correction)
	c.bodyA.Pos = c.bodyA.Pos.Sub(p.Scale(c.bodyA.invMass))
	c.bodyB.Pos = c.bodyB.Pos.Add(p.Scale(c.bodyB.invMass))

	// track remaining penetration so later iterations converge
	c.overlap -= correction * c.invMassSum
}
