package physics

import (
	"math"

	"github.com/san-kum/arcade2d/internal/vec"
)

// CircleToCircle compares squared center distance against the radius
// sum. Coincident centers fall back to a unit-x normal instead of
// producing NaN.
type CircleToCircle struct {
	contact
}

func (p *CircleToCircle) PairKind() PairKind { return PairCircleCircle }

func (p *CircleToCircle) Test() bool {
	ca, cb := p.shapeA, p.shapeB
	d := cb.center.Sub(ca.center)
	rsum := ca.radius + cb.radius

	distSq := d.LengthSq()
	if distSq >= rsum*rsum {
		p.clearCollision()
		return false
	}

	if distSq == 0 {
		p.normal = vec.Vec2{X: 1}
		p.overlap = rsum
	} else {
		dist := math.Sqrt(distSq)
		p.normal = d.Scale(1 / dist)
		p.overlap = rsum - dist
	}
	p.colliding = true
	return true
}
