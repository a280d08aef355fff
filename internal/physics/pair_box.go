package physics

import "github.com/san-kum/arcade2d/internal/vec"

// BoxToBox tests two axis-aligned boxes with a separating-axis check on
// both axes and resolves along the axis of least overlap.
type BoxToBox struct {
	contact
}

func (p *BoxToBox) PairKind() PairKind { return PairBoxBox }

func (p *BoxToBox) Test() bool {
	ra, rb := p.shapeA.rect, p.shapeB.rect

	ox := min(ra.MaxX(), rb.MaxX()) - max(ra.X, rb.X)
	oy := min(ra.MaxY(), rb.MaxY()) - max(ra.Y, rb.Y)
	if ox <= 0 || oy <= 0 {
		p.clearCollision()
		return false
	}

	ca, cb := ra.Center(), rb.Center()
	if ox < oy {
		p.overlap = ox
		if cb.X >= ca.X {
			p.normal = vec.Vec2{X: 1}
		} else {
			p.normal = vec.Vec2{X: -1}
		}
	} else {
		p.overlap = oy
		if cb.Y >= ca.Y {
			p.normal = vec.Vec2{Y: 1}
		} else {
			p.normal = vec.Vec2{Y: -1}
		}
	}
	p.colliding = true
	return true
}
