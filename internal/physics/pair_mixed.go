package physics

import (
	"math"

	"github.com/san-kum/arcade2d/internal/vec"
)

// BoxToCircle clamps the circle center to the box and compares the
// clamped distance against the radius. The box is always the A side, so
// the normal points from the box toward the circle.
type BoxToCircle struct {
	contact
}

func (p *BoxToCircle) PairKind() PairKind { return PairBoxCircle }

func (p *BoxToCircle) Test() bool {
	box := p.shapeA.rect
	center := p.shapeB.center
	radius := p.shapeB.radius

	closest := vec.Vec2{
		X: vec.Clamp(center.X, box.X, box.MaxX()),
		Y: vec.Clamp(center.Y, box.Y, box.MaxY()),
	}

	if closest == center {
		// center inside the box: push out through the nearest face
		p.normal, p.overlap = nearestFace(box, center)
		p.overlap += radius
		p.colliding = true
		return true
	}

	d := center.Sub(closest)
	distSq := d.LengthSq()
	if distSq >= radius*radius {
		p.clearCollision()
		return false
	}

	dist := math.Sqrt(distSq)
	p.normal = d.Scale(1 / dist)
	p.overlap = radius - dist
	p.colliding = true
	return true
}

// nearestFace returns the outward normal of the box face closest to an
// interior point and the distance to it.
func nearestFace(r vec.Rect, pt vec.Vec2) (vec.Vec2, float64) {
	left := pt.X - r.X
	right := r.MaxX() - pt.X
	top := pt.Y - r.Y
	bottom := r.MaxY() - pt.Y

	normal := vec.Vec2{X: -1}
	depth := left
	if right < depth {
		normal, depth = vec.Vec2{X: 1}, right
	}
	if top < depth {
		normal, depth = vec.Vec2{Y: -1}, top
	}
	if bottom < depth {
		normal, depth = vec.Vec2{Y: 1}, bottom
	}
	return normal, depth
}
