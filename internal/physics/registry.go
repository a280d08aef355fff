package physics

import "github.com/san-kum/arcade2d/internal/vec"

// AddBody activates a body: its shapes (the default shape when none are
// explicit) are paired against every shape of every other active body.
// Adding an already-active body is a no-op.
func (w *World) AddBody(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if b.active {
		return nil
	}
	shapes := b.activeShapes()
	for _, other := range w.bodies {
		for _, sb := range other.activeShapes() {
			for _, sa := range shapes {
				w.createPair(sa, sb)
			}
		}
	}
	b.active = true
	w.bodies = append(w.bodies, b)
	return nil
}

// RemoveBody deactivates a body, returning every pair touching it to
// its pool. Removing an untracked body is a no-op.
func (w *World) RemoveBody(b *Body) {
	if b == nil || !b.active {
		return
	}
	for len(b.pairs) > 0 {
		w.destroyPair(b.pairs[len(b.pairs)-1])
	}
	b.active = false
	for i, have := range w.bodies {
		if have == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// AddShape attaches an explicit collider to a body. The first explicit
// shape retires the implicit default shape and its pairs.
func (w *World) AddShape(b *Body, s *Collider) error {
	if b == nil {
		return ErrNilBody
	}
	if s == nil {
		return ErrNilShape
	}
	if s.body == b {
		return nil
	}
	if s.body != nil {
		return ErrShapeOwned
	}

	if len(b.shapes) == 0 && b.active && b.defaultShape != nil {
		w.removeShapePairs(b, b.defaultShape)
	}
	s.body = b
	b.shapes = append(b.shapes, s)

	if b.active {
		w.pairShapeAgainstWorld(b, s)
	}
	return nil
}

// RemoveShape detaches an explicit collider and tears down its pairs.
// Removing the last explicit shape restores the default shape's pairs.
func (w *World) RemoveShape(b *Body, s *Collider) {
	if b == nil || s == nil || s.body != b {
		return
	}
	for i, have := range b.shapes {
		if have == s {
			b.shapes = append(b.shapes[:i], b.shapes[i+1:]...)
			break
		}
	}
	s.body = nil
	w.removeShapePairs(b, s)

	if b.active && len(b.shapes) == 0 {
		for _, def := range b.activeShapes() {
			w.pairShapeAgainstWorld(b, def)
		}
	}
}

// createPair registers one pair for an unordered shape combination,
// skipping same-body pairs and already-indexed combinations.
func (w *World) createPair(sa, sb *Collider) {
	if sa.body == nil || sb.body == nil || sa.body == sb.body {
		return
	}
	key := keyFor(sa, sb)
	if _, exists := w.index[key]; exists {
		return
	}
	p := w.pools.acquireFor(sa, sb)
	w.index[key] = p
	w.pairs = append(w.pairs, p)
	p.BodyA().pairs = append(p.BodyA().pairs, p)
	p.BodyB().pairs = append(p.BodyB().pairs, p)
}

func (w *World) destroyPair(p Pair) {
	delete(w.index, keyFor(p.ShapeA(), p.ShapeB()))
	for i, have := range w.pairs {
		if have == p {
			w.pairs = append(w.pairs[:i], w.pairs[i+1:]...)
			break
		}
	}
	p.BodyA().removePair(p)
	p.BodyB().removePair(p)
	w.pools.forKind(p.PairKind()).release(p)
}

func (w *World) pairShapeAgainstWorld(b *Body, s *Collider) {
	for _, other := range w.bodies {
		if other == b {
			continue
		}
		for _, sb := range other.activeShapes() {
			w.createPair(s, sb)
		}
	}
}

func (w *World) removeShapePairs(b *Body, s *Collider) {
	for i := len(b.pairs) - 1; i >= 0; i-- {
		p := b.pairs[i]
		if p.ShapeA() == s || p.ShapeB() == s {
			w.destroyPair(p)
		}
	}
}

// CollisionInfo looks up the pair for two shapes through the hash index
// and, when it is currently colliding, invokes fn with the normal
// oriented from shapeA toward shapeB and the overlap depth. Reports
// whether a collision exists.
func (w *World) CollisionInfo(shapeA, shapeB *Collider, fn func(normal vec.Vec2, overlap float64)) bool {
	if shapeA == nil || shapeB == nil {
		return false
	}
	p, ok := w.index[keyFor(shapeA, shapeB)]
	if !ok || !p.InCollision() {
		return false
	}
	n := p.Normal()
	if p.ShapeA() != shapeA {
		n = n.Neg()
	}
	if fn != nil {
		fn(n, p.Overlap())
	}
	return true
}

// InCollision scans bodyA's pair list for a colliding pair connecting
// the two bodies in either order, invoking fn on the first match with
// the normal oriented from bodyA toward bodyB.
func (w *World) InCollision(bodyA, bodyB *Body, fn func(normal vec.Vec2, overlap float64)) bool {
	if bodyA == nil || bodyB == nil {
		return false
	}
	for _, p := range bodyA.pairs {
		if !p.InCollision() {
			continue
		}
		if (p.BodyA() == bodyA && p.BodyB() == bodyB) ||
			(p.BodyA() == bodyB && p.BodyB() == bodyA) {
			n := p.Normal()
			if p.BodyA() != bodyA {
				n = n.Neg()
			}
			if fn != nil {
				fn(n, p.Overlap())
			}
			return true
		}
	}
	return false
}
