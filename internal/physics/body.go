package physics

import (
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

const DefaultMass = 1.0

// Body carries the simulation state of one scene node: position,
// velocity, accumulated force, inverse mass, and air-friction damping.
// A body owns zero or more colliders; with none attached it collides
// through an implicit default shape covering the node bounds.
type Body struct {
	Pos      vec.Vec2
	Velocity vec.Vec2
	Damping  float64

	force   vec.Vec2
	invMass float64
	static  bool

	node         *scene.Node
	shapes       []*Collider
	defaultShape *Collider
	pairs        []Pair
	active       bool
}

func NewBody() *Body {
	return &Body{invMass: 1 / DefaultMass}
}

// NewStaticBody returns an immovable body (inverse mass 0).
func NewStaticBody() *Body {
	return &Body{static: true}
}

// Kind marks the body as a scene component.
func (b *Body) Kind() scene.ComponentKind { return scene.KindBody }

// SetMass sets the body mass. Mass 0 means infinite mass (the body
// never moves). Negative mass is rejected.
func (b *Body) SetMass(mass float64) error {
	if mass < 0 {
		return ErrNegativeMass
	}
	if mass == 0 {
		b.invMass = 0
	} else {
		b.invMass = 1 / mass
	}
	return nil
}

// InvMass returns the inverse mass (0 for static/infinite mass).
func (b *Body) InvMass() float64 { return b.invMass }

// SetStatic toggles the static flag. Static bodies get inverse mass 0
// and are skipped by integration and impulse application.
func (b *Body) SetStatic(static bool) {
	b.static = static
	if static {
		b.invMass = 0
	}
}

func (b *Body) Static() bool { return b.static }

// ApplyForce accumulates f until the end of the next step.
func (b *Body) ApplyForce(f vec.Vec2) {
	b.force = b.force.Add(f)
}

func (b *Body) Force() vec.Vec2 { return b.force }

// Node returns the owning scene node, nil for detached bodies.
func (b *Body) Node() *scene.Node { return b.node }

// Shapes returns the explicit colliders. Empty means the body collides
// through its default shape.
func (b *Body) Shapes() []*Collider { return b.shapes }

// Pairs returns the pairs currently touching this body.
func (b *Body) Pairs() []Pair { return b.pairs }

// activeShapes are the shapes that participate in pairing: the explicit
// colliders, or the lazily-built default shape when there are none.
func (b *Body) activeShapes() []*Collider {
	if len(b.shapes) > 0 {
		return b.shapes
	}
	if b.defaultShape == nil {
		b.defaultShape = newDefaultShape(b)
	}
	return []*Collider{b.defaultShape}
}

// refreshShapes pulls the node transform and recomputes cached world
// geometry for every active shape. With no node the body position alone
// drives the shapes.
func (b *Body) refreshShapes() {
	scale := vec.Vec2{X: 1, Y: 1}
	if b.node != nil {
		b.Pos = b.node.WorldPosition()
		_, scale = b.node.WorldTransform()
	}
	for _, s := range b.activeShapes() {
		s.refresh(b.Pos, scale)
	}
}

// syncNode writes the integrated position back to the scene node.
func (b *Body) syncNode() {
	if b.node != nil && !b.static && b.invMass != 0 {
		b.node.SetWorldPosition(b.Pos)
	}
}

func (b *Body) removePair(p Pair) {
	for i, have := range b.pairs {
		if have == p {
			b.pairs = append(b.pairs[:i], b.pairs[i+1:]...)
			return
		}
	}
}
