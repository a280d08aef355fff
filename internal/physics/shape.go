package physics

import (
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

// ShapeKind tags the collider geometry.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// shape ids are stable for the collider's lifetime and order the
// canonical unordered pair key.
var nextShapeID uint64

// Collider is a geometric primitive owned by a body. Local geometry is
// relative to the body position; cached world geometry is refreshed once
// per step from the owning node's transform.
type Collider struct {
	X, Y float64 // box top-left / circle center offset
	W, H float64 // box extent
	R    float64 // circle radius

	kind      ShapeKind
	id        uint64
	body      *Body
	isDefault bool
	changed   bool

	// cached world geometry
	rect   vec.Rect
	center vec.Vec2
	radius float64
}

func NewBox(x, y, w, h float64) *Collider {
	nextShapeID++
	return &Collider{kind: ShapeBox, X: x, Y: y, W: w, H: h, id: nextShapeID}
}

func NewCircle(x, y, r float64) *Collider {
	nextShapeID++
	return &Collider{kind: ShapeCircle, X: x, Y: y, R: r, id: nextShapeID}
}

// newDefaultShape builds the implicit full-body box used while a body
// has no explicit colliders.
func newDefaultShape(b *Body) *Collider {
	var w, h float64
	if b.node != nil {
		w, h = b.node.Size.X, b.node.Size.Y
	}
	s := NewBox(0, 0, w, h)
	s.isDefault = true
	s.body = b
	return s
}

// Kind marks the collider as a scene component.
func (c *Collider) Kind() scene.ComponentKind { return scene.KindShape }

func (c *Collider) ShapeKind() ShapeKind { return c.kind }
func (c *Collider) ID() uint64 { return c.id }
func (c *Collider) Body() *Body { return c.body }
func (c *Collider) Default() bool { return c.isDefault }

// Bounds returns the cached world rectangle (boxes only).
func (c *Collider) Bounds() vec.Rect { return c.rect }

// Center returns the cached world center (circles only).
func (c *Collider) Center() vec.Vec2 { return c.center }

// Radius returns the cached world radius (circles only).
func (c *Collider) Radius() float64 { return c.radius }

// Changed reports whether the last refresh moved the shape.
func (c *Collider) Changed() bool { return c.changed }

// refresh recomputes world geometry from the body position and node
// scale, setting the dirty flag only when something actually moved.
func (c *Collider) refresh(pos, scale vec.Vec2) {
	c.changed = false
	switch c.kind {
	case ShapeBox:
		r := vec.Rect{
			X: pos.X + c.X*scale.X,
			Y: pos.Y + c.Y*scale.Y,
			W: c.W * scale.X,
			H: c.H * scale.Y,
		}
		if c.isDefault && c.body != nil && c.body.node != nil {
			r.W = c.body.node.Size.X * scale.X
			r.H = c.body.node.Size.Y * scale.Y
		}
		if r != c.rect {
			c.rect = r
			c.changed = true
		}
	case ShapeCircle:
		center := vec.Vec2{X: pos.X + c.X*scale.X, Y: pos.Y + c.Y*scale.Y}
		radius := c.R * scale.X
		if radius < 0 {
			radius = -radius
		}
		if center != c.center || radius != c.radius {
			c.center = center
			c.radius = radius
			c.changed = true
		}
	}
}
