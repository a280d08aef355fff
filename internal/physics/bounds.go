package physics

import (
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

// Wall thickness on the outward side, effectively infinite relative to
// any scene so fast bodies still overlap a wall for several steps.
const boundsThickness = 1000.0

// boundsState lazily frames a rectangle with four oversized wall shapes
// on one shared static body that toggles in and out of the simulation.
type boundsState struct {
	rect        vec.Rect
	walls       [4]*Collider
	body        *Body
	node        *scene.Node
	initialized bool
	enabled     bool
}

// EnableBounds attaches the shared static bounds body so the four walls
// participate in pairing. Geometry is computed on first use from the
// bound stage's view rectangle.
func (w *World) EnableBounds() error {
	if !w.bounds.initialized {
		r := vec.Rect{}
		if w.stage != nil {
			r = w.stage.View
		}
		w.initBounds(r, nil)
	}
	if w.bounds.enabled {
		return nil
	}
	w.bounds.enabled = true
	return w.AddBody(w.bounds.body)
}

// DisableBounds detaches the bounds body, removing its pairs. The wall
// shapes survive for the next enable.
func (w *World) DisableBounds() {
	if !w.bounds.enabled {
		return
	}
	w.bounds.enabled = false
	w.RemoveBody(w.bounds.body)
}

// SetBounds recomputes the wall geometry for a custom rectangle and
// parent node without toggling enablement.
func (w *World) SetBounds(x, y, width, height float64, parent *scene.Node) {
	w.initBounds(vec.Rect{X: x, Y: y, W: width, H: height}, parent)
}

// BoundsEnabled reports whether the walls are in the simulation.
func (w *World) BoundsEnabled() bool { return w.bounds.enabled }

// BoundsRect returns the framed rectangle.
func (w *World) BoundsRect() vec.Rect { return w.bounds.rect }

func (w *World) initBounds(r vec.Rect, parent *scene.Node) {
	b := &w.bounds
	b.rect = r

	if b.body == nil {
		b.body = NewStaticBody()
		b.node = scene.NewNode("bounds")
		b.body.node = b.node
		for i := range b.walls {
			b.walls[i] = NewBox(0, 0, 0, 0)
			_ = w.AddShape(b.body, b.walls[i])
		}
	}
	if parent != nil && b.node.Parent() != parent {
		b.node.Remove()
		parent.AddChild(b.node)
	}

	const t = boundsThickness
	// left, right, top, bottom; walls extend past the corners so the
	// frame has no gaps
	setWall(b.walls[0], r.X-t, r.Y-t, t, r.H+2*t)
	setWall(b.walls[1], r.MaxX(), r.Y-t, t, r.H+2*t)
	setWall(b.walls[2], r.X-t, r.Y-t, r.W+2*t, t)
	setWall(b.walls[3], r.X-t, r.MaxY(), r.W+2*t, t)

	b.initialized = true
}

func setWall(c *Collider, x, y, w, h float64) {
	c.X, c.Y, c.W, c.H = x, y, w, h
}
