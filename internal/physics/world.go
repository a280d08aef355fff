package physics

import (
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

const (
	DefaultGravityY   = 9.8
	DefaultUnitScale  = 50.0 // world units per meter for position integration
	DefaultIterations = 1
	DefaultTimeStep   = 1.0 / 60
)

// World owns the pair registry, the active bodies, the bounds walls,
// and the per-step algorithm. It implements scene.Listener so a stage
// can drive it through attach/detach events and the fixed-update tick.
type World struct {
	Gravity   vec.Vec2
	UnitScale float64

	iterations int
	bodies     []*Body
	pairs      []Pair
	index      map[pairKey]Pair
	pools      *pools
	contacts   []Pair
	stage      *scene.Stage
	bounds     boundsState
}

func New() *World {
	return &World{
		Gravity:    vec.Vec2{Y: DefaultGravityY},
		UnitScale:  DefaultUnitScale,
		iterations: DefaultIterations,
		index:      make(map[pairKey]Pair),
		pools:      newPools(),
	}
}

// SetIterations sets the solver iteration count for both the velocity
// and the position pass. More iterations buy stiffer stacks.
func (w *World) SetIterations(n int) error {
	if n < 1 {
		return ErrNegativeIterations
	}
	w.iterations = n
	return nil
}

func (w *World) Iterations() int { return w.iterations }

// Bodies returns the active body list.
func (w *World) Bodies() []*Body { return w.bodies }

// Pairs returns every maintained pair.
func (w *World) Pairs() []Pair { return w.pairs }

// Contacts returns the pairs that collided during the last step.
func (w *World) Contacts() []Pair { return w.contacts }

// BindStage subscribes the world to a stage's attach/detach events and
// fixed-update tick, and records the stage view as the default bounds.
func (w *World) BindStage(st *scene.Stage) {
	w.stage = st
	if st != nil {
		st.AddListener(w)
	}
}

// Step advances the simulation by dt seconds: refresh cached geometry,
// narrow-phase every maintained pair, integrate velocities, resolve
// contact velocities, integrate positions, resolve penetration.
func (w *World) Step(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveStep
	}

	for _, b := range w.bodies {
		b.refreshShapes()
	}

	// every maintained pair is a candidate; no broad-phase culling
	for _, p := range w.pairs {
		p.markCandidate()
	}

	w.contacts = w.contacts[:0]
	for _, p := range w.pairs {
		if p.Test() {
			w.contacts = append(w.contacts, p)
		}
	}

	for _, b := range w.bodies {
		if b.static || b.invMass == 0 {
			continue
		}
		accel := b.force.Scale(b.invMass).Add(w.Gravity)
		b.Velocity = b.Velocity.Add(accel.Scale(dt)).Scale(1 - b.Damping)
	}

	for _, p := range w.contacts {
		p.PreSolve()
	}
	for i := 0; i < w.iterations; i++ {
		for _, p := range w.contacts {
			p.SolveVelocity()
		}
	}

	for _, b := range w.bodies {
		if !b.static && b.invMass != 0 {
			b.Pos = b.Pos.Add(b.Velocity.Scale(dt * w.UnitScale))
		}
		b.force = vec.Vec2{}
	}

	for i := 0; i < w.iterations; i++ {
		for _, p := range w.contacts {
			p.SolvePosition()
		}
	}

	for _, b := range w.bodies {
		b.syncNode()
	}
	return nil
}

// ComponentAttached reacts to a body or shape entering the live scene.
func (w *World) ComponentAttached(n *scene.Node, c scene.Component) {
	switch v := c.(type) {
	case *Body:
		v.node = n
		v.Pos = n.WorldPosition()
		for _, sc := range n.Components(scene.KindShape) {
			if col, ok := sc.(*Collider); ok && col.body == nil {
				_ = w.AddShape(v, col)
			}
		}
		_ = w.AddBody(v)
	case *Collider:
		if b, ok := n.Component(scene.KindBody).(*Body); ok {
			_ = w.AddShape(b, v)
		}
	}
}

// ComponentDetached reacts to a body or shape leaving the live scene.
func (w *World) ComponentDetached(n *scene.Node, c scene.Component) {
	switch v := c.(type) {
	case *Body:
		w.RemoveBody(v)
		v.node = nil
	case *Collider:
		if v.body != nil {
			w.RemoveShape(v.body, v)
		}
	}
}

// Tick advances the world by one fixed update.
func (w *World) Tick(dt, timeScale float64) {
	_ = w.Step(dt * timeScale)
}
