package metrics

import "github.com/san-kum/arcade2d/internal/physics"

// MaxPenetration tracks the deepest residual overlap seen across all
// contacts during a run. Large values point at too few solver
// iterations for the scene.
type MaxPenetration struct {
	name string
	max  float64
}

func NewMaxPenetration() *MaxPenetration {
	return &MaxPenetration{name: "max_penetration"}
}

func (m *MaxPenetration) Name() string { return m.name }

func (m *MaxPenetration) Observe(w *physics.World, t float64) {
	for _, p := range w.Contacts() {
		if ov := p.Overlap(); ov > m.max {
			m.max = ov
		}
	}
}

func (m *MaxPenetration) Value() float64 { return m.max }

func (m *MaxPenetration) Reset() { m.max = 0 }
