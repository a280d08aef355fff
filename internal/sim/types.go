package sim

import "github.com/san-kum/arcade2d/internal/physics"

// Metric aggregates a scalar over a run.
type Metric interface {
	Name() string
	Observe(w *physics.World, t float64)
	Value() float64
	Reset()
}

// Observer is called after every completed step.
type Observer interface {
	OnStep(w *physics.World, t float64)
}

// Config controls one run of the fixed-step loop.
type Config struct {
	Dt       float64
	Duration float64
}

// BodyState is one body's recorded state at a sample time.
type BodyState struct {
	X, Y   float64
	VX, VY float64
}

// Result collects the per-step trace of a run.
type Result struct {
	Names      []string
	Times      []float64
	States     [][]BodyState // one row per sample, one column per body
	Metrics    map[string]float64
	StepsTaken int
}
