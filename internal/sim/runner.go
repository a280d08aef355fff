package sim

import (
	"context"
	"fmt"
)

// Runner drives a scenario through the fixed-update clock, recording
// body states and feeding metrics and observers.
type Runner struct {
	scenario  *Scenario
	metrics   []Metric
	observers []Observer
}

func New(sc *Scenario) *Runner {
	return &Runner{scenario: sc}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Names:   append([]string(nil), r.scenario.Names...),
		Times:   make([]float64, 0, steps+1),
		States:  make([][]BodyState, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.record(r.scenario, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.scenario.Stage.Advance(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		for _, m := range r.metrics {
			m.Observe(r.scenario.World, t)
		}
		for _, o := range r.observers {
			o.OnStep(r.scenario.World, t)
		}
		result.record(r.scenario, t)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (res *Result) record(sc *Scenario, t float64) {
	row := make([]BodyState, len(sc.Bodies))
	for i, b := range sc.Bodies {
		row[i] = BodyState{X: b.Pos.X, Y: b.Pos.Y, VX: b.Velocity.X, VY: b.Velocity.Y}
	}
	res.Times = append(res.Times, t)
	res.States = append(res.States, row)
}
