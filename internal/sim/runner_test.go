package sim

import (
	"context"
	"testing"

	"github.com/san-kum/arcade2d/internal/config"
	"github.com/san-kum/arcade2d/internal/metrics"
	"github.com/san-kum/arcade2d/internal/physics"
)

func buildPreset(t *testing.T, name string) (*Scenario, *config.Config) {
	t.Helper()
	cfg, ok := config.Preset(name)
	if !ok {
		t.Fatalf("missing preset %q", name)
	}
	sc, err := Build(cfg)
	if err != nil {
		t.Fatalf("build %q: %v", name, err)
	}
	return sc, cfg
}

func TestBuildWiresBodiesAndBounds(t *testing.T) {
	sc, cfg := buildPreset(t, "billiards")

	if len(sc.Bodies) != len(cfg.Bodies) {
		t.Fatalf("expected %d bodies, got %d", len(cfg.Bodies), len(sc.Bodies))
	}
	if sc.Names[0] != "cue" {
		t.Errorf("expected declaration order preserved, got %v", sc.Names)
	}
	if !sc.World.BoundsEnabled() {
		t.Error("preset asks for bounds")
	}
	// the bounds body registers alongside the configured ones
	if got := len(sc.World.Bodies()); got != len(cfg.Bodies)+1 {
		t.Errorf("expected %d world bodies, got %d", len(cfg.Bodies)+1, got)
	}
	if sc.Bodies[0].Velocity.X != 4 {
		t.Error("initial velocity should come from the config")
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dt = 0
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRunRecordsTrace(t *testing.T) {
	sc, cfg := buildPreset(t, "drop")

	r := New(sc)
	r.AddMetric(metrics.NewKineticEnergy())
	r.AddMetric(metrics.NewMaxPenetration())

	runCfg := Config{Dt: cfg.Dt, Duration: 1.0}
	res, err := r.Run(context.Background(), runCfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	steps := int(runCfg.Duration / runCfg.Dt)
	if res.StepsTaken != steps {
		t.Errorf("expected %d steps, got %d", steps, res.StepsTaken)
	}
	if len(res.Times) != steps+1 || len(res.States) != steps+1 {
		t.Errorf("expected %d samples, got %d times / %d states",
			steps+1, len(res.Times), len(res.States))
	}
	if len(res.States[0]) != 1 {
		t.Fatalf("expected one body per row, got %d", len(res.States[0]))
	}
	if _, ok := res.Metrics["kinetic_energy"]; !ok {
		t.Error("kinetic energy metric missing from result")
	}
	if _, ok := res.Metrics["max_penetration"]; !ok {
		t.Error("max penetration metric missing from result")
	}

	// the ball falls under gravity
	if res.States[steps][0].Y <= res.States[0][0].Y {
		t.Error("dropped ball should move down the view")
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	sc, cfg := buildPreset(t, "drop")
	r := New(sc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := r.Run(ctx, Config{Dt: cfg.Dt, Duration: 5})
	if err == nil {
		t.Fatal("expected context error")
	}
	if res == nil || res.StepsTaken != 0 {
		t.Error("cancelled run should return the partial trace")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	sc, _ := buildPreset(t, "drop")
	r := New(sc)
	if _, err := r.Run(context.Background(), Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("zero dt should be rejected")
	}
	if _, err := r.Run(context.Background(), Config{Dt: 0.01, Duration: 0}); err == nil {
		t.Error("zero duration should be rejected")
	}
}

type stepCounter struct{ n int }

func (s *stepCounter) OnStep(w *physics.World, t float64) { s.n++ }

func TestObserversSeeEveryStep(t *testing.T) {
	sc, cfg := buildPreset(t, "rest")
	r := New(sc)
	obs := &stepCounter{}
	r.AddObserver(obs)

	res, err := r.Run(context.Background(), Config{Dt: cfg.Dt, Duration: 0.5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if obs.n != res.StepsTaken {
		t.Errorf("observer saw %d steps, runner took %d", obs.n, res.StepsTaken)
	}
}
