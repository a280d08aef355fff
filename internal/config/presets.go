package config

var Presets = map[string]*Config{
	"drop": {
		Dt: DefaultDt, Duration: 8.0, Iterations: 1, UnitScale: DefaultUnitScale, TimeScale: 1,
		Gravity: VecConfig{Y: DefaultGravityY},
		View:    RectConfig{Width: 800, Height: 600},
		Bounds:  BoundsConfig{Enabled: true},
		Bodies: []BodyConfig{
			{Name: "ball", Shape: "circle", X: 400, Y: 100, Radius: 20, Mass: 1},
		},
	},
	"billiards": {
		Dt: DefaultDt, Duration: 6.0, Iterations: 4, UnitScale: DefaultUnitScale, TimeScale: 1,
		View:   RectConfig{Width: 800, Height: 400},
		Bounds: BoundsConfig{Enabled: true},
		Bodies: []BodyConfig{
			{Name: "cue", Shape: "circle", X: 150, Y: 200, Radius: 15, Mass: 1, VX: 4},
			{Name: "one", Shape: "circle", X: 500, Y: 200, Radius: 15, Mass: 1},
			{Name: "two", Shape: "circle", X: 560, Y: 185, Radius: 15, Mass: 1},
			{Name: "three", Shape: "circle", X: 560, Y: 215, Radius: 15, Mass: 1},
		},
	},
	"stack": {
		Dt: DefaultDt, Duration: 10.0, Iterations: 10, UnitScale: DefaultUnitScale, TimeScale: 1,
		Gravity: VecConfig{Y: DefaultGravityY},
		View:    RectConfig{Width: 600, Height: 500},
		Bounds:  BoundsConfig{Enabled: true},
		Bodies: []BodyConfig{
			{Name: "crate1", Shape: "box", X: 270, Y: 380, Width: 60, Height: 60, Mass: 2},
			{Name: "crate2", Shape: "box", X: 275, Y: 300, Width: 50, Height: 50, Mass: 1.5},
			{Name: "crate3", Shape: "box", X: 280, Y: 230, Width: 40, Height: 40, Mass: 1},
		},
	},
	"rest": {
		Dt: DefaultDt, Duration: 6.0, Iterations: 4, UnitScale: DefaultUnitScale, TimeScale: 1,
		Gravity: VecConfig{Y: DefaultGravityY},
		View:    RectConfig{Width: 600, Height: 400},
		Bodies: []BodyConfig{
			{Name: "floor", Shape: "box", X: 0, Y: 350, Width: 600, Height: 50, Static: true},
			{Name: "ball", Shape: "circle", X: 300, Y: 120, Radius: 25, Mass: 1, Damping: 0.01},
		},
	},
}

// PresetNames returns the preset keys in deterministic order.
func PresetNames() []string {
	return []string{"billiards", "drop", "rest", "stack"}
}

// Preset returns a copy of a named preset so callers can tweak it.
func Preset(name string) (*Config, bool) {
	base, ok := Presets[name]
	if !ok {
		return nil, false
	}
	cp := *base
	cp.Bodies = append([]BodyConfig(nil), base.Bodies...)
	return &cp, true
}
