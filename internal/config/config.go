package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 1.0 / 60
	DefaultDuration   = 10.0
	DefaultIterations = 1
	DefaultUnitScale  = 50.0
	DefaultGravityY   = 9.8
	DefaultViewWidth  = 800.0
	DefaultViewHeight = 600.0
)

type Config struct {
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	Iterations int          `yaml:"iterations"`
	UnitScale  float64      `yaml:"unit_scale"`
	TimeScale  float64      `yaml:"time_scale"`
	Gravity    VecConfig    `yaml:"gravity"`
	View       RectConfig   `yaml:"view"`
	Bounds     BoundsConfig `yaml:"bounds"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BoundsConfig struct {
	Enabled bool       `yaml:"enabled"`
	Rect    RectConfig `yaml:"rect"` // zero rect means the view rectangle
}

type BodyConfig struct {
	Name    string  `yaml:"name"`
	Shape   string  `yaml:"shape"` // box | circle
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Radius  float64 `yaml:"radius"`
	Mass    float64 `yaml:"mass"`
	Damping float64 `yaml:"damping"`
	VX      float64 `yaml:"vx"`
	VY      float64 `yaml:"vy"`
	Static  bool    `yaml:"static"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Iterations: DefaultIterations,
		UnitScale:  DefaultUnitScale,
		TimeScale:  1,
		Gravity:    VecConfig{Y: DefaultGravityY},
		View:       RectConfig{Width: DefaultViewWidth, Height: DefaultViewHeight},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	if c.UnitScale <= 0 {
		return fmt.Errorf("unit_scale must be positive, got %f", c.UnitScale)
	}
	for i, b := range c.Bodies {
		switch b.Shape {
		case "box":
			if b.Width <= 0 || b.Height <= 0 {
				return fmt.Errorf("body %d: box needs positive width and height", i)
			}
		case "circle":
			if b.Radius <= 0 {
				return fmt.Errorf("body %d: circle needs positive radius", i)
			}
		default:
			return fmt.Errorf("body %d: unknown shape %q", i, b.Shape)
		}
		if b.Mass < 0 {
			return fmt.Errorf("body %d: mass must be >= 0", i)
		}
		if b.Damping < 0 || b.Damping >= 1 {
			return fmt.Errorf("body %d: damping must be in [0, 1)", i)
		}
	}
	return nil
}
