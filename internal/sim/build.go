package sim

import (
	"fmt"

	"github.com/san-kum/arcade2d/internal/config"
	"github.com/san-kum/arcade2d/internal/physics"
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

// Scenario is a built scene: a stage driving a physics world, with the
// configured bodies in declaration order.
type Scenario struct {
	Stage  *scene.Stage
	World  *physics.World
	Bodies []*physics.Body
	Names  []string
}

// Build constructs a stage and world from a scenario config. Bodies are
// attached through the scene graph so the world sees the same
// attach/detach events a live game would produce.
func Build(cfg *config.Config) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	view := vec.Rect{X: cfg.View.X, Y: cfg.View.Y, W: cfg.View.Width, H: cfg.View.Height}
	stage := scene.NewStage(view)
	stage.TimeScale = cfg.TimeScale

	world := physics.New()
	world.Gravity = vec.Vec2{X: cfg.Gravity.X, Y: cfg.Gravity.Y}
	world.UnitScale = cfg.UnitScale
	if err := world.SetIterations(cfg.Iterations); err != nil {
		return nil, err
	}
	world.BindStage(stage)

	sc := &Scenario{Stage: stage, World: world}
	for i, bc := range cfg.Bodies {
		body, node, err := buildBody(i, bc)
		if err != nil {
			return nil, err
		}
		stage.Root.AddChild(node)
		sc.Bodies = append(sc.Bodies, body)
		sc.Names = append(sc.Names, node.Name)
	}

	if cfg.Bounds.Enabled {
		r := cfg.Bounds.Rect
		if r.Width > 0 && r.Height > 0 {
			world.SetBounds(r.X, r.Y, r.Width, r.Height, stage.Root)
		}
		if err := world.EnableBounds(); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func buildBody(i int, bc config.BodyConfig) (*physics.Body, *scene.Node, error) {
	name := bc.Name
	if name == "" {
		name = fmt.Sprintf("body%d", i)
	}
	node := scene.NewNode(name)
	node.Position = vec.Vec2{X: bc.X, Y: bc.Y}

	var body *physics.Body
	if bc.Static {
		body = physics.NewStaticBody()
	} else {
		body = physics.NewBody()
		if err := body.SetMass(bc.Mass); err != nil {
			return nil, nil, fmt.Errorf("body %q: %w", name, err)
		}
	}
	body.Damping = bc.Damping
	body.Velocity = vec.Vec2{X: bc.VX, Y: bc.VY}

	var shape *physics.Collider
	switch bc.Shape {
	case "circle":
		shape = physics.NewCircle(0, 0, bc.Radius)
	case "box":
		node.Size = vec.Vec2{X: bc.Width, Y: bc.Height}
		shape = physics.NewBox(0, 0, bc.Width, bc.Height)
	default:
		return nil, nil, fmt.Errorf("body %q: unknown shape %q", name, bc.Shape)
	}

	node.Attach(body)
	node.Attach(shape)
	return body, node, nil
}
