package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/arcade2d/internal/config"
	"github.com/san-kum/arcade2d/internal/physics"
	"github.com/san-kum/arcade2d/internal/sim"
	"github.com/san-kum/arcade2d/internal/viz"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
)

// Model is the bubbletea live viewer: it steps the scenario on a frame
// tick and rasterizes the world into an ascii canvas.
type Model struct {
	name     string
	cfg      *config.Config
	scenario *sim.Scenario

	t      float64
	paused bool
	speed  int
	err    error
}

func NewLive(name string, cfg *config.Config) (*Model, error) {
	sc, err := sim.Build(cfg)
	if err != nil {
		return nil, err
	}
	return &Model{name: name, cfg: cfg, scenario: sc, speed: 1}, nil
}

func (m *Model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.speed < 8 {
				m.speed++
			}
		case "-":
			if m.speed > 1 {
				m.speed--
			}
		case "r":
			sc, err := sim.Build(m.cfg)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.scenario = sc
			m.t = 0
		}
		return m, nil
	case tickMsg:
		if !m.paused {
			for i := 0; i < m.speed; i++ {
				m.scenario.Stage.Advance(m.cfg.Dt)
				m.t += m.cfg.Dt * m.cfg.TimeScale
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}

	var b strings.Builder
	b.WriteString(viz.Title.Render("arcade2d — "+m.name) + "\n")
	b.WriteString(viz.Frame.Render(m.renderCanvas()) + "\n")

	status := viz.StatusRunning.Render("running")
	if m.paused {
		status = viz.StatusPaused.Render("paused")
	}
	contacts := len(m.scenario.World.Contacts())
	b.WriteString(fmt.Sprintf("%s  t=%s  bodies=%s  contacts=%s  speed=%dx\n",
		status,
		viz.MetricValue.Render(fmt.Sprintf("%.2fs", m.t)),
		viz.MetricValue.Render(fmt.Sprintf("%d", len(m.scenario.World.Bodies()))),
		viz.MetricValue.Render(fmt.Sprintf("%d", contacts)),
		m.speed))
	b.WriteString(viz.Subtle.Render("space pause · +/- speed · r reset · q quit") + "\n")
	return b.String()
}

// renderCanvas maps the stage view rectangle onto the ascii grid and
// rasterizes every collider.
func (m *Model) renderCanvas() string {
	view := m.scenario.Stage.View
	if view.W <= 0 || view.H <= 0 {
		return ""
	}
	grid := make([][]rune, canvasHeight)
	for y := range grid {
		grid[y] = make([]rune, canvasWidth)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	sx := float64(canvasWidth) / view.W
	sy := float64(canvasHeight) / view.H

	for _, body := range m.scenario.World.Bodies() {
		ch := 'O'
		if body.Static() {
			ch = '#'
		}
		for _, shape := range body.Shapes() {
			drawShape(grid, shape, view.X, view.Y, sx, sy, ch)
		}
	}

	rows := make([]string, canvasHeight)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

func drawShape(grid [][]rune, shape *physics.Collider, ox, oy, sx, sy float64, ch rune) {
	switch shape.ShapeKind() {
	case physics.ShapeBox:
		r := shape.Bounds()
		x0, y0 := int((r.X-ox)*sx), int((r.Y-oy)*sy)
		x1, y1 := int((r.MaxX()-ox)*sx), int((r.MaxY()-oy)*sy)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				set(grid, x, y, ch)
			}
		}
	case physics.ShapeCircle:
		c := shape.Center()
		rad := shape.Radius()
		x0, y0 := int((c.X-rad-ox)*sx), int((c.Y-rad-oy)*sy)
		x1, y1 := int((c.X+rad-ox)*sx), int((c.Y+rad-oy)*sy)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				// cell center back in world units
				wx := ox + (float64(x)+0.5)/sx
				wy := oy + (float64(y)+0.5)/sy
				dx, dy := wx-c.X, wy-c.Y
				if dx*dx+dy*dy <= rad*rad {
					set(grid, x, y, ch)
				}
			}
		}
	}
}

func set(grid [][]rune, x, y int, ch rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = ch
	}
}
