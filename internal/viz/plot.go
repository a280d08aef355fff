package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/arcade2d/internal/sim"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotSeries renders one scalar series as an ascii graph.
func PlotSeries(data []float64, caption string) string {
	if len(data) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// Series extracts one axis of one body from a run trace. Axis is one of
// x, y, vx, vy, speed.
func Series(result *sim.Result, body int, axis string) ([]float64, error) {
	if body < 0 || len(result.States) == 0 || body >= len(result.States[0]) {
		return nil, fmt.Errorf("viz: body index %d out of range", body)
	}
	out := make([]float64, len(result.States))
	for i, row := range result.States {
		bs := row[body]
		switch axis {
		case "x":
			out[i] = bs.X
		case "y":
			out[i] = bs.Y
		case "vx":
			out[i] = bs.VX
		case "vy":
			out[i] = bs.VY
		case "speed":
			out[i] = math.Sqrt(bs.VX*bs.VX + bs.VY*bs.VY)
		default:
			return nil, fmt.Errorf("viz: unknown axis %q", axis)
		}
	}
	return out, nil
}

// PlotBody renders one body axis with a labelled caption.
func PlotBody(result *sim.Result, body int, axis string) (string, error) {
	data, err := Series(result, body, axis)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("body %d", body)
	if body < len(result.Names) {
		name = result.Names[body]
	}
	return PlotSeries(data, fmt.Sprintf("%s %s over time", name, axis)), nil
}
