package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/arcade2d/internal/sim"
)

type ExportData struct {
	Scenario string             `json:"scenario"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Bodies   []string           `json:"bodies"`
	Times    []float64          `json:"times"`
	States   [][]sim.BodyState  `json:"states"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run trace as indented JSON.
func ExportJSON(out io.Writer, scenario string, dt, duration float64, result *sim.Result) error {
	data := ExportData{
		Scenario: scenario,
		Dt:       dt,
		Duration: duration,
		Steps:    len(result.Times),
		Bodies:   result.Names,
		Times:    result.Times,
		States:   result.States,
		Metrics:  result.Metrics,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
