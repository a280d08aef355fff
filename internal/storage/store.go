package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/arcade2d/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Iterations int                `json:"iterations"`
	Bodies     []string           `json:"bodies"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes one run as <base>/<scenario>_<unix>/metadata.json plus a
// states.csv with a t column and x/y/vx/vy columns per body.
func (s *Store) Save(scenario string, dt, duration float64, iterations int, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Scenario:   scenario,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Iterations: iterations,
		Bodies:     result.Names,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"t"}
	for _, name := range result.Names {
		header = append(header,
			name+"_x", name+"_y", name+"_vx", name+"_vy")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, t := range result.Times {
		row := []string{strconv.FormatFloat(t, 'f', -1, 64)}
		for _, bs := range result.States[i] {
			row = append(row,
				strconv.FormatFloat(bs.X, 'f', -1, 64),
				strconv.FormatFloat(bs.Y, 'f', -1, 64),
				strconv.FormatFloat(bs.VX, 'f', -1, 64),
				strconv.FormatFloat(bs.VY, 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// Load reads a run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads a run's trace back into times and body states.
func (s *Store) LoadStates(runID string) ([]float64, [][]sim.BodyState, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 1 {
		return nil, nil, fmt.Errorf("storage: empty states file for %s", runID)
	}
	bodies := (len(rows[0]) - 1) / 4

	var times []float64
	var states [][]sim.BodyState
	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, err
		}
		sr := make([]sim.BodyState, bodies)
		for b := 0; b < bodies; b++ {
			vals := [4]float64{}
			for j := 0; j < 4; j++ {
				v, err := strconv.ParseFloat(row[1+b*4+j], 64)
				if err != nil {
					return nil, nil, err
				}
				vals[j] = v
			}
			sr[b] = sim.BodyState{X: vals[0], Y: vals[1], VX: vals[2], VY: vals[3]}
		}
		times = append(times, t)
		states = append(states, sr)
	}
	return times, states, nil
}

// List returns metadata for every saved run, newest first.
func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var runs []*RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
