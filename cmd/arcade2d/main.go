package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/arcade2d/internal/config"
	"github.com/san-kum/arcade2d/internal/metrics"
	"github.com/san-kum/arcade2d/internal/sim"
	"github.com/san-kum/arcade2d/internal/storage"
	"github.com/san-kum/arcade2d/internal/tui"
	"github.com/san-kum/arcade2d/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	iterations int
	saveRun    bool
	jsonOut    bool
	plotBody   int
	plotAxis   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "arcade2d",
		Short: "2d arcade physics sandbox",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".arcade2d", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario headless",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario yaml file")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	runCmd.Flags().IntVar(&iterations, "iterations", 0, "solver iterations override")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run to the data directory")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "dump the full trace as JSON")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "watch a scenario in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  liveScenario,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario yaml file")

	plotCmd := &cobra.Command{
		Use:   "plot <run-id>",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotBody, "body", 0, "body index")
	plotCmd.Flags().StringVar(&plotAxis, "axis", "y", "axis: x, y, vx, vy, speed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE:  listPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export <run-id>",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, presetsCmd, exportCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadScenario(args []string) (string, *config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		return configFile, cfg, err
	}
	name := "drop"
	if len(args) > 0 {
		name = args[0]
	}
	cfg, ok := config.Preset(name)
	if !ok {
		return "", nil, fmt.Errorf("unknown preset %q (see `arcade2d presets`)", name)
	}
	return name, cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	name, cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}

	sc, err := sim.Build(cfg)
	if err != nil {
		return err
	}
	runner := sim.New(sc)
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMaxPenetration())
	runner.AddMetric(metrics.NewContactCount())

	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	if jsonOut {
		return storage.ExportJSON(os.Stdout, name, cfg.Dt, cfg.Duration, result)
	}

	fmt.Printf("scenario %s: %d steps at dt=%.4f\n\n", name, result.StepsTaken, cfg.Dt)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "body\tx\ty\tvx\tvy")
	final := result.States[len(result.States)-1]
	for i, name := range result.Names {
		bs := final[i]
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.3f\t%.3f\n", name, bs.X, bs.Y, bs.VX, bs.VY)
	}
	w.Flush()

	fmt.Println()
	for k, v := range result.Metrics {
		fmt.Printf("%s: %.4f\n", k, v)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, cfg.Dt, cfg.Duration, cfg.Iterations, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved as %s\n", runID)
	}
	return nil
}

func liveScenario(cmd *cobra.Command, args []string) error {
	name, cfg, err := loadScenario(args)
	if err != nil {
		return err
	}
	model, err := tui.NewLive(name, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, states, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	result := &sim.Result{Names: meta.Bodies, Times: times, States: states, Metrics: meta.Metrics}

	graph, err := viz.PlotBody(result, plotBody, plotAxis)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "name\tbodies\tgravity\tduration\titerations")
	for _, name := range config.PresetNames() {
		cfg, _ := config.Preset(name)
		fmt.Fprintf(w, "%s\t%d\t(%.1f, %.1f)\t%.1fs\t%d\n",
			name, len(cfg.Bodies), cfg.Gravity.X, cfg.Gravity.Y, cfg.Duration, cfg.Iterations)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, states, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	result := &sim.Result{Names: meta.Bodies, Times: times, States: states, Metrics: meta.Metrics}
	return storage.ExportJSON(os.Stdout, meta.Scenario, meta.Dt, meta.Duration, result)
}
