package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/app"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
	"github.com/san-kum/lifesim/internal/session"
	"github.com/san-kum/lifesim/internal/viz"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	cellSize   int
	colorMode  bool
	palette    string
	iterations int
	seed       int64
	workers    int
	fps        int
	theme      string
	view       string
	timer      bool
	runs       int
)

const defaultRunIterations = 100

// main registers the lifesim commands and runs the interactive TUI when no
// subcommand is given. It exits with status 1 if a command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "lifesim",
		Short:        "conway's game of life",
		SilenceUsage: true,
		RunE:         runTUI,
	}
	addSessionFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal view",
		RunE:  runTUI,
	}
	addSessionFlags(tuiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless bounded run with summary",
		RunE:  runHeadless,
	}
	addSessionFlags(runCmd)
	runCmd.Flags().IntVar(&runs, "runs", 1, "number of seeds to run as an ensemble")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark generation throughput",
		RunE:  runBench,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRID\tCELL\tSEEDING\tTHEME")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				seeding := "random"
				if len(cfg.Pattern) > 0 {
					seeding = "pattern"
				}
				if cfg.Grid.ColorMode {
					seeding += " (" + cfg.Grid.Palette + ")"
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\t%s\n",
					name, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize, seeding, cfg.View.Theme)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	addSessionFlags(configCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "window view (build with -tags ebiten)",
		RunE:  runGUI,
	}
	addSessionFlags(guiCmd)

	rootCmd.AddCommand(tuiCmd, runCmd, benchCmd, presetsCmd, configCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.IntVar(&width, "width", def.Grid.Width, "board width")
	f.IntVar(&height, "height", def.Grid.Height, "board height")
	f.IntVar(&cellSize, "cell", def.Grid.CellSize, "cell size")
	f.BoolVar(&colorMode, "color", def.Grid.ColorMode, "seed live cells with colours")
	f.StringVar(&palette, "palette", def.Grid.Palette, "colour palette: "+strings.Join(life.PaletteNames(), ", "))
	f.IntVar(&iterations, "iterations", def.Run.Iterations, "generations to run (0 = unbounded)")
	f.Int64Var(&seed, "seed", def.Run.Seed, "random seed (0 = time based)")
	f.IntVar(&workers, "workers", def.Grid.Workers, "goroutines per generation")
	f.IntVar(&fps, "fps", def.Run.FPS, "generations per second")
	f.StringVar(&theme, "theme", def.View.Theme, "theme: "+strings.Join(config.Themes, ", "))
	f.StringVar(&view, "view", def.View.Mode, "board view: "+strings.Join(config.Views, ", "))
	f.BoolVar(&timer, "timer", def.View.Timer, "show elapsed running time")
}

// resolveConfig layers preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Grid.Width = width
	}
	if f.Changed("height") {
		cfg.Grid.Height = height
	}
	if f.Changed("cell") {
		cfg.Grid.CellSize = cellSize
	}
	if f.Changed("color") {
		cfg.Grid.ColorMode = colorMode
	}
	if f.Changed("palette") {
		cfg.Grid.Palette = palette
	}
	if f.Changed("workers") {
		cfg.Grid.Workers = workers
	}
	if f.Changed("iterations") {
		cfg.Run.Iterations = iterations
	}
	if f.Changed("seed") {
		cfg.Run.Seed = seed
	}
	if f.Changed("fps") {
		cfg.Run.FPS = fps
	}
	if f.Changed("theme") {
		cfg.View.Theme = theme
	}
	if f.Changed("view") {
		cfg.View.Mode = view
	}
	if f.Changed("timer") {
		cfg.View.Timer = timer
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg.SessionOptions())
	if err != nil {
		return err
	}
	return viz.RunInteractive(sess, viz.Options{
		FPS:   cfg.Run.FPS,
		Theme: cfg.View.Theme,
		View:  cfg.View.Mode,
		Timer: cfg.View.Timer,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := session.New(cfg.SessionOptions())
	if err != nil {
		return err
	}
	return app.Run(sess, app.Options{
		TPS:     cfg.Run.FPS,
		Title:   "lifesim",
		Palette: viz.GetTheme(cfg.View.Theme).Board,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("iterations") && cfg.Run.Iterations == 0 {
		cfg.Run.Iterations = defaultRunIterations
	}
	if cfg.Run.Iterations <= 0 {
		return fmt.Errorf("run needs a positive iteration count, got %d", cfg.Run.Iterations)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runs > 1 {
		return runEnsemble(ctx, cfg)
	}

	sess, err := session.New(cfg.SessionOptions())
	if err != nil {
		return err
	}
	recorder := metrics.NewRecorder(cfg.Run.Iterations + 1)
	cycles := analysis.NewCycleDetector(64)
	recorder.Observe(sess.Snapshot())
	cycles.Observe(sess.Snapshot())
	sess.AddObserver(recorder)
	sess.AddObserver(cycles)

	snap := sess.Snapshot()
	fmt.Printf("running %d generations on %dx%d cells\n", cfg.Run.Iterations, snap.Columns(), snap.Rows())

	start := time.Now()
	if err := sess.Run(ctx, 0); err != nil {
		return err
	}
	elapsed := time.Since(start)

	final := sess.Snapshot()
	fmt.Printf("done: %d generations in %v (%.0f gen/s)\n\n",
		final.Generation(), elapsed.Round(time.Microsecond), float64(final.Generation())/elapsed.Seconds())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range recorder.Metrics() {
		fmt.Fprintf(w, "%s\t%.4g\n", m.Name(), m.Value())
	}
	fmt.Fprintf(w, "births\t%d\n", final.Births())
	fmt.Fprintf(w, "deaths\t%d\n", final.Deaths())
	fmt.Fprintf(w, "cycle\t%s\n", cycles.Result())
	history := recorder.History()
	if p := analysis.DominantPeriod(history); p > 0 {
		fmt.Fprintf(w, "dominant period\t%.1f generations\n", p)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(history) > 1 {
		graph := asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func runEnsemble(ctx context.Context, cfg *config.Config) error {
	start := cfg.Run.Seed
	if start == 0 {
		start = time.Now().UnixNano()
	}

	fmt.Printf("running %d seeds for %d generations\n\n", runs, cfg.Run.Iterations)
	summaries, err := session.NewEnsemble(cfg.SessionOptions(), runs, start).Run(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tGENERATIONS\tPOPULATION\tCYCLE")
	settled := 0
	for i, s := range summaries {
		if s.Cycle.Settled() {
			settled++
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", i+1, s.Seed, s.Generations, s.FinalPopulation, s.Cycle)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d/%d runs settled\n", settled, len(summaries))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	sizes := []int{100, 250, 500}
	workerCounts := []int{1}
	if n := runtime.NumCPU(); n > 1 {
		workerCounts = append(workerCounts, n)
	}
	const generations = 50

	fmt.Printf("benchmarking %d generations\n\n", generations)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tWORKERS\tTIME\tGEN/SEC\tCELLS/SEC")

	for _, n := range sizes {
		for _, wk := range workerCounts {
			g, err := life.New(n, n, 1, false, life.WithSeed(42), life.WithWorkers(wk))
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < generations; i++ {
				g.Advance()
			}
			elapsed := time.Since(start)

			genPerSec := float64(generations) / elapsed.Seconds()
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.3g\n",
				n, n, wk, elapsed.Round(time.Microsecond), genPerSec, genPerSec*float64(n*n))
		}
	}

	return w.Flush()
}
