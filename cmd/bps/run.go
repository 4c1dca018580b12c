package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/bps/internal/analysis"
	"github.com/san-kum/bps/internal/config"
	"github.com/san-kum/bps/internal/experiment"
	"github.com/san-kum/bps/internal/export"
	"github.com/san-kum/bps/internal/sim"
	"github.com/san-kum/bps/internal/vecmath"
	"github.com/san-kum/bps/internal/viz"
)

type runOptions struct {
	configFile  string
	dt          float64
	duration    float64
	workers     int
	sampleEvery int
	plot        bool
	analyze     bool
	view        bool
	tilt        float64
	image       string
	energyImage string
	plane       string
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a preset or scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, a, o, args)
		},
	}
	addScenarioFlags(cmd, o)
	cmd.Flags().BoolVar(&o.plot, "plot", false, "plot energy and closest approach")
	cmd.Flags().BoolVar(&o.analyze, "analyze", false, "estimate orbital period and Lyapunov exponent")
	cmd.Flags().BoolVar(&o.view, "view", false, "draw the trajectories in the terminal")
	cmd.Flags().Float64Var(&o.tilt, "tilt", 0, "view tilt about the x axis in radians")
	cmd.Flags().StringVar(&o.image, "png", "", "write a trajectory plot (.png, .svg, .pdf)")
	cmd.Flags().StringVar(&o.energyImage, "energy-png", "", "write a total energy plot (.png, .svg, .pdf)")
	cmd.Flags().StringVar(&o.plane, "plane", string(export.PlaneXY), "trajectory plot plane (xy, xz, yz)")
	return cmd
}

func addScenarioFlags(cmd *cobra.Command, o *runOptions) {
	cmd.Flags().StringVar(&o.configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().Float64Var(&o.dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&o.duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().IntVar(&o.workers, "workers", config.DefaultWorkers, "force accumulation workers")
	cmd.Flags().IntVar(&o.sampleEvery, "sample-every", config.DefaultSampleEvery, "record every n-th step")
}

// loadScenario resolves the preset argument or --config file, then applies
// any flags set on the command line.
func loadScenario(cmd *cobra.Command, o *runOptions, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case o.configFile != "" && len(args) > 0:
		return nil, errors.New("give either a preset or --config, not both")
	case o.configFile != "":
		c, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	default:
		name := "binary"
		if len(args) > 0 {
			name = args[0]
		}
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = o.dt
	}
	if flags.Changed("time") {
		cfg.Duration = o.duration
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("sample-every") {
		cfg.SampleEvery = o.sampleEvery
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, a *app, o *runOptions, args []string) error {
	cfg, err := loadScenario(cmd, o, args)
	if err != nil {
		return err
	}
	exp, err := experiment.New(cfg, a.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %s simulation...\n", cfg.Name)
	start := time.Now()

	sys, res, runErr := exp.Run(cmd.Context())
	if res == nil {
		return runErr
	}
	elapsed := time.Since(start)

	fields := []viz.Field{
		{Label: "particles", Value: strconv.Itoa(sys.Len())},
		{Label: "units", Value: cfg.Units},
		{Label: "steps", Value: strconv.Itoa(res.StepsTaken)},
		{Label: "simulated", Value: viz.FormatValue(float64(res.StepsTaken)*cfg.Dt) + " s"},
		{Label: "wall time", Value: elapsed.Round(time.Millisecond).String()},
		{Label: "final energy", Value: viz.FormatValue(sys.Energy())},
		{Label: "energy drift", Value: viz.FormatValue(res.EnergyDrift)},
	}
	if o.analyze {
		extra, err := analyze(cmd.Context(), cfg, res)
		if err != nil {
			return err
		}
		fields = append(fields, extra...)
	}
	fmt.Fprintln(out, viz.Summary(cfg.Name, fields))

	failed := runErr != nil || len(res.Errors) > 0
	warn := res.Metrics["stability"] < 1
	status := "ok"
	switch {
	case runErr != nil:
		status = runErr.Error()
	case len(res.Errors) > 0:
		status = res.Errors[0].Error()
	case warn:
		status = "close approach detected"
	}
	fmt.Fprintln(out, viz.Status(!failed, warn, status))
	fmt.Fprintln(out, viz.Separator(60))

	if err := writeMetrics(out, res.Metrics); err != nil {
		return err
	}
	fmt.Fprintln(out, "energy  ", viz.Sparkline(res.Energies, 60))

	if o.plot {
		printPlots(out, res)
	}
	if o.view {
		cam := viz.NewCamera()
		if o.tilt != 0 {
			cam.Turn(vecmath.NewThreeVector(1, 0, 0), o.tilt)
		}
		fmt.Fprintln(out, viz.Snapshot(res.Positions, cam, 60, 24))
	}
	if o.image != "" {
		p, err := export.TrajectoryPlot(cfg.Name, res.Positions, export.Plane(o.plane))
		if err != nil {
			return err
		}
		if err := export.Save(o.image, p, export.DefaultWidth, export.DefaultHeight); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", o.image)
	}
	if o.energyImage != "" {
		p, err := export.SeriesPlot(cfg.Name+" energy", "E", res.Times, res.Energies)
		if err != nil {
			return err
		}
		if err := export.Save(o.energyImage, p, export.DefaultWidth, export.DefaultHeight); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", o.energyImage)
	}

	if runErr != nil {
		return runErr
	}
	if len(res.Errors) > 0 {
		return errors.Join(res.Errors...)
	}
	return nil
}

func analyze(ctx context.Context, cfg *config.Config, res *sim.Result) ([]viz.Field, error) {
	sampleDt := cfg.Dt * float64(max(cfg.SampleEvery, 1))
	period := analysis.DominantPeriod(viz.ComponentSeries(res.Positions, 0, 0), sampleDt)

	sys, err := cfg.BuildSystem()
	if err != nil {
		return nil, err
	}
	lyap := "n/a"
	lambda, err := analysis.Lyapunov(ctx, sys, cfg.Dt, cfg.Duration, analysis.DefaultLyapunov())
	switch {
	case errors.Is(err, analysis.ErrNoSeparation):
	case err != nil:
		return nil, err
	default:
		lyap = viz.FormatValue(lambda)
	}

	return []viz.Field{
		{Label: "period (p0.x)", Value: viz.FormatValue(period)},
		{Label: "lyapunov", Value: lyap},
	}, nil
}

func writeMetrics(out io.Writer, m map[string]float64) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(w, "%s\t%s\n", name, viz.FormatValue(m[name]))
	}
	return w.Flush()
}

func printPlots(out io.Writer, res *sim.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotSeries(res.Energies, "total energy", 80, 10))
	fmt.Fprintln(out)

	sep := viz.SeparationSeries(res.Positions)
	if len(sep) > 0 && !math.IsInf(sep[0], 1) {
		fmt.Fprintln(out, viz.PlotSeries(sep, "closest approach", 80, 10))
		fmt.Fprintln(out)
	}
}

func newSweepCmd(a *app) *cobra.Command {
	o := &runOptions{}
	var (
		dts      []float64
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "rerun a scenario over several timesteps and compare drift",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(dts) == 0 {
				return errors.New("--dts needs at least one timestep")
			}
			cfg, err := loadScenario(cmd, o, args)
			if err != nil {
				return err
			}
			exp, err := experiment.New(cfg, a.logger)
			if err != nil {
				return err
			}

			points, err := exp.Sweep(cmd.Context(), dts, parallel)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DT\tSTEPS\tENERGY_DRIFT\tMOMENTUM_DRIFT\tMIN_SEPARATION\tSTATUS")
			for _, p := range points {
				status := "ok"
				if len(p.Result.Errors) > 0 {
					status = "invalid"
				}
				fmt.Fprintf(w, "%g\t%d\t%s\t%s\t%s\t%s\n",
					p.Dt, p.Result.StepsTaken,
					viz.FormatValue(p.Result.Metrics["energy_drift"]),
					viz.FormatValue(p.Result.Metrics["momentum_drift"]),
					viz.FormatValue(p.Result.Metrics["min_separation"]),
					status)
			}
			return w.Flush()
		},
	}
	addScenarioFlags(cmd, o)
	cmd.Flags().Float64SliceVar(&dts, "dts", nil, "timesteps to compare, comma separated")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent runs (0 = GOMAXPROCS)")
	return cmd
}

func newMonteCarloCmd(a *app) *cobra.Command {
	o := &runOptions{}
	mc := experiment.MonteCarloConfig{}
	cmd := &cobra.Command{
		Use:   "montecarlo [preset]",
		Short: "rerun a scenario from jittered starting positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mc.Trials < 1 {
				return fmt.Errorf("--trials must be at least 1, got %d", mc.Trials)
			}
			cfg, err := loadScenario(cmd, o, args)
			if err != nil {
				return err
			}
			exp, err := experiment.New(cfg, a.logger)
			if err != nil {
				return err
			}

			trials, err := exp.MonteCarlo(cmd.Context(), mc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TRIAL\tSTEPS\tENERGY_DRIFT\tMIN_SEPARATION\tSTABLE")
			for _, tr := range trials {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%t\n",
					tr.ID, tr.Result.StepsTaken,
					viz.FormatValue(tr.Result.Metrics["energy_drift"]),
					viz.FormatValue(tr.Result.Metrics["min_separation"]),
					tr.Stable)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			stable, unstable := experiment.MonteCarloStats(trials)
			fmt.Fprintln(out, viz.Status(true, unstable > 0, fmt.Sprintf("%d stable, %d unstable", stable, unstable)))
			return nil
		},
	}
	addScenarioFlags(cmd, o)
	cmd.Flags().IntVar(&mc.Trials, "trials", 10, "number of perturbed runs")
	cmd.Flags().Float64Var(&mc.Perturbation, "perturb", 1e-3, "max position offset per component")
	cmd.Flags().Int64Var(&mc.Seed, "seed", 0, "random seed (0 = clock)")
	cmd.Flags().IntVar(&mc.MaxParallel, "parallel", 0, "concurrent runs (0 = GOMAXPROCS)")
	return cmd
}
