// Package experiment turns a scenario config into simulator runs.
package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/san-kum/bps/internal/config"
	"github.com/san-kum/bps/internal/logging"
	"github.com/san-kum/bps/internal/metrics"
	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
	logger    *slog.Logger
}

// New validates cfg and prepares a simulator carrying the default metrics.
// The experiment keeps its own copy of cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	e := &Experiment{cfg: cfg.Clone(), logger: logger}
	e.simulator = e.newSimulator()
	return e, nil
}

func (e *Experiment) newSimulator() *sim.Simulator {
	s := sim.New(e.logger)
	for _, m := range metrics.Defaults(e.cfg.CloseApproach) {
		s.AddMetric(m)
	}
	return s
}

// Config returns the scenario the experiment runs.
func (e *Experiment) Config() *config.Config { return e.cfg }

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *sim.Simulator { return e.simulator }

// SimConfig derives the runner settings from the scenario.
func (e *Experiment) SimConfig() sim.Config {
	return simConfig(e.cfg)
}

func simConfig(c *config.Config) sim.Config {
	return sim.Config{
		Dt:            c.Dt,
		Duration:      c.Duration,
		ValidateState: true,
		Workers:       c.Workers,
		SampleEvery:   c.SampleEvery,
	}
}

// Run builds a fresh system from the scenario and simulates it.
func (e *Experiment) Run(ctx context.Context) (*physics.System, *sim.Result, error) {
	sys, err := e.cfg.BuildSystem()
	if err != nil {
		return nil, nil, err
	}
	res, err := e.simulator.Run(ctx, sys, e.SimConfig())
	if err != nil {
		return sys, res, fmt.Errorf("run %s: %w", e.cfg.Name, err)
	}
	return sys, res, nil
}

// SweepPoint is the outcome of one timestep in a sweep.
type SweepPoint struct {
	Dt     float64
	Result *sim.Result
}

// Sweep reruns the scenario once per timestep, concurrently, and returns the
// points in the order of dts. maxParallel <= 0 uses GOMAXPROCS.
func (e *Experiment) Sweep(ctx context.Context, dts []float64, maxParallel int) ([]SweepPoint, error) {
	if maxParallel <= 0 {
		maxParallel = runtime.GOMAXPROCS(0)
	}

	jobs := make([]sim.Job, len(dts))
	for i, dt := range dts {
		c := e.cfg.Clone()
		c.Dt = dt
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("dt %g: %w", dt, err)
		}
		sys, err := c.BuildSystem()
		if err != nil {
			return nil, err
		}
		jobs[i] = sim.Job{System: sys, Config: simConfig(c)}
	}

	results, err := sim.NewEnsemble(e.newSimulator, maxParallel).RunJobs(ctx, jobs)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, len(dts))
	for i, dt := range dts {
		points[i] = SweepPoint{Dt: dt, Result: results[i]}
	}
	return points, nil
}
