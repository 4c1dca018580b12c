package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/bps/internal/logging"
	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

// Simulator drives a physics.System through fixed timesteps.
type Simulator struct {
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances sys in place for cfg.Duration. On cancellation it returns the
// partial result together with an error wrapping ErrContextCanceled.
func (s *Simulator) Run(ctx context.Context, sys *physics.System, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers > 0 {
		sys.Workers = cfg.Workers
	}
	every := cfg.SampleEvery
	if every < 1 {
		every = 1
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	samples := steps/every + 1
	result := &Result{
		Times:     make([]float64, 0, samples),
		Positions: make([][]vecmath.ThreeVector, 0, samples),
		Energies:  make([]float64, 0, samples),
		Metrics:   make(map[string]float64),
		Errors:    make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.logger.Info("simulation started",
		"particles", sys.Len(), "dt", cfg.Dt, "steps", steps, "workers", sys.Workers)

	t := 0.0
	initialEnergy := sys.Energy()
	s.record(result, sys, t)
	s.observe(sys, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result, sys, initialEnergy)
			return result, fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		default:
		}

		if err := sys.Step(ctx, cfg.Dt); err != nil {
			s.finish(result, sys, initialEnergy)
			return result, fmt.Errorf("%w: %w", ErrContextCanceled, err)
		}
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !sys.IsValid() {
			err := &SimError{Step: i, Time: t, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			s.logger.Warn("simulation stopped", "error", err)
			break
		}

		s.observe(sys, t)
		if (i+1)%every == 0 {
			s.record(result, sys, t)
		}
		if s.logger.Enabled(ctx, logging.LevelTrace) {
			s.logger.Log(ctx, logging.LevelTrace, "step", "n", i+1, "t", t, "energy", sys.Energy())
		}
	}

	s.finish(result, sys, initialEnergy)
	s.logger.Info("simulation finished",
		"steps", result.StepsTaken, "energy_drift", result.EnergyDrift)
	return result, nil
}

func (s *Simulator) observe(sys *physics.System, t float64) {
	for _, m := range s.metrics {
		m.Observe(sys, t)
	}
	for _, o := range s.observers {
		o.OnStep(sys, t)
	}
}

func (s *Simulator) record(result *Result, sys *physics.System, t float64) {
	result.Times = append(result.Times, t)
	result.Positions = append(result.Positions, sys.Positions())
	result.Energies = append(result.Energies, sys.Energy())
}

func (s *Simulator) finish(result *Result, sys *physics.System, initialEnergy float64) {
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(sys.Energy()-initialEnergy) / math.Abs(initialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (c Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	return nil
}
