package sim

import (
	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

type Metric interface {
	Name() string
	Observe(sys *physics.System, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(sys *physics.System, t float64)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(sys *physics.System, t float64)

func (f ObserverFunc) OnStep(sys *physics.System, t float64) { f(sys, t) }

type Config struct {
	Dt       float64
	Duration float64

	// ValidateState stops a run at the first non-finite particle state.
	ValidateState bool

	// Workers overrides the system's worker count when positive.
	Workers int

	// SampleEvery records every n-th step; 0 or 1 records all.
	SampleEvery int
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateState: true,
		SampleEvery:   1,
	}
}

type Result struct {
	Times      []float64
	Positions  [][]vecmath.ThreeVector
	Energies   []float64
	Metrics    map[string]float64
	StepsTaken int

	// EnergyDrift is |E_end - E_start| / |E_start|, zero when E_start is zero.
	EnergyDrift float64
	Errors      []error
}
