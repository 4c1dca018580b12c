package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/bps/internal/physics"
)

// EnergyDrift tracks the largest relative deviation of the total energy from
// its first observed value.
type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(sys *physics.System, t float64) {
	energy := sys.Energy()

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// MeanKinetic averages the total kinetic energy over all observations.
type MeanKinetic struct {
	name    string
	samples []float64
}

func NewMeanKinetic() *MeanKinetic {
	return &MeanKinetic{name: "mean_kinetic"}
}

func (m *MeanKinetic) Name() string { return m.name }

func (m *MeanKinetic) Observe(sys *physics.System, t float64) {
	m.samples = append(m.samples, sys.KineticEnergy())
}

func (m *MeanKinetic) Value() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	return stat.Mean(m.samples, nil)
}

func (m *MeanKinetic) Reset() {
	m.samples = m.samples[:0]
}
