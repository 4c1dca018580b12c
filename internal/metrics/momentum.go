package metrics

import (
	"math"

	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

// MomentumDrift is the largest distance of the total momentum from its first
// observed value.
type MomentumDrift struct {
	name     string
	initial  vecmath.ThreeVector
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(sys *physics.System, t float64) {
	p := sys.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, p.DistanceTo(m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = vecmath.ThreeVector{}
	m.maxDrift = 0
	m.samples = 0
}

// MaxBeta records the highest particle speed as a fraction of the system's
// speed of light.
type MaxBeta struct {
	name string
	max  float64
}

func NewMaxBeta() *MaxBeta {
	return &MaxBeta{name: "max_beta"}
}

func (m *MaxBeta) Name() string { return m.name }

func (m *MaxBeta) Observe(sys *physics.System, t float64) {
	m.max = math.Max(m.max, sys.MaxSpeed()/sys.Units.C)
}

func (m *MaxBeta) Value() float64 { return m.max }

func (m *MaxBeta) Reset() { m.max = 0 }
