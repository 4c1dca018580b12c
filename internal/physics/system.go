package physics

import (
	"context"
	"math"

	"github.com/san-kum/bps/internal/vecmath"
)

// System is an N-body driver over a set of particles. Each Step runs three
// phases that never overlap: clear every DV, accumulate the pair
// interactions into DV, then advance every particle.
type System struct {
	Particles []*Particle
	Units     Units
	Gravity   bool
	Coulomb   bool

	// Workers bounds the goroutines used in the accumulation phase. Each
	// worker owns a disjoint range of target particles.
	Workers int
}

// NewSystem returns a system with gravity and Coulomb forces enabled and a
// single worker.
func NewSystem(units Units, particles ...*Particle) *System {
	return &System{
		Particles: particles,
		Units:     units,
		Gravity:   true,
		Coulomb:   true,
		Workers:   1,
	}
}

func (s *System) Len() int { return len(s.Particles) }

func (s *System) Add(p *Particle) { s.Particles = append(s.Particles, p) }

// Step advances the system by dt.
func (s *System) Step(ctx context.Context, dt float64) error {
	for _, p := range s.Particles {
		p.ResetDV()
	}

	if err := s.Accumulate(ctx, dt); err != nil {
		return err
	}

	for _, p := range s.Particles {
		p.UpdatePositionIn(s.Units, dt)
	}
	return nil
}

// Accumulate adds every enabled pair interaction over dt into the DV of its
// target. Sources are visited in index order for each target, so the result
// does not depend on the worker count.
func (s *System) Accumulate(ctx context.Context, dt float64) error {
	return parallelFor(ctx, len(s.Particles), s.Workers, func(start, end int) {
		for j := start; j < end; j++ {
			s.accumulateInto(j, dt)
		}
	})
}

func (s *System) accumulateInto(j int, dt float64) {
	target := s.Particles[j]
	for i, source := range s.Particles {
		if i == j {
			continue
		}
		if s.Gravity {
			source.GravitationalForceIn(s.Units, target, dt)
		}
		if s.Coulomb {
			source.CoulombForceIn(s.Units, target, dt)
		}
	}
}

// Positions returns a snapshot of every particle position.
func (s *System) Positions() []vecmath.ThreeVector {
	out := make([]vecmath.ThreeVector, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Position
	}
	return out
}

func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for _, p := range s.Particles {
		ke += p.KineticEnergy()
	}
	return ke
}

// PotentialEnergy sums the pairwise potentials of the enabled forces.
func (s *System) PotentialEnergy() float64 {
	pe := 0.0
	n := len(s.Particles)
	for i := 0; i < n; i++ {
		pi := s.Particles[i]
		for j := i + 1; j < n; j++ {
			pj := s.Particles[j]
			r := pi.Position.DistanceTo(pj.Position)
			if s.Gravity {
				pe -= s.Units.G * pi.Mass * pj.Mass / r
			}
			if s.Coulomb {
				pe += s.Units.K * pi.Charge * pj.Charge / r
			}
		}
	}
	return pe
}

// Energy is the Newtonian total energy.
func (s *System) Energy() float64 {
	return s.KineticEnergy() + s.PotentialEnergy()
}

func (s *System) Momentum() vecmath.ThreeVector {
	var total vecmath.ThreeVector
	for _, p := range s.Particles {
		total.AddInPlace(p.Momentum())
	}
	return total
}

// MinSeparation returns the smallest pairwise distance, or +Inf for fewer
// than two particles.
func (s *System) MinSeparation() float64 {
	minSep := math.Inf(1)
	n := len(s.Particles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			minSep = math.Min(minSep, s.Particles[i].Position.DistanceTo(s.Particles[j].Position))
		}
	}
	return minSep
}

// MaxSpeed returns the largest particle speed.
func (s *System) MaxSpeed() float64 {
	maxSpeed := 0.0
	for _, p := range s.Particles {
		maxSpeed = math.Max(maxSpeed, p.Velocity.Length())
	}
	return maxSpeed
}

// IsValid reports whether every particle state is finite.
func (s *System) IsValid() bool {
	for _, p := range s.Particles {
		if !p.IsValid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s *System) Clone() *System {
	c := *s
	c.Particles = make([]*Particle, len(s.Particles))
	for i, p := range s.Particles {
		c.Particles[i] = p.Clone()
	}
	return &c
}
