package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/bps/internal/relativity"
	"github.com/san-kum/bps/internal/vecmath"
)

// Particle is a point mass and point charge. DV collects the velocity
// changes other particles push onto it during one step; UpdatePosition
// consumes and clears it.
type Particle struct {
	Position vecmath.ThreeVector
	Velocity vecmath.ThreeVector
	DV       vecmath.ThreeVector

	Mass   float64
	Charge float64
}

func NewParticle(position, velocity vecmath.ThreeVector, mass, charge float64) *Particle {
	return &Particle{
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Charge:   charge,
	}
}

// GravitationalForce adds the velocity change p's gravity causes on other
// over dt to other.DV. Only p's mass enters, so mutual attraction needs a
// call for each ordered pair. Massless particles neither pull nor are
// pulled. Coincident particles give Inf/NaN.
func (p *Particle) GravitationalForce(other *Particle, dt float64) {
	p.GravitationalForceIn(SI, other, dt)
}

func (p *Particle) GravitationalForceIn(u Units, other *Particle, dt float64) {
	if p.Mass == 0 || other.Mass == 0 {
		return
	}

	r := p.Position.Sub(other.Position)
	l := r.Length()
	other.DV.AddInPlace(r.Scale(dt * u.G * p.Mass / (l * l * l)))
}

// CoulombForce adds the velocity change p's charge causes on other over dt
// to other.DV. Uncharged particles are skipped. A charged particle with zero
// mass divides by zero.
func (p *Particle) CoulombForce(other *Particle, dt float64) {
	p.CoulombForceIn(SI, other, dt)
}

func (p *Particle) CoulombForceIn(u Units, other *Particle, dt float64) {
	if p.Charge == 0 || other.Charge == 0 {
		return
	}

	r := other.Position.Sub(p.Position)
	l := r.Length()
	other.DV.AddInPlace(r.Scale((dt / other.Mass) * u.K * other.Charge * p.Charge / (l * l * l)))
}

// UpdatePosition folds DV into the velocity with relativistic addition,
// moves the particle by velocity·dt using the new velocity and clears DV.
func (p *Particle) UpdatePosition(dt float64) {
	p.UpdatePositionIn(SI, dt)
}

func (p *Particle) UpdatePositionIn(u Units, dt float64) {
	p.Velocity = relativity.AddVelocitiesC(p.Velocity, p.DV, u.C)
	p.Position.AddInPlace(p.Velocity.Scale(dt))
	p.DV = vecmath.ThreeVector{}
}

// ResetDV clears the accumulator.
func (p *Particle) ResetDV() {
	p.DV = vecmath.ThreeVector{}
}

// KineticEnergy is the Newtonian ½mv².
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity.Dot(p.Velocity)
}

// Momentum is the Newtonian m·v.
func (p *Particle) Momentum() vecmath.ThreeVector {
	return p.Velocity.Scale(p.Mass)
}

// IsValid reports whether position and velocity are finite.
func (p *Particle) IsValid() bool {
	for i := 0; i < 3; i++ {
		for _, f := range []float64{p.Position[i], p.Velocity[i]} {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
	}
	return true
}

func (p *Particle) Clone() *Particle {
	c := *p
	return &c
}

func (p *Particle) String() string {
	return fmt.Sprintf("Particle(pos=%s, vel=%s, m=%g, q=%g)", p.Position, p.Velocity, p.Mass, p.Charge)
}
