// Package relativity composes velocities under special relativity.
package relativity

import (
	"math"

	"github.com/san-kum/bps/internal/constants"
	"github.com/san-kum/bps/internal/vecmath"
)

// AddVelocities composes v1 with v2 at the speed of light in vacuum.
func AddVelocities(v1, v2 vecmath.ThreeVector) vecmath.ThreeVector {
	return AddVelocitiesC(v1, v2, constants.SpeedOfLight)
}

// AddVelocitiesC composes v1 with v2 for a speed limit c:
//
//	(v1∥ + v2 + sqrt(1 - |v2|²/c²)·v1⊥) / (1 + v1·v2/c²)
//
// where v1∥ and v1⊥ are the parts of v1 parallel and perpendicular to v2.
// A v2 whose length is zero, including one that underflows, returns v1
// unchanged. Speeds at or above c are not guarded and
// produce NaN or Inf.
func AddVelocitiesC(v1, v2 vecmath.ThreeVector, c float64) vecmath.ThreeVector {
	l := v2.Length()
	if l == 0 {
		return v1
	}

	n := v2.Div(l)
	parallel := n.Scale(v1.Dot(n))
	perpendicular := v1.Sub(parallel)

	c2 := c * c
	gamma := math.Sqrt(1 - v2.Dot(v2)/c2)

	numerator := parallel.Add(v2).Add(perpendicular.Scale(gamma))
	denominator := 1 + v1.Dot(v2)/c2
	return numerator.Div(denominator)
}

// Gamma returns the Lorentz factor 1/sqrt(1 - |v|²/c²) at the speed of light
// in vacuum.
func Gamma(v vecmath.ThreeVector) float64 {
	return GammaC(v, constants.SpeedOfLight)
}

func GammaC(v vecmath.ThreeVector, c float64) float64 {
	return 1 / math.Sqrt(1-v.Dot(v)/(c*c))
}

// Beta returns |v|/c.
func Beta(v vecmath.ThreeVector, c float64) float64 {
	return v.Length() / c
}
