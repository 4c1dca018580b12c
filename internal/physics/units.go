package physics

import "github.com/san-kum/bps/internal/constants"

// Units fixes the constants the force laws and the velocity composition run
// with. Scaled units let small scenarios use G = 1 or a slow speed of light.
type Units struct {
	G float64 // gravitational constant
	K float64 // Coulomb constant 1/(4π·ε₀)
	C float64 // speed of light
}

// SI is the unit system Particle's plain force methods use.
var SI = Units{
	G: constants.GravitationalConstant,
	K: constants.Coulomb,
	C: constants.SpeedOfLight,
}
