// Package constants holds the physical constants used by the simulator, in
// SI units.
package constants

import "math"

const (
	SpeedOfLight          = 2.99792458e8    // m s^-1
	GravitationalConstant = 6.6742e-11      // m^3 s^-2 kg^-1
	VacuumPermittivity    = 8.854187817e-12 // A^2 s^4 kg^-1 m^-3
	VacuumPermeability    = 1.25663706144e-6
	MassProton            = 1.6726215813e-27 // kg
	MassNeutron           = 1.6749271613e-27 // kg
	MassElectron          = 9.1093818872e-31 // kg
	ElementaryCharge      = 1.60217653e-19   // A s
)

// Coulomb is 1/(4π·ε₀).
var Coulomb = 1 / (4 * math.Pi * VacuumPermittivity)
