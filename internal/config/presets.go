package config

import (
	"math"
	"sort"

	"github.com/san-kum/bps/internal/constants"
)

const (
	bohrRadius   = 5.29177e-11 // m
	bohrVelocity = 2.18769e6   // m s^-1
)

var circularSpeed = math.Sqrt(0.5)

var Presets = map[string]*Config{
	"binary": {
		Name: "binary", Units: UnitsScaled, Dt: 0.001, Duration: 20.0,
		Workers: 1, SampleEvery: 20, CloseApproach: 0.01,
		Forces: ForcesConfig{Gravity: true},
		Particles: []ParticleConfig{
			{Position: [3]float64{0.5, 0, 0}, Velocity: [3]float64{0, circularSpeed, 0}, Mass: 1},
			{Position: [3]float64{-0.5, 0, 0}, Velocity: [3]float64{0, -circularSpeed, 0}, Mass: 1},
		},
	},
	"triple": {
		// Chenciner-Montgomery figure eight.
		Name: "triple", Units: UnitsScaled, Dt: 0.0005, Duration: 6.3259,
		Workers: 1, SampleEvery: 20, CloseApproach: 0.01,
		Forces: ForcesConfig{Gravity: true},
		Particles: []ParticleConfig{
			{Position: [3]float64{-0.97000436, 0.24308753, 0}, Velocity: [3]float64{0.466203685, 0.43236573, 0}, Mass: 1},
			{Position: [3]float64{0.97000436, -0.24308753, 0}, Velocity: [3]float64{0.466203685, 0.43236573, 0}, Mass: 1},
			{Position: [3]float64{0, 0, 0}, Velocity: [3]float64{-0.93240737, -0.86473146, 0}, Mass: 1},
		},
	},
	"hydrogen": {
		// Classical electron on a Bohr orbit, about one revolution.
		Name: "hydrogen", Units: UnitsSI, Dt: 1e-19, Duration: 1.52e-16,
		Workers: 1, SampleEvery: 10, CloseApproach: 1e-12,
		Forces: ForcesConfig{Gravity: true, Coulomb: true},
		Particles: []ParticleConfig{
			{Mass: constants.MassProton, Charge: constants.ElementaryCharge},
			{
				Position: [3]float64{bohrRadius, 0, 0},
				Velocity: [3]float64{0, bohrVelocity, 0},
				Mass:     constants.MassElectron,
				Charge:   -constants.ElementaryCharge,
			},
		},
	},
	"relativistic": {
		// Light charge falling onto a heavy opposite charge with c = 1.
		Name: "relativistic", Units: UnitsScaled, Dt: 1e-4, Duration: 2.0,
		Workers: 1, SampleEvery: 50, CloseApproach: 1e-3,
		Constants: ConstantsConfig{C: 1},
		Forces:    ForcesConfig{Coulomb: true},
		Particles: []ParticleConfig{
			{Mass: 1e6, Charge: 1},
			{Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 0.3, 0}, Mass: 1, Charge: -0.5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
