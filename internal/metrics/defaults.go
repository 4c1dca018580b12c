package metrics

import "github.com/san-kum/bps/internal/sim"

// Defaults returns the metrics attached to every CLI run. closeApproach is
// the separation below which a sample counts against Stability.
func Defaults(closeApproach float64) []sim.Metric {
	return []sim.Metric{
		NewEnergyDrift(),
		NewMomentumDrift(),
		NewMinSeparation(),
		NewStability(closeApproach),
		NewMaxBeta(),
		NewMeanKinetic(),
	}
}
