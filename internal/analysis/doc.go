// Package analysis characterizes finished or running particle systems.
//
//   - [PowerSpectrum], [DominantPeriod]: spectral content of a sampled
//     coordinate, used to read off orbital periods
//   - [Lyapunov]: largest Lyapunov exponent from two nearby trajectories
//
// A positive exponent indicates chaotic motion:
//
//	lambda, err := analysis.Lyapunov(ctx, sys, dt, duration, analysis.DefaultLyapunov())
//	if err == nil && lambda > 0 {
//	    // trajectories diverge exponentially
//	}
package analysis
