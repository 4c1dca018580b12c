package analysis

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/bps/internal/physics"
)

var ErrNoSeparation = errors.New("analysis: trajectories did not separate")

// LyapunovOptions tunes the two-trajectory estimate.
type LyapunovOptions struct {
	// Perturbation is the initial phase-space offset applied to particle 0.
	Perturbation float64
	// RenormEvery is the number of steps between renormalizations.
	RenormEvery int
}

func DefaultLyapunov() LyapunovOptions {
	return LyapunovOptions{Perturbation: 1e-8, RenormEvery: 10}
}

// Lyapunov estimates the largest Lyapunov exponent of sys by advancing a copy
// with a small offset in particle 0's x position alongside it. The offset is
// rescaled back to its initial size every RenormEvery steps and the log growth
// factors are averaged over simulated time. sys itself is not modified.
func Lyapunov(ctx context.Context, sys *physics.System, dt, duration float64, opts LyapunovOptions) (float64, error) {
	if sys.Len() == 0 || dt <= 0 || duration <= 0 || opts.Perturbation <= 0 {
		return 0, nil
	}
	every := max(opts.RenormEvery, 1)

	ref := sys.Clone()
	pert := sys.Clone()
	pert.Particles[0].Position[0] += opts.Perturbation
	d0 := opts.Perturbation

	steps := int(math.Round(duration / dt))
	sumLog := 0.0
	elapsed := 0.0
	for i := 1; i <= steps; i++ {
		if err := ref.Step(ctx, dt); err != nil {
			return 0, err
		}
		if err := pert.Step(ctx, dt); err != nil {
			return 0, err
		}
		if i%every != 0 && i != steps {
			continue
		}

		d := separation(ref, pert)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, ErrNoSeparation
		}
		sumLog += math.Log(d / d0)
		elapsed = float64(i) * dt
		rescale(ref, pert, d0/d)
	}

	if elapsed == 0 {
		return 0, nil
	}
	return sumLog / elapsed, nil
}

// separation is the Euclidean distance between two systems in phase space.
func separation(a, b *physics.System) float64 {
	sum := 0.0
	for i := range a.Particles {
		dp := a.Particles[i].Position.DistanceTo(b.Particles[i].Position)
		dv := a.Particles[i].Velocity.DistanceTo(b.Particles[i].Velocity)
		sum += dp*dp + dv*dv
	}
	return math.Sqrt(sum)
}

// rescale pulls b toward a so that their separation shrinks by f.
func rescale(a, b *physics.System, f float64) {
	for i := range b.Particles {
		pa, pb := a.Particles[i], b.Particles[i]
		pb.Position = pa.Position.Add(pb.Position.Sub(pa.Position).Scale(f))
		pb.Velocity = pa.Velocity.Add(pb.Velocity.Sub(pa.Velocity).Scale(f))
	}
}
