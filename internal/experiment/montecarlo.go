package experiment

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/sim"
)

// MonteCarloConfig defines a batch of randomly perturbed reruns.
type MonteCarloConfig struct {
	Trials int
	// Perturbation bounds the uniform offset added to each position component.
	Perturbation float64
	// Seed fixes the offsets; zero seeds from the clock.
	Seed        int64
	MaxParallel int
}

// Trial is one perturbed run.
type Trial struct {
	ID     int
	Result *sim.Result
	// Stable is true when the run finished with finite state and no
	// sample closer than the scenario's close-approach distance.
	Stable bool
}

// MonteCarlo reruns the scenario Trials times with jittered initial positions.
func (e *Experiment) MonteCarlo(ctx context.Context, mc MonteCarloConfig) ([]Trial, error) {
	seed := mc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	systems := make([]*physics.System, mc.Trials)
	for i := range systems {
		sys, err := e.cfg.BuildSystem()
		if err != nil {
			return nil, err
		}
		for _, p := range sys.Particles {
			for k := range p.Position {
				p.Position[k] += (rng.Float64() - 0.5) * 2 * mc.Perturbation
			}
		}
		systems[i] = sys
	}

	parallel := mc.MaxParallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	results, err := sim.NewEnsemble(e.newSimulator, parallel).Run(ctx, systems, e.SimConfig())
	if err != nil {
		return nil, err
	}

	trials := make([]Trial, len(results))
	for i, res := range results {
		trials[i] = Trial{
			ID:     i,
			Result: res,
			Stable: len(res.Errors) == 0 && res.Metrics["stability"] == 1,
		}
	}
	e.logger.Info("monte carlo finished", "trials", len(trials), "seed", seed)
	return trials, nil
}

// MonteCarloStats counts stable and unstable trials.
func MonteCarloStats(trials []Trial) (stable, unstable int) {
	for _, t := range trials {
		if t.Stable {
			stable++
		} else {
			unstable++
		}
	}
	return stable, unstable
}
