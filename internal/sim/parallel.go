package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/bps/internal/physics"
)

// Ensemble runs independent systems concurrently, one Simulator per run.
// Metrics are created per run by the factory so no state is shared.
type Ensemble struct {
	newSimulator func() *Simulator
	maxParallel  int
}

func NewEnsemble(newSimulator func() *Simulator, maxParallel int) *Ensemble {
	return &Ensemble{newSimulator: newSimulator, maxParallel: maxParallel}
}

// Job pairs a system with the run settings to apply to it.
type Job struct {
	System *physics.System
	Config Config
}

// Run simulates each system with cfg. Results are in input order. The first
// failing run cancels the rest.
func (e *Ensemble) Run(ctx context.Context, systems []*physics.System, cfg Config) ([]*Result, error) {
	jobs := make([]Job, len(systems))
	for i, sys := range systems {
		jobs[i] = Job{System: sys, Config: cfg}
	}
	return e.RunJobs(ctx, jobs)
}

// RunJobs is Run with per-system settings.
func (e *Ensemble) RunJobs(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if e.maxParallel > 0 {
		g.SetLimit(e.maxParallel)
	}

	for i, job := range jobs {
		g.Go(func() error {
			res, err := e.newSimulator().Run(ctx, job.System, job.Config)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
