package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/bps/internal/config"
	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/sim"
	"github.com/san-kum/bps/internal/vecmath"
)

func shortBinary() *config.Config {
	cfg := config.GetPreset("binary")
	cfg.Duration = 0.1
	cfg.Dt = 0.01
	cfg.SampleEvery = 1
	return cfg
}

func TestExperimentRun(t *testing.T) {
	exp, err := New(shortBinary(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	sys, res, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sys.Len() != 2 {
		t.Errorf("expected 2 particles, got %d", sys.Len())
	}
	if res.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", res.StepsTaken)
	}
	if len(res.Times) != 11 {
		t.Errorf("expected 11 samples, got %d", len(res.Times))
	}
	for _, name := range []string{"energy_drift", "momentum_drift", "min_separation", "stability", "max_beta", "mean_kinetic"} {
		if _, ok := res.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}

func TestExperimentCopiesConfig(t *testing.T) {
	cfg := shortBinary()
	exp, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Particles[0].Mass = 99
	if exp.Config().Particles[0].Mass == 99 {
		t.Error("experiment shares particle storage with the caller's config")
	}
}

func TestExperimentInvalidConfig(t *testing.T) {
	cfg := shortBinary()
	cfg.Particles = nil
	if _, err := New(cfg, nil); !errors.Is(err, config.ErrNoParticles) {
		t.Errorf("err = %v, want ErrNoParticles", err)
	}
}

func TestExperimentObservers(t *testing.T) {
	exp, err := New(shortBinary(), nil)
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	exp.Simulator().AddObserver(sim.ObserverFunc(func(*physics.System, float64) { calls++ }))
	if _, _, err := exp.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls != 11 {
		t.Errorf("observer called %d times, want 11", calls)
	}
}

func TestSweep(t *testing.T) {
	exp, err := New(shortBinary(), nil)
	if err != nil {
		t.Fatal(err)
	}

	dts := []float64{0.02, 0.01, 0.005}
	points, err := exp.Sweep(context.Background(), dts, 2)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if len(points) != len(dts) {
		t.Fatalf("expected %d points, got %d", len(dts), len(points))
	}
	for i, p := range points {
		if p.Dt != dts[i] {
			t.Errorf("point %d dt = %g, want %g", i, p.Dt, dts[i])
		}
		if want := int(0.1/dts[i] + 0.5); p.Result.StepsTaken != want {
			t.Errorf("point %d steps = %d, want %d", i, p.Result.StepsTaken, want)
		}
	}
	if exp.Config().Dt != 0.01 {
		t.Error("sweep modified the experiment's config")
	}
}

func TestSweepRejectsBadTimestep(t *testing.T) {
	exp, err := New(shortBinary(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := exp.Sweep(context.Background(), []float64{0.01, 0}, 0); !errors.Is(err, config.ErrBadTimestep) {
		t.Errorf("err = %v, want ErrBadTimestep", err)
	}
}

func TestMonteCarlo(t *testing.T) {
	exp, err := New(shortBinary(), nil)
	if err != nil {
		t.Fatal(err)
	}

	mc := MonteCarloConfig{Trials: 4, Perturbation: 1e-3, Seed: 7, MaxParallel: 2}
	first, err := exp.MonteCarlo(context.Background(), mc)
	if err != nil {
		t.Fatalf("MonteCarlo failed: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 trials, got %d", len(first))
	}

	stable, unstable := MonteCarloStats(first)
	if stable != 4 || unstable != 0 {
		t.Errorf("stable=%d unstable=%d, want 4 and 0", stable, unstable)
	}

	p0 := func(tr Trial) vecmath.ThreeVector { return tr.Result.Positions[0][0] }
	if p0(first[0]) == p0(first[1]) {
		t.Error("trials should start from different perturbed positions")
	}

	second, err := exp.MonteCarlo(context.Background(), mc)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if p0(first[i]) != p0(second[i]) {
			t.Errorf("trial %d not reproducible with a fixed seed", i)
		}
	}
}

func TestMonteCarloStats(t *testing.T) {
	trials := []Trial{{Stable: true}, {Stable: false}, {Stable: true}}
	stable, unstable := MonteCarloStats(trials)
	if stable != 2 || unstable != 1 {
		t.Errorf("stable=%d unstable=%d, want 2 and 1", stable, unstable)
	}
}
