package physics_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

var scaled = physics.Units{G: 1, K: 1, C: 1e6}

func cluster(n int) *physics.System {
	sys := physics.NewSystem(scaled)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := vecmath.NewThreeVector(math.Cos(angle), math.Sin(angle), 0.1*float64(i%3))
		vel := vecmath.NewThreeVector(-math.Sin(angle), math.Cos(angle), 0).Scale(0.3)
		charge := 0.0
		if i%2 == 0 {
			charge = 0.01
		}
		sys.Add(physics.NewParticle(pos, vel, 1+0.1*float64(i), charge))
	}
	return sys
}

var _ = Describe("System", func() {
	ctx := context.Background()

	It("reproduces a single ordered-pair interaction", func() {
		a := physics.NewParticle(vecmath.NewThreeVector(1, 0, 0), vecmath.ThreeVector{}, 1, 0)
		b := physics.NewParticle(vecmath.ThreeVector{}, vecmath.ThreeVector{}, 1, 0)
		sys := physics.NewSystem(scaled, a, b)

		Expect(sys.Accumulate(ctx, 1)).To(Succeed())
		Expect(b.DV).To(Equal(vecmath.NewThreeVector(1, 0, 0)))
		Expect(a.DV).To(Equal(vecmath.NewThreeVector(-1, 0, 0)))
	})

	It("clears DV before accumulating", func() {
		sys := cluster(3)
		for _, p := range sys.Particles {
			p.DV = vecmath.NewThreeVector(100, 100, 100)
		}
		ref := cluster(3)

		Expect(sys.Step(ctx, 0.01)).To(Succeed())
		Expect(ref.Step(ctx, 0.01)).To(Succeed())
		Expect(sys.Positions()).To(Equal(ref.Positions()))
	})

	It("leaves every DV empty after a step", func() {
		sys := cluster(4)
		Expect(sys.Step(ctx, 0.01)).To(Succeed())
		for _, p := range sys.Particles {
			Expect(p.DV.IsZero()).To(BeTrue())
		}
	})

	It("gives the same answer for any worker count", func() {
		seq := cluster(13)
		par := seq.Clone()
		par.Workers = 4

		for i := 0; i < 20; i++ {
			Expect(seq.Step(ctx, 0.001)).To(Succeed())
			Expect(par.Step(ctx, 0.001)).To(Succeed())
		}
		Expect(par.Positions()).To(Equal(seq.Positions()))
	})

	It("honours disabled forces", func() {
		sys := cluster(4)
		sys.Gravity = false
		sys.Coulomb = false
		start := sys.Clone()

		Expect(sys.Accumulate(ctx, 1)).To(Succeed())
		for _, p := range sys.Particles {
			Expect(p.DV.IsZero()).To(BeTrue())
		}
		Expect(sys.PotentialEnergy()).To(BeZero())
		Expect(start.PotentialEnergy()).NotTo(BeZero())
	})

	It("stops on a cancelled context", func() {
		sys := cluster(8)
		sys.Workers = 2
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		Expect(sys.Step(cctx, 0.01)).To(MatchError(context.Canceled))
	})

	It("roughly conserves energy and momentum for a bound pair", func() {
		a := physics.NewParticle(vecmath.NewThreeVector(0.5, 0, 0), vecmath.NewThreeVector(0, 0.5, 0), 1, 0)
		b := physics.NewParticle(vecmath.NewThreeVector(-0.5, 0, 0), vecmath.NewThreeVector(0, -0.5, 0), 1, 0)
		sys := physics.NewSystem(scaled, a, b)

		e0 := sys.Energy()
		for i := 0; i < 1000; i++ {
			Expect(sys.Step(ctx, 1e-4)).To(Succeed())
		}

		Expect(sys.Energy()).To(BeNumerically("~", e0, math.Abs(e0)*1e-2))
		Expect(sys.Momentum().Length()).To(BeNumerically("<", 1e-9))
	})

	It("reports geometry for consumers", func() {
		sys := physics.NewSystem(scaled,
			physics.NewParticle(vecmath.NewThreeVector(0, 0, 0), vecmath.NewThreeVector(3, 4, 0), 1, 0),
			physics.NewParticle(vecmath.NewThreeVector(0, 2, 0), vecmath.ThreeVector{}, 1, 0),
			physics.NewParticle(vecmath.NewThreeVector(0, 5, 0), vecmath.ThreeVector{}, 1, 0),
		)
		Expect(sys.Len()).To(Equal(3))
		Expect(sys.MinSeparation()).To(Equal(2.0))
		Expect(sys.MaxSpeed()).To(Equal(5.0))
		Expect(sys.Positions()).To(HaveLen(3))
		Expect(sys.IsValid()).To(BeTrue())

		Expect(physics.NewSystem(scaled).MinSeparation()).To(Equal(math.Inf(1)))
	})

	It("deep-copies on Clone", func() {
		sys := cluster(2)
		c := sys.Clone()
		c.Particles[0].Position.SetX(42)
		Expect(sys.Particles[0].Position.X()).NotTo(Equal(42.0))
	})
})
