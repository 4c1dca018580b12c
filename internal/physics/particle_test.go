package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bps/internal/constants"
	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

var _ = Describe("Particle", func() {
	var a, b *physics.Particle

	BeforeEach(func() {
		a = physics.NewParticle(vecmath.NewThreeVector(1, 0, 0), vecmath.ThreeVector{}, 1, 0)
		b = physics.NewParticle(vecmath.ThreeVector{}, vecmath.ThreeVector{}, 1, 0)
	})

	Describe("GravitationalForce", func() {
		It("accumulates G along the separation for unit masses one apart", func() {
			a.GravitationalForce(b, 1)

			Expect(b.DV.X()).To(BeNumerically("~", constants.GravitationalConstant, 1e-24))
			Expect(b.DV.Y()).To(BeZero())
			Expect(b.DV.Z()).To(BeZero())
		})

		It("writes only into the other particle", func() {
			a.GravitationalForce(b, 1)
			Expect(a.DV.IsZero()).To(BeTrue())
			Expect(a.Velocity.IsZero()).To(BeTrue())
			Expect(b.Velocity.IsZero()).To(BeTrue())
		})

		It("points the other way when called from the other side", func() {
			b.GravitationalForce(a, 1)
			Expect(a.DV.X()).To(BeNumerically("~", -constants.GravitationalConstant, 1e-24))
		})

		It("scales with the source mass and dt only", func() {
			a.Mass = 3
			b.Mass = 100
			a.GravitationalForce(b, 2)
			Expect(b.DV.X()).To(BeNumerically("~", 6*constants.GravitationalConstant, 1e-22))
		})

		It("follows the inverse square law", func() {
			a.Position = vecmath.NewThreeVector(2, 0, 0)
			a.GravitationalForce(b, 1)
			Expect(b.DV.X()).To(BeNumerically("~", constants.GravitationalConstant/4, 1e-24))
		})

		DescribeTable("is a no-op when either mass is zero",
			func(ma, mb float64) {
				a.Mass, b.Mass = ma, mb
				a.GravitationalForce(b, 1)
				b.GravitationalForce(a, 1)
				Expect(a.DV.IsZero()).To(BeTrue())
				Expect(b.DV.IsZero()).To(BeTrue())
			},
			Entry("source massless", 0.0, 1.0),
			Entry("target massless", 1.0, 0.0),
			Entry("both massless", 0.0, 0.0),
		)

		It("lets coincident particles blow up", func() {
			a.Position = b.Position
			a.GravitationalForce(b, 1)
			Expect(math.IsNaN(b.DV.X()) || math.IsInf(b.DV.X(), 0)).To(BeTrue())
		})
	})

	Describe("CoulombForce", func() {
		BeforeEach(func() {
			a.Charge = constants.ElementaryCharge
			b.Charge = constants.ElementaryCharge
		})

		It("pushes like charges apart", func() {
			a.CoulombForce(b, 1)
			Expect(b.DV.X()).To(BeNumerically("<", 0))
			Expect(b.DV.X()).To(BeNumerically("~", -constants.Coulomb*constants.ElementaryCharge*constants.ElementaryCharge, 1e-40))
		})

		It("pulls opposite charges together", func() {
			b.Charge = -constants.ElementaryCharge
			a.CoulombForce(b, 1)
			Expect(b.DV.X()).To(BeNumerically(">", 0))
		})

		It("divides by the target mass", func() {
			b.Mass = 2
			a.CoulombForce(b, 1)
			light := b.DV.X()

			b.DV = vecmath.ThreeVector{}
			b.Mass = 1
			a.CoulombForce(b, 1)
			Expect(light).To(BeNumerically("~", b.DV.X()/2, math.Abs(b.DV.X())*1e-12))
		})

		DescribeTable("is a no-op when either charge is zero",
			func(qa, qb float64) {
				a.Charge, b.Charge = qa, qb
				a.CoulombForce(b, 1)
				b.CoulombForce(a, 1)
				Expect(a.DV.IsZero()).To(BeTrue())
				Expect(b.DV.IsZero()).To(BeTrue())
			},
			Entry("source neutral", 0.0, 1.0),
			Entry("target neutral", 1.0, 0.0),
			Entry("both neutral", 0.0, 0.0),
		)

		It("gives a massless charged target an infinite kick", func() {
			b.Mass = 0
			a.CoulombForce(b, 1)
			Expect(math.IsInf(b.DV.X(), 0)).To(BeTrue())
		})
	})

	Describe("UpdatePosition", func() {
		It("moves by the updated velocity", func() {
			b.Velocity = vecmath.NewThreeVector(1, 0, 0)
			b.DV = vecmath.NewThreeVector(0, 2, 0)
			b.UpdatePosition(0.5)

			Expect(b.Velocity.X()).To(BeNumerically("~", 1, 1e-9))
			Expect(b.Velocity.Y()).To(BeNumerically("~", 2, 1e-9))
			Expect(b.Position.X()).To(BeNumerically("~", 0.5, 1e-9))
			Expect(b.Position.Y()).To(BeNumerically("~", 1, 1e-9))
		})

		It("clears the accumulator", func() {
			b.DV = vecmath.NewThreeVector(0, 2, 0)
			b.UpdatePosition(1)
			Expect(b.DV.IsZero()).To(BeTrue())
		})

		It("keeps a particle with no kick on its course", func() {
			b.Velocity = vecmath.NewThreeVector(3, -4, 5)
			b.UpdatePosition(2)
			Expect(b.Velocity).To(Equal(vecmath.NewThreeVector(3, -4, 5)))
			Expect(b.Position).To(Equal(vecmath.NewThreeVector(6, -8, 10)))
		})

		It("composes relativistically in scaled units", func() {
			u := physics.Units{G: 1, K: 1, C: 1}
			b.Velocity = vecmath.NewThreeVector(0.5, 0, 0)
			b.DV = vecmath.NewThreeVector(0.5, 0, 0)
			b.UpdatePositionIn(u, 1)
			Expect(b.Velocity.X()).To(BeNumerically("~", 0.8, 1e-12))
			Expect(b.Position.X()).To(BeNumerically("~", 0.8, 1e-12))
		})
	})

	It("reports Newtonian kinetic energy and momentum", func() {
		b.Mass = 2
		b.Velocity = vecmath.NewThreeVector(3, 4, 0)
		Expect(b.KineticEnergy()).To(BeNumerically("~", 25, 1e-12))
		Expect(b.Momentum()).To(Equal(vecmath.NewThreeVector(6, 8, 0)))
	})

	It("detects non-finite state", func() {
		Expect(b.IsValid()).To(BeTrue())
		b.Position.SetY(math.NaN())
		Expect(b.IsValid()).To(BeFalse())
	})
})
