package qmitigate

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsCliffordAngle(t *testing.T) {
	Convey("Given the canonical Clifford angles", t, func() {
		Convey("Every integer multiple should classify as Clifford", func() {
			for k := 0; k < 15; k++ {
				for _, cliff := range CliffordAngles {
					So(IsCliffordAngle(float64(k)*cliff), ShouldBeTrue)
				}
			}
		})

		Convey("Negative angles should be reduced modulo 2pi first", func() {
			So(IsCliffordAngle(-math.Pi/2), ShouldBeTrue)
			So(IsCliffordAngle(-math.Pi), ShouldBeTrue)
			So(IsCliffordAngle(-tau), ShouldBeTrue)
		})

		Convey("Angles away from the Clifford group should not classify", func() {
			So(IsCliffordAngle(0.3), ShouldBeFalse)
			So(IsCliffordAngle(math.Pi/4), ShouldBeFalse)
			So(IsCliffordAngle(5.0), ShouldBeFalse)
		})
	})
}

func TestClosestClifford(t *testing.T) {
	Convey("Given angles inside each pi/4 decision window", t, func() {
		const steps = 25
		for _, cliff := range CliffordAngles {
			lo := cliff - math.Pi/4 + 0.01
			hi := cliff + math.Pi/4 - 0.01
			for i := 0; i < steps; i++ {
				theta := lo + float64(i)*(hi-lo)/float64(steps-1)
				So(ClosestClifford(theta), ShouldAlmostEqual, cliff)
			}
		}
	})

	Convey("Given an angle just below 2pi", t, func() {
		Convey("The closest Clifford angle should wrap around to zero", func() {
			So(ClosestClifford(tau-0.1), ShouldAlmostEqual, 0)
		})
	})
}

func TestRandomClifford(t *testing.T) {
	Convey("Given a seeded random source", t, func() {
		rng := rand.New(rand.NewSource(7))

		Convey("Every draw should be a Clifford angle", func() {
			for i := 0; i < 100; i++ {
				So(IsCliffordAngle(RandomClifford(rng)), ShouldBeTrue)
			}
		})
	})
}

func TestAngleToProbabilities(t *testing.T) {
	Convey("Given a range of kernel spreads", t, func() {
		for sigma := 0.1; sigma <= 2.0; sigma += 0.1 {
			weights := AngleToProbabilities(0.9, sigma)

			for _, w := range weights {
				So(w, ShouldBeGreaterThan, 0)
				So(w, ShouldBeLessThanOrEqualTo, 1)
			}
		}
	})

	Convey("Given an exactly Clifford input", t, func() {
		weights := AngleToProbabilities(math.Pi, 0.5)

		Convey("The matching angle should carry full weight", func() {
			So(weights[2], ShouldAlmostEqual, 1)
			So(weights[0], ShouldBeLessThan, weights[2])
		})
	})
}

func TestProbabilisticClifford(t *testing.T) {
	Convey("Given a seeded random source", t, func() {
		rng := rand.New(rand.NewSource(42))

		Convey("Every sampled angle should be a Clifford angle", func() {
			for sigma := 0.1; sigma <= 2.0; sigma += 0.1 {
				for _, cliff := range CliffordAngles {
					So(IsCliffordAngle(ProbabilisticClifford(cliff+0.2, sigma, rng)), ShouldBeTrue)
				}
			}
		})
	})
}
