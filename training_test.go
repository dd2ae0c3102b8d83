package qmitigate

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

var selectionPolicies = []SelectionPolicy{SelectRandom, SelectProbabilistic}

var replacementPolicies = []ReplacementPolicy{
	ReplaceClosest,
	ReplaceRandom,
	ReplaceProbabilistic,
}

func nonCliffordAngles(c *Circuit) []float64 {
	var angles []float64
	for _, g := range c.Gates {
		if g.Name == "rz" && !IsCliffordAngle(g.Param) {
			angles = append(angles, g.Param)
		}
	}
	return angles
}

func TestCountNonCliffords(t *testing.T) {
	Convey("Given a circuit mixing Clifford and non-Clifford rotations", t, func() {
		c := NewCircuit(1)
		count := 0
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100; i++ {
			if rng.Intn(2) == 0 {
				c.Rz(RandomClifford(rng), 0)
			} else {
				c.Rz(rng.Float64()*tau, 0)
				count++
			}
			So(CountNonCliffords(c), ShouldEqual, count)
		}
	})
}

func TestSelect(t *testing.T) {
	Convey("Given the non-Clifford rotations of an ansatz", t, func() {
		angles := nonCliffordAngles(RandomAnsatz(4, 10, 0))
		fraction := 0.3
		want := len(angles) - roundCount(fraction, len(angles))

		for _, policy := range selectionPolicies {
			Convey("Policy "+policy.String()+" should return the replacement set", func() {
				rng := rand.New(rand.NewSource(1))
				toChange, err := Select(angles, fraction, policy, 0.5, rng)

				So(err, ShouldBeNil)
				So(len(toChange), ShouldEqual, want)

				seen := make(map[int]bool)
				for _, idx := range toChange {
					So(idx, ShouldBeBetweenOrEqual, 0, len(angles)-1)
					So(seen[idx], ShouldBeFalse)
					seen[idx] = true
				}
			})
		}

		Convey("An unrecognized policy should fail fast", func() {
			rng := rand.New(rand.NewSource(1))
			_, err := Select(angles, fraction, SelectionPolicy(99), 0.5, rng)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown selection policy")
		})
	})
}

func TestReplace(t *testing.T) {
	Convey("Given non-Clifford angles", t, func() {
		angles := nonCliffordAngles(RandomAnsatz(4, 10, 0))

		for _, policy := range replacementPolicies {
			Convey("Policy "+policy.String()+" should project every angle onto the Clifford group", func() {
				rng := rand.New(rand.NewSource(1))
				replaced, err := Replace(angles, policy, 0.5, rng)

				So(err, ShouldBeNil)
				So(len(replaced), ShouldEqual, len(angles))
				for _, theta := range replaced {
					So(IsCliffordAngle(theta), ShouldBeTrue)
				}
			})
		}

		Convey("An unrecognized policy should fail fast", func() {
			rng := rand.New(rand.NewSource(1))
			_, err := Replace(angles, ReplacementPolicy(99), 0.5, rng)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown replacement policy")
		})
	})
}

func TestGenerateTrainingCircuits(t *testing.T) {
	Convey("Given a random ansatz", t, func() {
		circuit := RandomAnsatz(4, 10, 0)
		reference := circuit.Clone()
		nonCliffords := CountNonCliffords(circuit)
		fraction := 0.3
		keep := roundCount(fraction, nonCliffords)

		for _, selectPolicy := range selectionPolicies {
			for _, replacePolicy := range replacementPolicies {
				name := selectPolicy.String() + "/" + replacePolicy.String()

				Convey("Policies "+name+" should conserve circuit shape", func() {
					variants, err := GenerateTrainingCircuits(
						circuit,
						10,
						fraction,
						WithSelectionPolicy(selectPolicy),
						WithReplacementPolicy(replacePolicy),
						WithSigmaSelect(0.5),
						WithSigmaReplace(0.5),
						WithSeed(13),
					)

					So(err, ShouldBeNil)
					So(len(variants), ShouldEqual, 10)

					for _, variant := range variants {
						So(variant.Len(), ShouldEqual, circuit.Len())
						So(len(variant.Qubits()), ShouldEqual, len(circuit.Qubits()))
						So(CountNonCliffords(variant), ShouldEqual, keep)
					}
				})
			}
		}

		Convey("The source circuit should never be mutated", func() {
			_, err := GenerateTrainingCircuits(circuit, 5, fraction)

			So(err, ShouldBeNil)
			So(circuit, ShouldResemble, reference)
		})

		Convey("The same seed should reproduce the training set", func() {
			first, err := GenerateTrainingCircuits(circuit, 3, fraction, WithSeed(13))
			So(err, ShouldBeNil)

			second, err := GenerateTrainingCircuits(circuit, 3, fraction, WithSeed(13))
			So(err, ShouldBeNil)

			spew.Dump(first[0].Gates[0])
			So(second, ShouldResemble, first)
		})

		Convey("Boundary fractions should be valid, not errors", func() {
			none, err := GenerateTrainingCircuits(circuit, 2, 0)
			So(err, ShouldBeNil)
			for _, variant := range none {
				So(CountNonCliffords(variant), ShouldEqual, 0)
			}

			all, err := GenerateTrainingCircuits(circuit, 2, 1)
			So(err, ShouldBeNil)
			for _, variant := range all {
				So(CountNonCliffords(variant), ShouldEqual, nonCliffords)
			}
		})

		Convey("An unrecognized policy should fail before any work", func() {
			variants, err := GenerateTrainingCircuits(
				circuit,
				10,
				fraction,
				WithSelectionPolicy(SelectionPolicy(99)),
			)

			So(variants, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown selection policy")
		})
	})
}
