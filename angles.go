package qmitigate

import (
	"math"
	"math/rand"
)

// CliffordAngles are the four Z-rotation angles that keep a circuit
// inside the Clifford group.
var CliffordAngles = [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

const tau = 2 * math.Pi

// angleTolerance is well below the pi/4 spacing between the decision
// boundaries of neighbouring Clifford angles.
const angleTolerance = 1e-6

// normalizeAngle reduces theta into [0, 2pi).
func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, tau)
	if theta < 0 {
		theta += tau
	}
	return theta
}

// circularDistance returns the absolute distance between two angles on
// the circle, in [0, pi].
func circularDistance(a, b float64) float64 {
	d := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if d > math.Pi {
		d = tau - d
	}
	return d
}

// IsCliffordAngle reports whether theta is a Clifford rotation angle.
// Out-of-range inputs are reduced modulo 2pi first.
func IsCliffordAngle(theta float64) bool {
	for _, cliff := range CliffordAngles {
		if circularDistance(theta, cliff) < angleTolerance {
			return true
		}
	}
	return false
}

// ClosestClifford returns the Clifford angle nearest to theta by
// circular distance. Ties are broken in CliffordAngles order.
func ClosestClifford(theta float64) float64 {
	best := CliffordAngles[0]
	bestDist := circularDistance(theta, best)
	for _, cliff := range CliffordAngles[1:] {
		if d := circularDistance(theta, cliff); d < bestDist {
			best, bestDist = cliff, d
		}
	}
	return best
}

// RandomClifford returns one of the four Clifford angles uniformly.
func RandomClifford(rng *rand.Rand) float64 {
	return CliffordAngles[rng.Intn(len(CliffordAngles))]
}

// AngleToProbabilities returns the Gaussian kernel weight of theta
// against each Clifford angle. The weights are unnormalized.
func AngleToProbabilities(theta, sigma float64) [4]float64 {
	var weights [4]float64
	for i, cliff := range CliffordAngles {
		d := circularDistance(theta, cliff)
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return weights
}

// ProbabilisticClifford samples a Clifford angle with probability
// proportional to the Gaussian kernel of its distance from theta.
func ProbabilisticClifford(theta, sigma float64, rng *rand.Rand) float64 {
	weights := AngleToProbabilities(theta, sigma)

	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w / total
		if r <= cumulative {
			return CliffordAngles[i]
		}
	}
	return CliffordAngles[len(CliffordAngles)-1]
}
