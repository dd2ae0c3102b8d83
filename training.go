package qmitigate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/theapemachine/errnie"
)

// TrainingOption configures near-Clifford training set generation.
type TrainingOption func(*TrainingConfig)

// WithSelectionPolicy sets how the surviving non-Clifford rotations are
// chosen.
func WithSelectionPolicy(p SelectionPolicy) TrainingOption {
	return func(cfg *TrainingConfig) {
		cfg.Select = p
	}
}

// WithReplacementPolicy sets how replaced angles are projected onto the
// Clifford group.
func WithReplacementPolicy(p ReplacementPolicy) TrainingOption {
	return func(cfg *TrainingConfig) {
		cfg.Replace = p
	}
}

// WithSigmaSelect sets the Gaussian spread of the probabilistic
// selection kernel.
func WithSigmaSelect(sigma float64) TrainingOption {
	return func(cfg *TrainingConfig) {
		cfg.SigmaSelect = sigma
	}
}

// WithSigmaReplace sets the Gaussian spread of the probabilistic
// replacement kernel.
func WithSigmaReplace(sigma float64) TrainingOption {
	return func(cfg *TrainingConfig) {
		cfg.SigmaReplace = sigma
	}
}

// WithSeed fixes the random source so generation is reproducible.
func WithSeed(seed int64) TrainingOption {
	return func(cfg *TrainingConfig) {
		cfg.Seed = seed
	}
}

// CountNonCliffords returns the number of rz gates in the circuit whose
// rotation angle is not a Clifford angle.
func CountNonCliffords(c *Circuit) int {
	count := 0
	for _, g := range c.Gates {
		if g.Name == "rz" && !IsCliffordAngle(g.Param) {
			count++
		}
	}
	return count
}

// roundCount rounds fraction*total to the nearest integer.
func roundCount(fraction float64, total int) int {
	return int(math.Round(fraction * float64(total)))
}

// Select returns the indices of angles to replace, leaving
// round(fraction*len(angles)) angles untouched.
func Select(angles []float64, fraction float64, policy SelectionPolicy, sigma float64, rng *rand.Rand) ([]int, error) {
	change := len(angles) - roundCount(fraction, len(angles))
	if change < 0 {
		change = 0
	}
	if change > len(angles) {
		change = len(angles)
	}

	switch policy {
	case SelectRandom:
		return rng.Perm(len(angles))[:change], nil
	case SelectProbabilistic:
		return sampleWithoutReplacement(projectionWeights(angles, sigma), change, rng), nil
	}
	return nil, fmt.Errorf("unknown selection policy %v", policy)
}

// projectionWeights returns the Gaussian proximity of each angle to its
// nearest Clifford angle. Angles close to the Clifford group carry more
// weight, so projecting them perturbs the circuit least.
func projectionWeights(angles []float64, sigma float64) []float64 {
	weights := make([]float64, len(angles))
	for i, theta := range angles {
		d := circularDistance(theta, ClosestClifford(theta))
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return weights
}

// sampleWithoutReplacement draws k distinct indices, each round picking
// by cumulative weight.
func sampleWithoutReplacement(weights []float64, k int, rng *rand.Rand) []int {
	if k >= len(weights) {
		k = len(weights)
	}

	remaining := make([]int, len(weights))
	for i := range remaining {
		remaining[i] = i
	}
	pool := make([]float64, len(weights))
	copy(pool, weights)

	picked := make([]int, 0, k)
	for len(picked) < k {
		total := 0.0
		for _, w := range pool {
			total += w
		}

		r := rng.Float64() * total
		cumulative := 0.0
		chosen := len(pool) - 1
		for i, w := range pool {
			cumulative += w
			if r <= cumulative {
				chosen = i
				break
			}
		}

		picked = append(picked, remaining[chosen])
		remaining = append(remaining[:chosen], remaining[chosen+1:]...)
		pool = append(pool[:chosen], pool[chosen+1:]...)
	}
	return picked
}

// Replace projects each angle onto the Clifford group per the
// replacement policy. Every output satisfies IsCliffordAngle.
func Replace(angles []float64, policy ReplacementPolicy, sigma float64, rng *rand.Rand) ([]float64, error) {
	replaced := make([]float64, len(angles))
	for i, theta := range angles {
		switch policy {
		case ReplaceClosest:
			replaced[i] = ClosestClifford(theta)
		case ReplaceRandom:
			replaced[i] = RandomClifford(rng)
		case ReplaceProbabilistic:
			replaced[i] = ProbabilisticClifford(theta, sigma, rng)
		default:
			return nil, fmt.Errorf("unknown replacement policy %v", policy)
		}
	}
	return replaced, nil
}

// mapToNearClifford returns a copy of the circuit with all but the
// selected non-Clifford rotations projected onto the Clifford group.
func mapToNearClifford(c *Circuit, fraction float64, cfg *TrainingConfig, rng *rand.Rand) (*Circuit, error) {
	var gateIndices []int
	var angles []float64
	for i, g := range c.Gates {
		if g.Name == "rz" && !IsCliffordAngle(g.Param) {
			gateIndices = append(gateIndices, i)
			angles = append(angles, g.Param)
		}
	}

	toChange, err := Select(angles, fraction, cfg.Select, cfg.SigmaSelect, rng)
	if err != nil {
		return nil, err
	}

	changeAngles := make([]float64, len(toChange))
	for i, idx := range toChange {
		changeAngles[i] = angles[idx]
	}

	replaced, err := Replace(changeAngles, cfg.Replace, cfg.SigmaReplace, rng)
	if err != nil {
		return nil, err
	}

	out := c.Clone()
	for i, idx := range toChange {
		out.Gates[gateIndices[idx]].Param = replaced[i]
	}
	return out, nil
}

// GenerateTrainingCircuits produces n near-Clifford variants of the
// circuit for Clifford data regression. Each variant preserves the gate
// and qubit counts of the input and keeps exactly
// round(fraction * CountNonCliffords(c)) of the original non-Clifford
// rotations, projecting the rest onto the Clifford group.
func GenerateTrainingCircuits(c *Circuit, n int, fraction float64, opts ...TrainingOption) ([]*Circuit, error) {
	cfg := NewTrainingConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	errnie.Info(
		"generating %d training circuits - fraction %v, select %v, replace %v",
		n,
		fraction,
		cfg.Select,
		cfg.Replace,
	)

	rng := rand.New(rand.NewSource(cfg.Seed))
	circuits := make([]*Circuit, 0, n)
	for i := 0; i < n; i++ {
		variant, err := mapToNearClifford(c, fraction, cfg, rng)
		if err != nil {
			return nil, err
		}
		circuits = append(circuits, variant)
	}
	return circuits, nil
}
