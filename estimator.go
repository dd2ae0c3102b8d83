package qmitigate

import (
	"fmt"
	"math"
)

// Counts maps a measured bitstring (qubit 0 leftmost) to the number of
// shots that produced it.
type Counts map[string]int

// Shots returns the total number of shots recorded.
func (c Counts) Shots() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// GroupExpectation estimates the expectation value of a group of
// simultaneously measured PauliStrings from bitstring counts. It
// returns the coefficient-weighted sum and its binomial variance.
func GroupExpectation(group []PauliString, counts Counts) (float64, float64) {
	shots := counts.Shots()
	if shots == 0 {
		return 0, 0
	}

	var expval, variance float64
	for _, pauli := range group {
		support := pauli.Support()

		parity := 0
		for bits, n := range counts {
			sign := 1
			for _, q := range support {
				if q < len(bits) && bits[q] == '1' {
					sign = -sign
				}
			}
			parity += sign * n
		}

		e := float64(parity) / float64(shots)
		expval += pauli.Coeff * e
		variance += pauli.Coeff * pauli.Coeff * (1 - e*e) / float64(shots)
	}
	return expval, variance
}

// Expectation combines per-group counts into the observable's
// expectation value and standard deviation. The counts must line up
// with Partition() order, one Counts per group.
func (o *Observable) Expectation(countsPerGroup []Counts) (float64, float64, error) {
	groups := o.Partition()
	if len(countsPerGroup) != len(groups) {
		return 0, 0, fmt.Errorf(
			"got counts for %d groups, observable partitions into %d",
			len(countsPerGroup),
			len(groups),
		)
	}

	var expval, variance float64
	for i, group := range groups {
		e, v := GroupExpectation(group, countsPerGroup[i])
		expval += e
		variance += v
	}
	return expval, math.Sqrt(variance), nil
}
