package qmitigate

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

/*
Observable is an immutable collection of PauliString terms. Duplicate
terms (by canonical key) collapse on construction, and the term set is
kept in canonical order so Partition and Matrix are reproducible.
*/
type Observable struct {
	paulis []PauliString
}

// NewObservable builds an observable from the given terms.
func NewObservable(paulis ...PauliString) *Observable {
	seen := make(map[string]bool)
	terms := make([]PauliString, 0, len(paulis))
	for _, ps := range paulis {
		key := ps.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, ps)
	}

	sort.Slice(terms, func(i, j int) bool {
		return terms[i].String() < terms[j].String()
	})
	return &Observable{paulis: terms}
}

// NTerms returns the number of distinct terms.
func (o *Observable) NTerms() int { return len(o.paulis) }

// Terms returns a copy of the term set in canonical order.
func (o *Observable) Terms() []PauliString {
	terms := make([]PauliString, len(o.paulis))
	copy(terms, o.paulis)
	return terms
}

// Qubits returns the sorted union of the supports of all terms.
func (o *Observable) Qubits() []int {
	seen := make(map[int]bool)
	for _, ps := range o.paulis {
		for _, q := range ps.Support() {
			seen[q] = true
		}
	}

	qubits := make([]int, 0, len(seen))
	for q := range seen {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)
	return qubits
}

// NQubits returns the number of qubits the observable acts on.
func (o *Observable) NQubits() int { return len(o.Qubits()) }

/*
Partition greedily groups the terms into simultaneously measurable
subsets: each term joins the first group it is compatible with every
member of, or starts a new group. Every group is pairwise compatible
and the groups cover each term exactly once. O(n^2) compatibility
checks worst case.
*/
func (o *Observable) Partition() [][]PauliString {
	var groups [][]PauliString

	for _, pauli := range o.paulis {
		placed := false
		for i, group := range groups {
			compatible := true
			for _, member := range group {
				if !pauli.CanBeMeasuredWith(member) {
					compatible = false
					break
				}
			}
			if compatible {
				groups[i] = append(groups[i], pauli)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []PauliString{pauli})
		}
	}
	return groups
}

// Matrix returns the 2^n x 2^n dense matrix of the observable: the sum
// of each term embedded on the observable's global qubit ordering.
// Exponential in qubit count; bounding n is the caller's concern.
func (o *Observable) Matrix() *mat.CDense {
	qubits := o.Qubits()
	dim := 1 << len(qubits)

	out := mat.NewCDense(dim, dim, nil)
	for _, pauli := range o.paulis {
		term := pauli.matrixOn(qubits)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				out.Set(i, j, out.At(i, j)+term.At(i, j))
			}
		}
	}
	return out
}

// MeasureIn returns one measurement circuit per partition group: a
// clone of the base circuit plus the group's basis rotations and a
// measurement of every supported qubit. The base circuit is never
// mutated.
func (o *Observable) MeasureIn(c *Circuit) []*Circuit {
	groups := o.Partition()

	circuits := make([]*Circuit, 0, len(groups))
	for _, group := range groups {
		out := c.Clone()

		rotated := make(map[int]bool)
		measured := make(map[int]bool)
		for _, pauli := range group {
			for _, rot := range pauli.BasisRotations() {
				if rotated[rot.Qubit] {
					continue
				}
				rotated[rot.Qubit] = true
				appendBasisRotation(out, rot)
			}
			for _, q := range pauli.Support() {
				measured[q] = true
			}
		}

		qubits := make([]int, 0, len(measured))
		for q := range measured {
			qubits = append(qubits, q)
		}
		sort.Ints(qubits)
		for _, q := range qubits {
			out.Measure(q)
		}

		circuits = append(circuits, out)
	}
	return circuits
}
