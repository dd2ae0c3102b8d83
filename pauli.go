package qmitigate

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Pauli is a single-qubit Pauli factor.
type Pauli byte

const (
	PauliI Pauli = 'I'
	PauliX Pauli = 'X'
	PauliY Pauli = 'Y'
	PauliZ Pauli = 'Z'
)

// Single-qubit matrices, row-major.
var pauliMatrices = map[Pauli][4]complex128{
	PauliI: {1, 0, 0, 1},
	PauliX: {0, 1, 1, 0},
	PauliY: {0, -1i, 1i, 0},
	PauliZ: {1, 0, 0, -1},
}

/*
PauliString is a tensor product of Pauli factors over qubit indices,
scaled by a real coefficient. Identity factors are not stored, so two
strings that differ only in explicit identities compare equal.
*/
type PauliString struct {
	ops   map[int]Pauli
	Coeff float64
}

// NewPauliString parses the text form "X0 Z2" into a PauliString with
// the given coefficient.
func NewPauliString(spec string, coeff float64) (PauliString, error) {
	ops := make(map[int]Pauli)
	for _, factor := range strings.Fields(spec) {
		if len(factor) < 2 {
			return PauliString{}, fmt.Errorf("malformed pauli factor %q", factor)
		}

		p := Pauli(factor[0])
		switch p {
		case PauliI, PauliX, PauliY, PauliZ:
		default:
			return PauliString{}, fmt.Errorf("unknown pauli operator %q", string(factor[0]))
		}

		qubit, err := strconv.Atoi(factor[1:])
		if err != nil || qubit < 0 {
			return PauliString{}, fmt.Errorf("malformed qubit index in %q", factor)
		}

		if p != PauliI {
			ops[qubit] = p
		}
	}
	return PauliString{ops: ops, Coeff: coeff}, nil
}

// MustPauliString is NewPauliString for fixed literals; it panics on
// malformed input.
func MustPauliString(spec string, coeff float64) PauliString {
	ps, err := NewPauliString(spec, coeff)
	if err != nil {
		panic(err)
	}
	return ps
}

// Support returns the sorted qubit indices the string acts on
// non-trivially.
func (ps PauliString) Support() []int {
	support := make([]int, 0, len(ps.ops))
	for q := range ps.ops {
		support = append(support, q)
	}
	sort.Ints(support)
	return support
}

// Op returns the Pauli factor on the given qubit; identity when the
// qubit is outside the support.
func (ps PauliString) Op(qubit int) Pauli {
	if p, ok := ps.ops[qubit]; ok {
		return p
	}
	return PauliI
}

// String renders the canonical sorted text form. It is the stable key
// used for dedup and ordering.
func (ps PauliString) String() string {
	var sb strings.Builder
	for i, q := range ps.Support() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(ps.ops[q]))
		sb.WriteString(strconv.Itoa(q))
	}
	if sb.Len() == 0 {
		return "I"
	}
	return sb.String()
}

// CanBeMeasuredWith reports qubit-wise compatibility: wherever both
// strings act non-trivially they must act with the same operator.
func (ps PauliString) CanBeMeasuredWith(other PauliString) bool {
	for q, p := range ps.ops {
		if o, ok := other.ops[q]; ok && o != p {
			return false
		}
	}
	return true
}

// Matrix returns the dense matrix of the string embedded on the given
// global qubit ordering, with identity on qubits outside the support.
func (ps PauliString) Matrix(qubitIndices []int) (*mat.CDense, error) {
	for _, q := range ps.Support() {
		if !slices.Contains(qubitIndices, q) {
			return nil, fmt.Errorf("pauli support qubit %d not in qubit ordering %v", q, qubitIndices)
		}
	}
	return ps.matrixOn(qubitIndices), nil
}

// matrixOn assumes the support is contained in qubitIndices.
func (ps PauliString) matrixOn(qubitIndices []int) *mat.CDense {
	out := mat.NewCDense(1, 1, []complex128{complex(ps.Coeff, 0)})
	for _, q := range qubitIndices {
		out = kron(out, pauliMatrix(ps.Op(q)))
	}
	return out
}

func pauliMatrix(p Pauli) *mat.CDense {
	m := pauliMatrices[p]
	return mat.NewCDense(2, 2, []complex128{m[0], m[1], m[2], m[3]})
}

// kron builds the Kronecker product by hand; mat.CDense carries no
// complex Kronecker operation.
func kron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()

	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

// BasisRotation is a pre-measurement rotation mapping a Pauli factor
// onto the computational basis.
type BasisRotation struct {
	Qubit int
	Basis Pauli
}

// BasisRotations returns the rotations needed to measure this string in
// the computational basis. Z factors need none.
func (ps PauliString) BasisRotations() []BasisRotation {
	rotations := make([]BasisRotation, 0, len(ps.ops))
	for _, q := range ps.Support() {
		if p := ps.ops[q]; p == PauliX || p == PauliY {
			rotations = append(rotations, BasisRotation{Qubit: q, Basis: p})
		}
	}
	return rotations
}

// appendBasisRotation lowers a basis change onto rz/rx gates, the way
// hardware basis changes are compiled.
func appendBasisRotation(c *Circuit, rot BasisRotation) {
	switch rot.Basis {
	case PauliX:
		c.Rz(math.Pi/2, rot.Qubit)
		c.Rx(math.Pi/2, rot.Qubit)
		c.Rz(math.Pi/2, rot.Qubit)
	case PauliY:
		c.Rx(math.Pi/2, rot.Qubit)
		c.Rz(math.Pi/2, rot.Qubit)
	}
}
