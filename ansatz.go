package qmitigate

import "math/rand"

// RandomAnsatz builds a seeded hardware-efficient ansatz: layers of
// random single-qubit Z rotations alternating with a ladder of CNOTs,
// followed by a measurement of every qubit.
func RandomAnsatz(qubits, depth int, seed int64) *Circuit {
	rng := rand.New(rand.NewSource(seed))
	c := NewCircuit(qubits)

	for layer := 0; layer < depth; layer++ {
		for q := 0; q < qubits; q++ {
			c.Rz(rng.Float64()*tau, q)
		}
		for q := 0; q+1 < qubits; q += 2 {
			c.CNOT(q, q+1)
		}
		for q := 1; q+1 < qubits; q += 2 {
			c.CNOT(q, q+1)
		}
	}

	for q := 0; q < qubits; q++ {
		c.Measure(q)
	}
	return c
}
