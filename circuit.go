package qmitigate

import "sort"

// Gate is a single operation placed on a circuit. Control is -1 for
// single-qubit gates; Param carries the rotation angle for rz and rx.
type Gate struct {
	Name    string
	Target  int
	Control int
	Param   float64
}

// Circuit holds an ordered sequence of gates over NumQubits qubits.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

func NewCircuit(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

func (c *Circuit) add(g Gate) *Circuit {
	c.Gates = append(c.Gates, g)
	if g.Target >= c.NumQubits {
		c.NumQubits = g.Target + 1
	}
	if g.Control >= c.NumQubits {
		c.NumQubits = g.Control + 1
	}
	return c
}

// Rz appends a Z-axis rotation by theta on the target qubit.
func (c *Circuit) Rz(theta float64, target int) *Circuit {
	return c.add(Gate{Name: "rz", Target: target, Control: -1, Param: theta})
}

// Rx appends an X-axis rotation by theta on the target qubit.
func (c *Circuit) Rx(theta float64, target int) *Circuit {
	return c.add(Gate{Name: "rx", Target: target, Control: -1, Param: theta})
}

// X appends a Pauli-X gate on the target qubit.
func (c *Circuit) X(target int) *Circuit {
	return c.add(Gate{Name: "x", Target: target, Control: -1})
}

// CNOT appends a controlled-NOT gate.
func (c *Circuit) CNOT(control, target int) *Circuit {
	return c.add(Gate{Name: "cx", Target: target, Control: control})
}

// Measure appends a computational-basis measurement of the target
// qubit.
func (c *Circuit) Measure(target int) *Circuit {
	return c.add(Gate{Name: "measure", Target: target, Control: -1})
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int { return len(c.Gates) }

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	return &Circuit{NumQubits: c.NumQubits, Gates: gates}
}

// Qubits returns the sorted distinct qubit indices referenced by the
// circuit's gates.
func (c *Circuit) Qubits() []int {
	seen := make(map[int]bool)
	for _, g := range c.Gates {
		seen[g.Target] = true
		if g.Control >= 0 {
			seen[g.Control] = true
		}
	}

	qubits := make([]int, 0, len(seen))
	for q := range seen {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)
	return qubits
}
