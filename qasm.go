package qmitigate

import (
	"fmt"
	"strings"
)

// ToQASM renders the circuit as OpenQASM 2.0.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.NumQubits)

	for _, g := range c.Gates {
		switch {
		case g.Name == "measure":
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Target)
		case g.Control >= 0:
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", g.Name, g.Control, g.Target)
		case g.Name == "rz" || g.Name == "rx":
			fmt.Fprintf(&sb, "%s(%g) q[%d];\n", g.Name, g.Param, g.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Name, g.Target)
		}
	}

	return sb.String()
}
