package qsubset

import (
	"fmt"
	"strings"
)

// GateKind names the elementary operations the simulator understands.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateZ
	GateCZ
	GateMCX
	GateBarrier
)

func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateZ:
		return "z"
	case GateCZ:
		return "cz"
	case GateMCX:
		return "mcx"
	case GateBarrier:
		return "barrier"
	default:
		return fmt.Sprintf("gate(%d)", int(k))
	}
}

// Gate is one operation. Controls is empty for single-qubit gates.
type Gate struct {
	Kind     GateKind
	Controls []int
	Target   int
}

func (g Gate) qubits() []int {
	if g.Kind == GateBarrier {
		return nil
	}
	return append(append([]int(nil), g.Controls...), g.Target)
}

/*
Circuit is the ordered gate list of a solve. It can be replayed against a
fresh register with Run and printed as OpenQASM 2.0.
*/
type Circuit struct {
	Width int
	Gates []Gate
}

func NewCircuit(width int) *Circuit {
	return &Circuit{
		Width: width,
		Gates: make([]Gate, 0),
	}
}

func (c *Circuit) H(q int) *Circuit {
	return c.add(Gate{Kind: GateH, Target: q})
}

func (c *Circuit) X(q int) *Circuit {
	return c.add(Gate{Kind: GateX, Target: q})
}

func (c *Circuit) Z(q int) *Circuit {
	return c.add(Gate{Kind: GateZ, Target: q})
}

func (c *Circuit) CZ(control, target int) *Circuit {
	return c.add(Gate{Kind: GateCZ, Controls: []int{control}, Target: target})
}

func (c *Circuit) MCX(controls []int, target int) *Circuit {
	return c.add(Gate{
		Kind:     GateMCX,
		Controls: append([]int(nil), controls...),
		Target:   target,
	})
}

func (c *Circuit) Barrier() *Circuit {
	return c.add(Gate{Kind: GateBarrier})
}

// Append copies gates onto the end of the circuit.
func (c *Circuit) Append(gates ...Gate) *Circuit {
	c.Gates = append(c.Gates, gates...)
	return c
}

func (c *Circuit) add(g Gate) *Circuit {
	c.Gates = append(c.Gates, g)
	return c
}

// Len counts gates, barriers excluded.
func (c *Circuit) Len() int {
	n := 0
	for _, g := range c.Gates {
		if g.Kind != GateBarrier {
			n++
		}
	}
	return n
}

// Counts tallies gates by kind, barriers excluded.
func (c *Circuit) Counts() map[GateKind]int {
	counts := make(map[GateKind]int)
	for _, g := range c.Gates {
		if g.Kind != GateBarrier {
			counts[g.Kind]++
		}
	}
	return counts
}

// Run applies every gate to qs in order.
func (c *Circuit) Run(qs *QuantumState) error {
	return applyGates(qs, c.Gates)
}

func applyGates(qs *QuantumState, gates []Gate) error {
	for i, g := range gates {
		if err := qs.Apply(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

/*
QASM renders the circuit as OpenQASM 2.0 with a trailing measurement of
every qubit. Multi-controlled X has no qelib1 primitive, so it is written
as a custom mcx call with the controls first.
*/
func (c *Circuit) QASM() string {
	var circuit strings.Builder

	circuit.WriteString("OPENQASM 2.0;\n")
	circuit.WriteString("include \"qelib1.inc\";\n")
	circuit.WriteString("\n")
	fmt.Fprintf(&circuit, "qreg q[%d];\n", c.Width)
	fmt.Fprintf(&circuit, "creg c[%d];\n", c.Width)
	circuit.WriteString("\n")

	for _, g := range c.Gates {
		switch g.Kind {
		case GateBarrier:
			circuit.WriteString("barrier q;\n")
		default:
			operands := make([]string, 0, len(g.Controls)+1)
			for _, q := range g.qubits() {
				operands = append(operands, fmt.Sprintf("q[%d]", q))
			}
			fmt.Fprintf(&circuit, "%s %s;\n", g.Kind, strings.Join(operands, ","))
		}
	}

	circuit.WriteString("\n")
	for q := 0; q < c.Width; q++ {
		fmt.Fprintf(&circuit, "measure q[%d] -> c[%d];\n", q, q)
	}

	return circuit.String()
}
