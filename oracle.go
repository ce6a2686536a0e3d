package qsubset

/*
phaseFlip appends a sign flip on |1...1⟩ for a register of the given
width. One qubit uses Z, two use CZ, and wider registers conjugate a
multi-controlled X on the last qubit with Hadamards.
*/
func phaseFlip(c *Circuit, width int) {
	switch width {
	case 1:
		c.Z(0)
	case 2:
		c.CZ(0, 1)
	default:
		last := width - 1
		controls := make([]int, last)
		for i := range controls {
			controls[i] = i
		}
		c.H(last)
		c.MCX(controls, last)
		c.H(last)
	}
}

/*
OracleGates marks every solution by inverting its sign. For each solution
the zero bits are flipped to 1, the all-ones state is phase flipped, and
the flips are undone before the next solution is marked.
*/
func OracleGates(width int, solutions []BitPattern) []Gate {
	c := NewCircuit(width)

	for _, solution := range solutions {
		flipZeros(c, width, solution)
		phaseFlip(c, width)
		flipZeros(c, width, solution)
	}
	c.Barrier()

	return c.Gates
}

func flipZeros(c *Circuit, width int, solution BitPattern) {
	for q := 0; q < width; q++ {
		if !solution.Has(q) {
			c.X(q)
		}
	}
}
