package qsubset

/*
DiffusionGates inverts every amplitude about the mean: H and X on all
qubits, a phase flip of the all-ones state (which is |0...0⟩ before the
flips), then X and H again.
*/
func DiffusionGates(width int) []Gate {
	c := NewCircuit(width)

	for q := 0; q < width; q++ {
		c.H(q)
	}
	for q := 0; q < width; q++ {
		c.X(q)
	}

	phaseFlip(c, width)

	for q := 0; q < width; q++ {
		c.X(q)
	}
	for q := 0; q < width; q++ {
		c.H(q)
	}
	c.Barrier()

	return c.Gates
}
