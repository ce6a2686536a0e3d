package qsubset

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
)

/*
QuantumState is a dense state vector over Width qubits. Vector[i] is the
amplitude of basis state i, where bit j of i is qubit j.
*/
type QuantumState struct {
	Vector []complex128
	Width  int

	workers   int
	threshold int
}

// NewQuantumState returns |0...0⟩ on width qubits.
func NewQuantumState(width int, config *Config) *QuantumState {
	config = config.withDefaults()

	vector := make([]complex128, 1<<uint(width))
	vector[0] = 1

	return &QuantumState{
		Vector:    vector,
		Width:     width,
		workers:   config.Workers,
		threshold: config.ParallelThreshold,
	}
}

// Apply runs a single gate against the vector.
func (qs *QuantumState) Apply(g Gate) error {
	for _, q := range g.qubits() {
		if q < 0 || q >= qs.Width {
			return fmt.Errorf("%s: qubit %d outside register of width %d", g.Kind, q, qs.Width)
		}
	}

	if g.Kind == GateCZ && len(g.Controls) != 1 {
		return fmt.Errorf("cz needs exactly one control, got %d", len(g.Controls))
	}

	switch g.Kind {
	case GateH:
		qs.applyHadamard(g.Target)
	case GateX:
		qs.applyX(g.Target)
	case GateZ:
		qs.applyZ(g.Target)
	case GateCZ:
		qs.applyCZ(g.Controls[0], g.Target)
	case GateMCX:
		qs.applyMCX(g.Controls, g.Target)
	case GateBarrier:
	default:
		return fmt.Errorf("unknown gate kind %d", g.Kind)
	}
	return nil
}

// Probabilities returns |amplitude|^2 per basis state, normalised to 1.
func (qs *QuantumState) Probabilities() []float64 {
	probs := make([]float64, len(qs.Vector))
	total := 0.0
	for i, amplitude := range qs.Vector {
		prob := cmplx.Abs(amplitude)
		prob *= prob
		probs[i] = prob
		total += prob
	}

	if total == 0 {
		for i := range probs {
			probs[i] = 1 / float64(len(probs))
		}
		return probs
	}

	for i := range probs {
		probs[i] /= total
	}
	return probs
}

// Norm is the squared length of the vector, 1 for any valid state.
func (qs *QuantumState) Norm() float64 {
	total := 0.0
	for _, amplitude := range qs.Vector {
		total += real(amplitude * cmplx.Conj(amplitude))
	}
	return total
}

func (qs *QuantumState) applyHadamard(q int) {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << uint(q)
	qs.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&bit == 0 {
				j := i | bit
				alpha, beta := qs.Vector[i], qs.Vector[j]
				qs.Vector[i] = h * (alpha + beta)
				qs.Vector[j] = h * (alpha - beta)
			}
		}
	})
}

func (qs *QuantumState) applyX(q int) {
	bit := 1 << uint(q)
	qs.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&bit == 0 {
				j := i | bit
				qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
			}
		}
	})
}

func (qs *QuantumState) applyZ(q int) {
	bit := 1 << uint(q)
	qs.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&bit != 0 {
				qs.Vector[i] = -qs.Vector[i]
			}
		}
	})
}

func (qs *QuantumState) applyCZ(control, target int) {
	mask := 1<<uint(control) | 1<<uint(target)
	qs.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask == mask {
				qs.Vector[i] = -qs.Vector[i]
			}
		}
	})
}

// applyMCX flips target wherever every control is 1.
func (qs *QuantumState) applyMCX(controls []int, target int) {
	mask := 0
	for _, c := range controls {
		mask |= 1 << uint(c)
	}
	bit := 1 << uint(target)
	qs.parallel(func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i&mask == mask && i&bit == 0 {
				j := i | bit
				qs.Vector[i], qs.Vector[j] = qs.Vector[j], qs.Vector[i]
			}
		}
	})
}

/*
parallel splits [0, len(Vector)) into contiguous chunks. Kernels only touch
pair (i, i|bit) from the chunk that owns i, so no two goroutines write the
same amplitude.
*/
func (qs *QuantumState) parallel(fn func(lo, hi int)) {
	n := len(qs.Vector)
	if qs.workers <= 1 || n < qs.threshold {
		fn(0, n)
		return
	}

	chunk := (n + qs.workers - 1) / qs.workers

	var g errgroup.Group
	g.SetLimit(qs.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
