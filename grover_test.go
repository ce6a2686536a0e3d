package qsubset

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

// theoreticalSuccess is sin^2((2k+1)θ) with sin θ = √(M/N).
func theoreticalSuccess(n, m, k int) float64 {
	theta := math.Asin(math.Sqrt(float64(m) / float64(n)))
	s := math.Sin(float64(2*k+1) * theta)
	return s * s
}

func TestSolverScenarios(t *testing.T) {
	Convey("Given numbers [1, 2, 3] and target 3", t, func() {
		solver, err := NewSolver([]int{1, 2, 3}, 3, WithSeed(11))
		So(err, ShouldBeNil)

		So(solver.Solutions(), ShouldResemble, []BitPattern{3, 4})
		So(solver.NumSolutions(), ShouldEqual, 2)
		So(solver.StateSpace(), ShouldEqual, 8)
		So(solver.Iterations(), ShouldEqual, 1)
		So(solver.Phase(), ShouldEqual, PhaseIdle)

		Convey("When solving with 4096 shots", func() {
			result, err := solver.Solve(4096, "")
			So(err, ShouldBeNil)

			Convey("One iteration should amplify the solutions to certainty", func() {
				So(result.Iterations, ShouldEqual, 1)
				So(solver.GroverCalls(), ShouldEqual, 1)
				So(result.SuccessProbability(), ShouldAlmostEqual, 1, 1e-9)
				So(result.Report.Accuracy(), ShouldEqual, 100.0)
				So(result.Counts.Total(), ShouldEqual, 4096)
				So(solver.Phase(), ShouldEqual, PhaseTerminal)
			})

			Convey("A second solve should keep counting grover calls", func() {
				again, err := solver.Solve(16, "")
				So(err, ShouldBeNil)
				So(solver.GroverCalls(), ShouldEqual, 2)
				So(again.Report.GroverCalls, ShouldEqual, 2)
				So(again.Report.String(), ShouldEndWith, "Grover Call 2 Times")
			})

			Convey("The circuit should replay to the same final state", func() {
				qs := NewQuantumState(3, nil)
				So(result.Circuit.Run(qs), ShouldBeNil)
				for i := range qs.Vector {
					So(real(qs.Vector[i]), ShouldAlmostEqual, real(result.State.Vector[i]), 1e-12)
				}
			})
		})
	})

	Convey("Given numbers [1, 2, 3, 4, 5] and target 1", t, func() {
		solver, err := NewSolver([]int{1, 2, 3, 4, 5}, 1, WithSeed(5))
		So(err, ShouldBeNil)

		So(solver.NumSolutions(), ShouldEqual, 1)
		So(solver.StateSpace(), ShouldEqual, 32)
		So(solver.Iterations(), ShouldEqual, 4)

		Convey("When solving with 4096 shots", func() {
			result, err := solver.Solve(4096, "")
			So(err, ShouldBeNil)

			want := theoreticalSuccess(32, 1, 4)

			Convey("The final state should match the rotation angle", func() {
				So(result.SuccessProbability(), ShouldAlmostEqual, want, 1e-9)
				So(result.State.Norm(), ShouldAlmostEqual, 1, 1e-9)
			})

			Convey("Accuracy should land near the theoretical success rate", func() {
				So(result.Report.Accuracy(), ShouldAlmostEqual, want*100, 5)
				So(solver.GroverCalls(), ShouldEqual, 4)
				So(result.Report.States[0].Pattern.Format(5), ShouldEqual, "00001")
			})
		})
	})

	Convey("Given numbers [2, 4] and target 1", t, func() {
		solver, err := NewSolver([]int{2, 4}, 1)
		So(err, ShouldBeNil)
		So(solver.NumSolutions(), ShouldEqual, 0)
		So(solver.Iterations(), ShouldEqual, 0)

		Convey("Solve should report no solution without sampling", func() {
			result, err := solver.Solve(1024, filepath.Join(t.TempDir(), "never.txt"))
			So(result, ShouldBeNil)
			So(errors.Is(err, ErrNoSolution), ShouldBeTrue)
			So(solver.GroverCalls(), ShouldEqual, 0)

			metrics := solver.Metrics().ExportMetrics()
			So(metrics["shots_drawn"], ShouldEqual, 0)
			So(metrics["failed_solves"], ShouldEqual, 1)
			So(metrics["gate_applications"], ShouldBeEmpty)
		})
	})

	Convey("Given numbers [5] and target 5", t, func() {
		solver, err := NewSolver([]int{5}, 5, WithSeed(99))
		So(err, ShouldBeNil)
		So(solver.NumSolutions(), ShouldEqual, 1)
		So(solver.StateSpace(), ShouldEqual, 2)
		So(solver.Iterations(), ShouldEqual, 1)

		Convey("The single qubit path should use Z for both phase flips", func() {
			result, err := solver.Solve(4096, "")
			So(err, ShouldBeNil)

			counts := result.Circuit.Counts()
			So(counts[GateZ], ShouldEqual, 2)
			So(counts[GateCZ], ShouldEqual, 0)
			So(counts[GateMCX], ShouldEqual, 0)

			want := theoreticalSuccess(2, 1, 1)
			So(result.SuccessProbability(), ShouldAlmostEqual, want, 1e-9)
			So(result.Report.Accuracy(), ShouldAlmostEqual, want*100, 5)
		})
	})
}

func TestSolverEdgeCases(t *testing.T) {
	Convey("Given a solver where every pattern is a solution", t, func() {
		solver, err := NewSolver([]int{0, 0}, 0, WithSeed(1))
		So(err, ShouldBeNil)
		So(solver.NumSolutions(), ShouldEqual, 4)

		Convey("The iteration count should floor to zero and sample uniformly", func() {
			So(solver.Iterations(), ShouldEqual, 0)

			result, err := solver.Solve(256, "")
			So(err, ShouldBeNil)
			So(solver.GroverCalls(), ShouldEqual, 0)
			So(result.Report.Accuracy(), ShouldEqual, 100.0)
			for _, amplitude := range result.State.Vector {
				So(real(amplitude), ShouldAlmostEqual, 0.5, 1e-12)
			}
		})
	})

	Convey("Given invalid input", t, func() {
		Convey("An empty list should be rejected at construction", func() {
			_, err := NewSolver(nil, 0)
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
		})

		Convey("A register wider than MaxQubits should be rejected", func() {
			_, err := NewSolver(make([]int, 6), 0, WithConfig(&Config{MaxQubits: 5}))
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
		})

		Convey("Non-positive shots should be rejected and leave the solver usable", func() {
			solver, err := NewSolver([]int{1, 2, 3}, 3, WithSeed(2))
			So(err, ShouldBeNil)

			_, err = solver.Solve(0, "")
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
			_, err = solver.Solve(-3, "")
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
			So(solver.GroverCalls(), ShouldEqual, 0)

			result, err := solver.Solve(8, "")
			So(err, ShouldBeNil)
			So(result.Counts.Total(), ShouldEqual, 8)
		})
	})

	Convey("Given an unwritable report path", t, func() {
		solver, err := NewSolver([]int{1, 2, 3}, 3, WithSeed(4))
		So(err, ShouldBeNil)

		Convey("The result should still come back with ErrWriteReport", func() {
			result, err := solver.Solve(64, filepath.Join(t.TempDir(), "nope", "out.txt"))
			So(errors.Is(err, ErrWriteReport), ShouldBeTrue)
			So(result, ShouldNotBeNil)
			So(result.Report.Shots, ShouldEqual, 64)
		})
	})

	Convey("Given two solvers with the same seed", t, func() {
		a, err := NewSolver([]int{3, 1, 4, 1, 5}, 5, WithSeed(21))
		So(err, ShouldBeNil)
		b, err := NewSolver([]int{3, 1, 4, 1, 5}, 5, WithSeed(21))
		So(err, ShouldBeNil)

		Convey("They should produce identical reports", func() {
			ra, err := a.Solve(1024, "")
			So(err, ShouldBeNil)
			rb, err := b.Solve(1024, "")
			So(err, ShouldBeNil)
			So(ra.Report.String(), ShouldEqual, rb.Report.String())
			dump := spew.ConfigState{Indent: " ", SortKeys: true}
			So(dump.Sdump(ra.Counts), ShouldEqual, dump.Sdump(rb.Counts))
		})
	})
}

func TestSolverMetrics(t *testing.T) {
	Convey("Given a solver after one solve", t, func() {
		solver, err := NewSolver([]int{1, 2, 3, 4, 5}, 1, WithSeed(8))
		So(err, ShouldBeNil)
		result, err := solver.Solve(100, "")
		So(err, ShouldBeNil)

		metrics := solver.Metrics().ExportMetrics()

		Convey("Counters should reflect the work done", func() {
			So(metrics["solves"], ShouldEqual, 1)
			So(metrics["grover_calls"], ShouldEqual, 4)
			So(metrics["shots_drawn"], ShouldEqual, 100)

			gates := metrics["gate_applications"].(map[string]int)
			counts := result.Circuit.Counts()
			So(gates["h"], ShouldEqual, counts[GateH])
			So(gates["mcx"], ShouldEqual, 8)
		})
	})
}
