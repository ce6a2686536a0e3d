package qsubset

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given a small circuit", t, func() {
		c := NewCircuit(3)
		c.H(0).H(1).H(2).Barrier().MCX([]int{0, 1}, 2).CZ(0, 1).Z(2).X(0)

		Convey("Len and Counts should skip the barrier", func() {
			So(c.Len(), ShouldEqual, 7)
			So(c.Counts(), ShouldResemble, map[GateKind]int{
				GateH: 3, GateMCX: 1, GateCZ: 1, GateZ: 1, GateX: 1,
			})
		})

		Convey("QASM should declare the registers and measure every qubit", func() {
			qasm := c.QASM()
			So(qasm, ShouldStartWith, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\n")
			So(qasm, ShouldContainSubstring, "qreg q[3];\ncreg c[3];\n")
			So(qasm, ShouldContainSubstring, "h q[2];\nbarrier q;\nmcx q[0],q[1],q[2];\ncz q[0],q[1];\n")
			So(strings.Count(qasm, "measure "), ShouldEqual, 3)
			So(qasm, ShouldEndWith, "measure q[2] -> c[2];\n")
		})

		Convey("Run should replay the gates onto a register", func() {
			qs := NewQuantumState(3, nil)
			So(c.Run(qs), ShouldBeNil)
			So(qs.Norm(), ShouldAlmostEqual, 1, 1e-12)
		})

		Convey("Run should fail on a narrower register", func() {
			So(c.Run(NewQuantumState(2, nil)), ShouldNotBeNil)
		})
	})
}
