package qsubset

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBitPattern(t *testing.T) {
	Convey("Given the pattern 011 over [1, 2, 3]", t, func() {
		numbers := []int{1, 2, 3}
		b := BitPattern(3)

		Convey("It should render MSB first with qubit 0 on the right", func() {
			So(b.Format(3), ShouldEqual, "011")
			So(BitPattern(4).Format(3), ShouldEqual, "100")
			So(BitPattern(0).Format(5), ShouldEqual, "00000")
		})

		Convey("It should select the low positions", func() {
			So(b.Has(0), ShouldBeTrue)
			So(b.Has(1), ShouldBeTrue)
			So(b.Has(2), ShouldBeFalse)
			So(b.Subset(numbers), ShouldResemble, []int{1, 2})
			So(b.Sum(numbers), ShouldEqual, 3)
		})

		Convey("The empty pattern should select nothing", func() {
			So(BitPattern(0).Subset(numbers), ShouldResemble, []int{})
			So(BitPattern(0).Sum(numbers), ShouldEqual, 0)
		})
	})
}

func TestEnumerateSolutions(t *testing.T) {
	Convey("Given [1, 2, 3] with target 3", t, func() {
		solutions := EnumerateSolutions([]int{1, 2, 3}, 3)

		Convey("It should find {1, 2} and {3}", func() {
			So(solutions, ShouldResemble, []BitPattern{3, 4})
		})

		Convey("Enumerating again should give the same set", func() {
			So(EnumerateSolutions([]int{1, 2, 3}, 3), ShouldResemble, solutions)
		})
	})

	Convey("Given [1, 2, 3, 4, 5] with target 1", t, func() {
		So(EnumerateSolutions([]int{1, 2, 3, 4, 5}, 1), ShouldResemble, []BitPattern{1})
	})

	Convey("Given [2, 4] with target 1", t, func() {
		So(EnumerateSolutions([]int{2, 4}, 1), ShouldBeEmpty)
	})

	Convey("Given [0, 0] with target 0", t, func() {
		Convey("Every pattern should be a solution", func() {
			So(EnumerateSolutions([]int{0, 0}, 0), ShouldResemble, []BitPattern{0, 1, 2, 3})
		})
	})
}

func TestInstanceValidate(t *testing.T) {
	Convey("Given instances at the edges", t, func() {
		Convey("An empty list should be invalid", func() {
			err := Instance{}.Validate(20)
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
		})

		Convey("Negative numbers should be invalid", func() {
			err := Instance{Numbers: []int{1, -2}}.Validate(20)
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
		})

		Convey("Too many numbers should be invalid", func() {
			err := Instance{Numbers: make([]int, 5)}.Validate(4)
			So(errors.Is(err, ErrInvalidInstance), ShouldBeTrue)
		})

		Convey("A single number should be valid", func() {
			in := Instance{Numbers: []int{5}, Target: 5}
			So(in.Validate(20), ShouldBeNil)
			So(in.Width(), ShouldEqual, 1)
			So(in.StateSpace(), ShouldEqual, 2)
		})
	})
}
