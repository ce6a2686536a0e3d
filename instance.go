package qsubset

import (
	"fmt"
	"strconv"
	"strings"
)

/*
BitPattern selects a subset of an Instance's numbers. Bit j, counted from
the least significant end, includes Numbers[j]. It doubles as the basis
state index in the amplitude vector.
*/
type BitPattern uint64

// Has reports whether position j is set.
func (b BitPattern) Has(j int) bool {
	return b&(1<<uint(j)) != 0
}

/*
Format renders the pattern MSB first, zero padded to width, so that qubit 0
is the rightmost character.
*/
func (b BitPattern) Format(width int) string {
	s := strconv.FormatUint(uint64(b), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Subset returns the numbers selected by b, in their original order.
func (b BitPattern) Subset(numbers []int) []int {
	subset := make([]int, 0, len(numbers))
	for j, v := range numbers {
		if b.Has(j) {
			subset = append(subset, v)
		}
	}
	return subset
}

// Sum is the total of the numbers selected by b.
func (b BitPattern) Sum(numbers []int) int {
	total := 0
	for j, v := range numbers {
		if b.Has(j) {
			total += v
		}
	}
	return total
}

// Instance is one subset-sum problem.
type Instance struct {
	Numbers []int `yaml:"numbers"`
	Target  int   `yaml:"target"`
}

// Width is the register width n.
func (in Instance) Width() int {
	return len(in.Numbers)
}

// StateSpace is N = 2^n.
func (in Instance) StateSpace() int {
	return 1 << uint(len(in.Numbers))
}

/*
Validate rejects instances the simulator cannot represent: an empty list,
negative numbers, or more positions than maxQubits allows.
*/
func (in Instance) Validate(maxQubits int) error {
	if len(in.Numbers) == 0 {
		return fmt.Errorf("%w: numbers must not be empty", ErrInvalidInstance)
	}
	if maxQubits > 0 && len(in.Numbers) > maxQubits {
		return fmt.Errorf(
			"%w: %d numbers exceed the %d qubit limit",
			ErrInvalidInstance, len(in.Numbers), maxQubits,
		)
	}
	for j, v := range in.Numbers {
		if v < 0 {
			return fmt.Errorf("%w: numbers[%d] = %d is negative", ErrInvalidInstance, j, v)
		}
	}
	return nil
}

/*
EnumerateSolutions walks all 2^n patterns and keeps, in ascending order, the
ones whose subset sums to target.
*/
func EnumerateSolutions(numbers []int, target int) []BitPattern {
	solutions := make([]BitPattern, 0)
	for b := BitPattern(0); b < BitPattern(1)<<uint(len(numbers)); b++ {
		if b.Sum(numbers) == target {
			solutions = append(solutions, b)
		}
	}
	return solutions
}

// formatList prints ints as [a, b, c].
func formatList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
