package qsubset

import "errors"

var (
	// ErrNoSolution means no subset reaches the target, so there is
	// nothing for the oracle to mark. It is a property of the instance.
	ErrNoSolution = errors.New("no subset sums to the target")

	// ErrInvalidInstance covers inputs rejected before any simulation:
	// an empty or oversized register, negative numbers, or shots <= 0.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrWriteReport wraps a failed report-file write. The Result that
	// comes back alongside it is still complete.
	ErrWriteReport = errors.New("cannot write report")
)
