package basis

import "errors"

var (
	// ErrLengthMismatch reports slices whose lengths are inconsistent with
	// each other or with the requested operation.
	ErrLengthMismatch = errors.New("basis: slice lengths are inconsistent")

	// ErrAxisCountMismatch reports a coordinate batch whose axis count does
	// not match the dimension of a product evaluator.
	ErrAxisCountMismatch = errors.New("basis: coordinate axis count does not match dimension")

	// ErrNonPositiveMass reports a product measure mass that is not
	// strictly positive.
	ErrNonPositiveMass = errors.New("basis: total mass is not strictly positive")
)
