package recurrence

import "errors"

var (
	// ErrUnknownStandardization reports a standardization outside the enum
	// or outside the set a family supports.
	ErrUnknownStandardization = errors.New("recurrence: unknown or unsupported standardization")

	// ErrNonPositiveBeta reports a beta coefficient that is not strictly
	// positive, which makes the coefficient source malformed.
	ErrNonPositiveBeta = errors.New("recurrence: beta coefficient is not strictly positive")

	// ErrDomainMismatch reports a family whose coefficients cannot be
	// represented in the requested numeric domain.
	ErrDomainMismatch = errors.New("recurrence: coefficients are not representable in the requested domain")

	// ErrInvalidParameter reports a family parameter outside its admissible
	// range.
	ErrInvalidParameter = errors.New("recurrence: parameter out of range")
)
