package quadrature

import "errors"

var (
	// ErrInvalidOrder reports a requested rule order below one.
	ErrInvalidOrder = errors.New("quadrature: rule order must be at least 1")

	// ErrUnsupportedBackend reports a backend value outside the enum or a
	// family and backend combination that does not exist.
	ErrUnsupportedBackend = errors.New("quadrature: unsupported backend")

	// ErrNoConvergence reports an eigenvalue iteration that exceeded its
	// iteration budget. With valid recurrence coefficients this does not
	// happen in practice.
	ErrNoConvergence = errors.New("quadrature: eigenvalue iteration did not converge")

	// ErrDegenerateSpectrum reports a Jacobi matrix with a repeated
	// eigenvalue, which a valid positive measure cannot produce.
	ErrDegenerateSpectrum = errors.New("quadrature: characteristic polynomial has a repeated root")

	// ErrPrecisionUnderflow reports a precision request that the inputs
	// cannot honor, either because the digit count is out of range or
	// because the coefficient source carries fewer bits than the rule
	// needs.
	ErrPrecisionUnderflow = errors.New("quadrature: insufficient precision")
)
