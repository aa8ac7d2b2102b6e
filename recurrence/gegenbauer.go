package recurrence

import (
	"fmt"
	"math/big"
)

// The Gegenbauer polynomials with parameter lambda > -1/2 are the Jacobi
// family at a = b = lambda - 1/2, orthogonal on [-1, 1] against
// (1-x^2)^(lambda-1/2). The constructors delegate to the Jacobi sources,
// classical scaling included, so Classical follows the symmetric Jacobi
// convention rather than the C_k^(lambda) one.

// GegenbauerFloat64 returns the Gegenbauer coefficient source with
// parameter lambda over float64.
func GegenbauerFloat64(lambda float64, std Standardization) (Float64Source, error) {
	src, err := JacobiFloat64(lambda-0.5, lambda-0.5, std)
	if err != nil {
		return nil, fmt.Errorf("cannot GegenbauerFloat64: %w", err)
	}
	return src, nil
}

// GegenbauerBig returns the Gegenbauer coefficient source with parameter
// lambda over big.Float values with prec bits of precision.
func GegenbauerBig(lambda float64, prec uint, std Standardization) (BigFloatSource, error) {
	src, err := JacobiBig(lambda-0.5, lambda-0.5, prec, std)
	if err != nil {
		return nil, fmt.Errorf("cannot GegenbauerBig: %w", err)
	}
	return src, nil
}

// GegenbauerExact returns the Gegenbauer coefficient source over exact
// rationals, for the lambda with lambda - 1/2 a non-negative integer.
func GegenbauerExact(lambda *big.Rat, std Standardization) (ExactSource, error) {
	a := new(big.Rat).Sub(lambda, big.NewRat(1, 2))
	src, err := JacobiExact(a, a, std)
	if err != nil {
		return nil, fmt.Errorf("cannot GegenbauerExact: %w", err)
	}
	return src, nil
}
