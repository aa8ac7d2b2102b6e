// Package recurrence provides the three-term recurrence coefficients of the
// classical orthogonal polynomial families, in IEEE double, arbitrary and
// exact rational precision.
//
// Every family is described through its monic recurrence
//
//	p_{-1}(x) = 0, p_0(x) = 1, p_{k+1}(x) = (x - alpha_k) p_k(x) - beta_k p_{k-1}(x),
//
// where Beta(0) holds the total mass of the weight function. The mass
// normalizes evaluators and quadrature weights but never enters the
// recurrence itself. All beta values, the mass included, are strictly
// positive for a valid measure; the Take helpers enforce this when
// coefficients are materialized.
package recurrence

import (
	"fmt"
	"math/big"
)

// Float64Source provides recurrence coefficients in IEEE double precision.
// Implementations are immutable and safe for concurrent use.
type Float64Source interface {
	// Standardization returns the standardization the source was built for.
	Standardization() Standardization
	// Alpha returns the recurrence coefficient alpha_k.
	Alpha(k int) float64
	// Beta returns the recurrence coefficient beta_k. Beta(0) is the total
	// mass of the weight function.
	Beta(k int) float64
	// Scale returns the constant relating the degree-k polynomial of the
	// classical standardization to the monic one. It is 1 for every other
	// standardization.
	Scale(k int) float64
}

// BigFloatSource provides recurrence coefficients as big.Float values at a
// precision fixed at construction. Implementations are immutable and safe
// for concurrent use, and return a fresh value on every call.
type BigFloatSource interface {
	Standardization() Standardization
	// Prec returns the precision, in mantissa bits, of all returned values.
	Prec() uint
	Alpha(k int) *big.Float
	Beta(k int) *big.Float
	Scale(k int) *big.Float
}

// ExactSource provides recurrence coefficients as exact rationals, for the
// families whose coefficients and mass are rational. Implementations are
// immutable and safe for concurrent use, and return a fresh value on every
// call.
type ExactSource interface {
	Standardization() Standardization
	Alpha(k int) *big.Rat
	Beta(k int) *big.Rat
	Scale(k int) *big.Rat
}

// TakeFloat64 materializes the first n alpha and beta coefficients of src.
// It returns ErrNonPositiveBeta if any beta, the mass included, is zero,
// negative or NaN.
func TakeFloat64(src Float64Source, n int) (alpha, beta []float64, err error) {
	alpha = make([]float64, n)
	beta = make([]float64, n)
	for k := 0; k < n; k++ {
		alpha[k] = src.Alpha(k)
		if beta[k] = src.Beta(k); !(beta[k] > 0) {
			return nil, nil, fmt.Errorf("beta[%d]=%v: %w", k, beta[k], ErrNonPositiveBeta)
		}
	}
	return
}

// TakeBigFloat materializes the first n alpha and beta coefficients of src.
// It returns ErrNonPositiveBeta if any beta, the mass included, is not
// strictly positive.
func TakeBigFloat(src BigFloatSource, n int) (alpha, beta []*big.Float, err error) {
	alpha = make([]*big.Float, n)
	beta = make([]*big.Float, n)
	for k := 0; k < n; k++ {
		alpha[k] = src.Alpha(k)
		if beta[k] = src.Beta(k); beta[k].Sign() <= 0 {
			return nil, nil, fmt.Errorf("beta[%d]=%v: %w", k, beta[k], ErrNonPositiveBeta)
		}
	}
	return
}

// TakeExact materializes the first n alpha and beta coefficients of src.
// It returns ErrNonPositiveBeta if any beta, the mass included, is not
// strictly positive.
func TakeExact(src ExactSource, n int) (alpha, beta []*big.Rat, err error) {
	alpha = make([]*big.Rat, n)
	beta = make([]*big.Rat, n)
	for k := 0; k < n; k++ {
		alpha[k] = src.Alpha(k)
		if beta[k] = src.Beta(k); beta[k].Sign() <= 0 {
			return nil, nil, fmt.Errorf("beta[%d]=%v: %w", k, beta[k], ErrNonPositiveBeta)
		}
	}
	return
}
