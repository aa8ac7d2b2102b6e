package recurrence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/specfun/orthoquad/utils/bignum"
)

// The Chebyshev polynomials of the first kind are orthogonal on [-1, 1]
// against 1/sqrt(1-x^2), those of the second kind against sqrt(1-x^2).
// Both monic recurrences have alpha_k = 0 and beta_k = 1/4, except
// beta_1 = 1/2 for the first kind. The total masses Pi and Pi/2 are
// irrational, which keeps both families out of the exact domain.

type chebyshev1Float64 struct {
	std Standardization
}

// Chebyshev1Float64 returns the first-kind Chebyshev coefficient source
// over float64.
func Chebyshev1Float64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot Chebyshev1Float64: %w", err)
	}
	return chebyshev1Float64{std: std}, nil
}

func (s chebyshev1Float64) Standardization() Standardization { return s.std }

func (s chebyshev1Float64) Alpha(k int) float64 { return 0 }

func (s chebyshev1Float64) Beta(k int) float64 {
	switch k {
	case 0:
		return math.Pi
	case 1:
		return 0.5
	default:
		return 0.25
	}
}

func (s chebyshev1Float64) Scale(k int) float64 {
	if s.std != Classical || k == 0 {
		return 1
	}
	// T_k has leading coefficient 2^(k-1)
	return math.Ldexp(1, k-1)
}

type chebyshev1Big struct {
	std  Standardization
	prec uint
}

// Chebyshev1Big returns the first-kind Chebyshev coefficient source over
// big.Float values with prec bits of precision.
func Chebyshev1Big(prec uint, std Standardization) (BigFloatSource, error) {
	if prec == 0 {
		return nil, fmt.Errorf("cannot Chebyshev1Big: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot Chebyshev1Big: %w", err)
	}
	return chebyshev1Big{std: std, prec: prec}, nil
}

func (s chebyshev1Big) Standardization() Standardization { return s.std }

func (s chebyshev1Big) Prec() uint { return s.prec }

func (s chebyshev1Big) Alpha(k int) *big.Float { return bignum.NewFloat(0, s.prec) }

func (s chebyshev1Big) Beta(k int) *big.Float {
	switch k {
	case 0:
		return bignum.Pi(s.prec)
	case 1:
		return bignum.NewFloat(0.5, s.prec)
	default:
		return bignum.NewFloat(0.25, s.prec)
	}
}

func (s chebyshev1Big) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical || k == 0 {
		return c
	}
	return c.SetMantExp(c, k-1)
}

// Chebyshev1Exact is not available: the total mass Pi is irrational.
func Chebyshev1Exact(std Standardization) (ExactSource, error) {
	return nil, fmt.Errorf("cannot Chebyshev1Exact: total mass Pi is irrational: %w", ErrDomainMismatch)
}

type chebyshev2Float64 struct {
	std Standardization
}

// Chebyshev2Float64 returns the second-kind Chebyshev coefficient source
// over float64.
func Chebyshev2Float64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot Chebyshev2Float64: %w", err)
	}
	return chebyshev2Float64{std: std}, nil
}

func (s chebyshev2Float64) Standardization() Standardization { return s.std }

func (s chebyshev2Float64) Alpha(k int) float64 { return 0 }

func (s chebyshev2Float64) Beta(k int) float64 {
	if k == 0 {
		return math.Pi / 2
	}
	return 0.25
}

func (s chebyshev2Float64) Scale(k int) float64 {
	if s.std != Classical {
		return 1
	}
	// U_k has leading coefficient 2^k
	return math.Ldexp(1, k)
}

type chebyshev2Big struct {
	std  Standardization
	prec uint
}

// Chebyshev2Big returns the second-kind Chebyshev coefficient source over
// big.Float values with prec bits of precision.
func Chebyshev2Big(prec uint, std Standardization) (BigFloatSource, error) {
	if prec == 0 {
		return nil, fmt.Errorf("cannot Chebyshev2Big: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot Chebyshev2Big: %w", err)
	}
	return chebyshev2Big{std: std, prec: prec}, nil
}

func (s chebyshev2Big) Standardization() Standardization { return s.std }

func (s chebyshev2Big) Prec() uint { return s.prec }

func (s chebyshev2Big) Alpha(k int) *big.Float { return bignum.NewFloat(0, s.prec) }

func (s chebyshev2Big) Beta(k int) *big.Float {
	if k == 0 {
		pi := bignum.Pi(s.prec)
		return pi.Quo(pi, bignum.NewFloat(2, s.prec))
	}
	return bignum.NewFloat(0.25, s.prec)
}

func (s chebyshev2Big) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical {
		return c
	}
	return c.SetMantExp(c, k)
}

// Chebyshev2Exact is not available: the total mass Pi/2 is irrational.
func Chebyshev2Exact(std Standardization) (ExactSource, error) {
	return nil, fmt.Errorf("cannot Chebyshev2Exact: total mass Pi/2 is irrational: %w", ErrDomainMismatch)
}
