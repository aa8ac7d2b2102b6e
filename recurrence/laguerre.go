package recurrence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/specfun/orthoquad/utils/bignum"
)

// The generalized Laguerre polynomials with parameter a > -1 are orthogonal
// on [0, inf) against x^a exp(-x). The monic recurrence has
// alpha_k = 2k+a+1 and beta_k = k(k+a), with total mass Gamma(a+1). The
// plain Laguerre family is a = 0. The classical L_k^(a) has leading
// coefficient (-1)^k / k!.

type laguerreFloat64 struct {
	std Standardization
	a   float64
}

// LaguerreFloat64 returns the Laguerre coefficient source over float64.
func LaguerreFloat64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LaguerreFloat64: %w", err)
	}
	return laguerreFloat64{std: std}, nil
}

// LaguerreGeneralizedFloat64 returns the generalized Laguerre coefficient
// source with parameter a over float64.
func LaguerreGeneralizedFloat64(a float64, std Standardization) (Float64Source, error) {
	if !(a > -1) {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedFloat64: parameter a=%v must be greater than -1: %w", a, ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedFloat64: %w", err)
	}
	return laguerreFloat64{std: std, a: a}, nil
}

func (s laguerreFloat64) Standardization() Standardization { return s.std }

func (s laguerreFloat64) Alpha(k int) float64 { return 2*float64(k) + s.a + 1 }

func (s laguerreFloat64) Beta(k int) float64 {
	if k == 0 {
		return math.Gamma(s.a + 1)
	}
	return float64(k) * (float64(k) + s.a)
}

func (s laguerreFloat64) Scale(k int) float64 {
	if s.std != Classical {
		return 1
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c /= -float64(i)
	}
	return c
}

type laguerreBig struct {
	std   Standardization
	prec  uint
	a     *big.Float
	beta0 *big.Float
}

// LaguerreBig returns the Laguerre coefficient source over big.Float
// values with prec bits of precision.
func LaguerreBig(prec uint, std Standardization) (BigFloatSource, error) {
	src, err := LaguerreGeneralizedBig(0, prec, std)
	if err != nil {
		return nil, fmt.Errorf("cannot LaguerreBig: %w", err)
	}
	return src, nil
}

// LaguerreGeneralizedBig returns the generalized Laguerre coefficient
// source with parameter a over big.Float values with prec bits of
// precision. The total mass Gamma(a+1) is evaluated once, at construction.
func LaguerreGeneralizedBig(a float64, prec uint, std Standardization) (BigFloatSource, error) {
	if !(a > -1) {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedBig: parameter a=%v must be greater than -1: %w", a, ErrInvalidParameter)
	}
	if prec == 0 {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedBig: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedBig: %w", err)
	}
	af := bignum.NewFloat(a, prec)
	beta0 := bignum.Gamma(new(big.Float).Add(af, bignum.NewFloat(1, prec)), prec)
	return laguerreBig{std: std, prec: prec, a: af, beta0: beta0}, nil
}

func (s laguerreBig) Standardization() Standardization { return s.std }

func (s laguerreBig) Prec() uint { return s.prec }

func (s laguerreBig) Alpha(k int) *big.Float {
	r := bignum.NewFloat(2*k+1, s.prec)
	return r.Add(r, s.a)
}

func (s laguerreBig) Beta(k int) *big.Float {
	if k == 0 {
		return new(big.Float).Copy(s.beta0)
	}
	fk := bignum.NewFloat(k, s.prec)
	r := new(big.Float).Add(fk, s.a)
	return r.Mul(r, fk)
}

func (s laguerreBig) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical {
		return c
	}
	tmp := new(big.Float).SetPrec(s.prec)
	for i := int64(1); i <= int64(k); i++ {
		c.Quo(c, tmp.SetInt64(-i))
	}
	return c
}

type laguerreExact struct {
	std   Standardization
	a     *big.Rat
	beta0 *big.Rat
}

// LaguerreExact returns the Laguerre coefficient source over exact
// rationals.
func LaguerreExact(std Standardization) (ExactSource, error) {
	src, err := LaguerreGeneralizedExact(new(big.Rat), std)
	if err != nil {
		return nil, fmt.Errorf("cannot LaguerreExact: %w", err)
	}
	return src, nil
}

// LaguerreGeneralizedExact returns the generalized Laguerre coefficient
// source over exact rationals. The total mass Gamma(a+1) is rational only
// when a is an integer, so non-integer parameters are rejected with
// ErrDomainMismatch.
func LaguerreGeneralizedExact(a *big.Rat, std Standardization) (ExactSource, error) {
	if a.Cmp(big.NewRat(-1, 1)) <= 0 {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedExact: parameter a=%v must be greater than -1: %w", a, ErrInvalidParameter)
	}
	if !a.IsInt() {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedExact: total mass Gamma(a+1) is irrational for non-integer a=%v: %w", a, ErrDomainMismatch)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LaguerreGeneralizedExact: %w", err)
	}
	beta0 := new(big.Rat).SetInt(new(big.Int).MulRange(1, a.Num().Int64()))
	return laguerreExact{std: std, a: new(big.Rat).Set(a), beta0: beta0}, nil
}

func (s laguerreExact) Standardization() Standardization { return s.std }

func (s laguerreExact) Alpha(k int) *big.Rat {
	r := big.NewRat(2*int64(k)+1, 1)
	return r.Add(r, s.a)
}

func (s laguerreExact) Beta(k int) *big.Rat {
	if k == 0 {
		return new(big.Rat).Set(s.beta0)
	}
	fk := big.NewRat(int64(k), 1)
	r := new(big.Rat).Add(fk, s.a)
	return r.Mul(r, fk)
}

func (s laguerreExact) Scale(k int) *big.Rat {
	c := big.NewRat(1, 1)
	if s.std != Classical {
		return c
	}
	tmp := new(big.Rat)
	for i := int64(1); i <= int64(k); i++ {
		c.Quo(c, tmp.SetInt64(-i))
	}
	return c
}
