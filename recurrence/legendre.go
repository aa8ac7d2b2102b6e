package recurrence

import (
	"fmt"
	"math/big"

	"github.com/specfun/orthoquad/utils/bignum"
)

// The Legendre polynomials are orthogonal on [-1, 1] against the constant
// weight 1. The monic recurrence has alpha_k = 0 and beta_k = k^2/(4k^2-1),
// with total mass beta_0 = 2. The classical P_k has leading coefficient
// prod_{i=1..k} (2i-1)/i.

type legendreFloat64 struct {
	std Standardization
}

// LegendreFloat64 returns the Legendre coefficient source over float64.
func LegendreFloat64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LegendreFloat64: %w", err)
	}
	return legendreFloat64{std: std}, nil
}

func (s legendreFloat64) Standardization() Standardization { return s.std }

func (s legendreFloat64) Alpha(k int) float64 { return 0 }

func (s legendreFloat64) Beta(k int) float64 {
	if k == 0 {
		return 2
	}
	kk := float64(k) * float64(k)
	return kk / (4*kk - 1)
}

func (s legendreFloat64) Scale(k int) float64 {
	if s.std != Classical {
		return 1
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c *= (2*float64(i) - 1) / float64(i)
	}
	return c
}

type legendreBig struct {
	std  Standardization
	prec uint
}

// LegendreBig returns the Legendre coefficient source over big.Float values
// with prec bits of precision.
func LegendreBig(prec uint, std Standardization) (BigFloatSource, error) {
	if prec == 0 {
		return nil, fmt.Errorf("cannot LegendreBig: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LegendreBig: %w", err)
	}
	return legendreBig{std: std, prec: prec}, nil
}

func (s legendreBig) Standardization() Standardization { return s.std }

func (s legendreBig) Prec() uint { return s.prec }

func (s legendreBig) Alpha(k int) *big.Float { return bignum.NewFloat(0, s.prec) }

func (s legendreBig) Beta(k int) *big.Float {
	if k == 0 {
		return bignum.NewFloat(2, s.prec)
	}
	kk := int64(k) * int64(k)
	num := bignum.NewFloat(kk, s.prec)
	return num.Quo(num, bignum.NewFloat(4*kk-1, s.prec))
}

func (s legendreBig) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical {
		return c
	}
	tmp := new(big.Float).SetPrec(s.prec)
	for i := int64(1); i <= int64(k); i++ {
		c.Mul(c, tmp.SetInt64(2*i-1))
		c.Quo(c, tmp.SetInt64(i))
	}
	return c
}

type legendreExact struct {
	std Standardization
}

// LegendreExact returns the Legendre coefficient source over exact
// rationals.
func LegendreExact(std Standardization) (ExactSource, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot LegendreExact: %w", err)
	}
	return legendreExact{std: std}, nil
}

func (s legendreExact) Standardization() Standardization { return s.std }

func (s legendreExact) Alpha(k int) *big.Rat { return new(big.Rat) }

func (s legendreExact) Beta(k int) *big.Rat {
	if k == 0 {
		return big.NewRat(2, 1)
	}
	kk := int64(k) * int64(k)
	return big.NewRat(kk, 4*kk-1)
}

func (s legendreExact) Scale(k int) *big.Rat {
	c := big.NewRat(1, 1)
	if s.std != Classical {
		return c
	}
	tmp := new(big.Rat)
	for i := int64(1); i <= int64(k); i++ {
		c.Mul(c, tmp.SetFrac64(2*i-1, i))
	}
	return c
}
