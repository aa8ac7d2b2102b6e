package recurrence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/specfun/orthoquad/utils/bignum"
)

// The Hermite polynomials come in two conventions. The physicists' family
// is orthogonal against exp(-x^2) with beta_k = k/2 and total mass
// sqrt(Pi); the classical H_k has leading coefficient 2^k. The
// probabilists' family is orthogonal against exp(-x^2/2) with beta_k = k
// and total mass sqrt(2 Pi); the classical He_k is already monic. Both have
// alpha_k = 0. Each family also accepts its own name as an alias for the
// orthonormal standardization. The irrational masses keep Hermite out of
// the exact domain.

type hermiteFloat64 struct {
	std         Standardization
	probabilist bool
}

// HermitePhysicistFloat64 returns the physicists' Hermite coefficient
// source over float64.
func HermitePhysicistFloat64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal, Physicist); err != nil {
		return nil, fmt.Errorf("cannot HermitePhysicistFloat64: %w", err)
	}
	return hermiteFloat64{std: std}, nil
}

// HermiteProbabilistFloat64 returns the probabilists' Hermite coefficient
// source over float64.
func HermiteProbabilistFloat64(std Standardization) (Float64Source, error) {
	if err := checkStandardization(std, Monic, Classical, Orthonormal, Probabilist); err != nil {
		return nil, fmt.Errorf("cannot HermiteProbabilistFloat64: %w", err)
	}
	return hermiteFloat64{std: std, probabilist: true}, nil
}

func (s hermiteFloat64) Standardization() Standardization { return s.std }

func (s hermiteFloat64) Alpha(k int) float64 { return 0 }

func (s hermiteFloat64) Beta(k int) float64 {
	if k == 0 {
		if s.probabilist {
			return math.Sqrt(2 * math.Pi)
		}
		return math.Sqrt(math.Pi)
	}
	if s.probabilist {
		return float64(k)
	}
	return float64(k) / 2
}

func (s hermiteFloat64) Scale(k int) float64 {
	if s.std != Classical || s.probabilist {
		return 1
	}
	return math.Ldexp(1, k)
}

type hermiteBig struct {
	std         Standardization
	prec        uint
	probabilist bool
}

// HermitePhysicistBig returns the physicists' Hermite coefficient source
// over big.Float values with prec bits of precision.
func HermitePhysicistBig(prec uint, std Standardization) (BigFloatSource, error) {
	if prec == 0 {
		return nil, fmt.Errorf("cannot HermitePhysicistBig: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal, Physicist); err != nil {
		return nil, fmt.Errorf("cannot HermitePhysicistBig: %w", err)
	}
	return hermiteBig{std: std, prec: prec}, nil
}

// HermiteProbabilistBig returns the probabilists' Hermite coefficient
// source over big.Float values with prec bits of precision.
func HermiteProbabilistBig(prec uint, std Standardization) (BigFloatSource, error) {
	if prec == 0 {
		return nil, fmt.Errorf("cannot HermiteProbabilistBig: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal, Probabilist); err != nil {
		return nil, fmt.Errorf("cannot HermiteProbabilistBig: %w", err)
	}
	return hermiteBig{std: std, prec: prec, probabilist: true}, nil
}

func (s hermiteBig) Standardization() Standardization { return s.std }

func (s hermiteBig) Prec() uint { return s.prec }

func (s hermiteBig) Alpha(k int) *big.Float { return bignum.NewFloat(0, s.prec) }

func (s hermiteBig) Beta(k int) *big.Float {
	if k == 0 {
		mass := bignum.Pi(s.prec)
		if s.probabilist {
			mass.Mul(mass, bignum.NewFloat(2, s.prec))
		}
		return mass.Sqrt(mass)
	}
	fk := bignum.NewFloat(k, s.prec)
	if s.probabilist {
		return fk
	}
	return fk.Quo(fk, bignum.NewFloat(2, s.prec))
}

func (s hermiteBig) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical || s.probabilist {
		return c
	}
	return c.SetMantExp(c, k)
}

// HermitePhysicistExact is not available: the total mass sqrt(Pi) is
// irrational.
func HermitePhysicistExact(std Standardization) (ExactSource, error) {
	return nil, fmt.Errorf("cannot HermitePhysicistExact: total mass sqrt(Pi) is irrational: %w", ErrDomainMismatch)
}

// HermiteProbabilistExact is not available: the total mass sqrt(2 Pi) is
// irrational.
func HermiteProbabilistExact(std Standardization) (ExactSource, error) {
	return nil, fmt.Errorf("cannot HermiteProbabilistExact: total mass sqrt(2 Pi) is irrational: %w", ErrDomainMismatch)
}
