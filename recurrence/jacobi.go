package recurrence

import (
	"fmt"
	"math"
	"math/big"

	"github.com/specfun/orthoquad/utils/bignum"
)

// The Jacobi polynomials with parameters a, b > -1 are orthogonal on
// [-1, 1] against (1-x)^a (1+x)^b. With q = 2k+a+b, the monic recurrence
// reads
//
//	alpha_0 = (b-a)/(a+b+2)
//	alpha_k = (b^2-a^2) / (q(q+2))
//	beta_1  = 4(a+1)(b+1) / ((a+b+2)^2 (a+b+3))
//	beta_k  = 4k(k+a)(k+b)(k+a+b) / (q^2 (q+1)(q-1))
//
// and the total mass is beta_0 = 2^(a+b+1) Gamma(a+1) Gamma(b+1) /
// Gamma(a+b+2). The alpha_0 and beta_1 cases are the general formulas after
// cancellation; spelling them out avoids 0/0 at a+b = 0 and a+b = -1.
// The classical P_k^(a,b) has leading coefficient
// prod_{i=1..k} (k+a+b+i)/(2i).

type jacobiFloat64 struct {
	std  Standardization
	a, b float64
}

// JacobiFloat64 returns the Jacobi coefficient source with parameters a
// and b over float64.
func JacobiFloat64(a, b float64, std Standardization) (Float64Source, error) {
	if !(a > -1) || !(b > -1) {
		return nil, fmt.Errorf("cannot JacobiFloat64: parameters a=%v, b=%v must be greater than -1: %w", a, b, ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot JacobiFloat64: %w", err)
	}
	return jacobiFloat64{std: std, a: a, b: b}, nil
}

func (s jacobiFloat64) Standardization() Standardization { return s.std }

func (s jacobiFloat64) Alpha(k int) float64 {
	a, b := s.a, s.b
	if k == 0 {
		return (b - a) / (a + b + 2)
	}
	q := 2*float64(k) + a + b
	return (b*b - a*a) / (q * (q + 2))
}

func (s jacobiFloat64) Beta(k int) float64 {
	a, b := s.a, s.b
	switch k {
	case 0:
		return math.Pow(2, a+b+1) * math.Gamma(a+1) * math.Gamma(b+1) / math.Gamma(a+b+2)
	case 1:
		return 4 * (a + 1) * (b + 1) / ((a + b + 2) * (a + b + 2) * (a + b + 3))
	default:
		fk := float64(k)
		q := 2*fk + a + b
		return 4 * fk * (fk + a) * (fk + b) * (fk + a + b) / (q * q * (q + 1) * (q - 1))
	}
}

func (s jacobiFloat64) Scale(k int) float64 {
	if s.std != Classical {
		return 1
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c *= (float64(k) + s.a + s.b + float64(i)) / (2 * float64(i))
	}
	return c
}

type jacobiBig struct {
	std   Standardization
	prec  uint
	a, b  *big.Float
	beta0 *big.Float
}

// JacobiBig returns the Jacobi coefficient source with parameters a and b
// over big.Float values with prec bits of precision. The total mass is
// evaluated once, at construction, through the Gamma function.
func JacobiBig(a, b float64, prec uint, std Standardization) (BigFloatSource, error) {
	if !(a > -1) || !(b > -1) {
		return nil, fmt.Errorf("cannot JacobiBig: parameters a=%v, b=%v must be greater than -1: %w", a, b, ErrInvalidParameter)
	}
	if prec == 0 {
		return nil, fmt.Errorf("cannot JacobiBig: precision must be at least one bit: %w", ErrInvalidParameter)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot JacobiBig: %w", err)
	}

	af := bignum.NewFloat(a, prec)
	bf := bignum.NewFloat(b, prec)
	one := bignum.NewFloat(1, prec)

	ab1 := new(big.Float).Add(af, bf)
	ab1.Add(ab1, one)
	beta0 := bignum.Pow(bignum.NewFloat(2, prec), ab1)
	beta0.Mul(beta0, bignum.Gamma(new(big.Float).Add(af, one), prec))
	beta0.Mul(beta0, bignum.Gamma(new(big.Float).Add(bf, one), prec))
	beta0.Quo(beta0, bignum.Gamma(new(big.Float).Add(ab1, one), prec))

	return jacobiBig{std: std, prec: prec, a: af, b: bf, beta0: beta0}, nil
}

func (s jacobiBig) Standardization() Standardization { return s.std }

func (s jacobiBig) Prec() uint { return s.prec }

func (s jacobiBig) Alpha(k int) *big.Float {
	num := new(big.Float).Sub(s.b, s.a)
	if k == 0 {
		den := new(big.Float).Add(s.a, s.b)
		den.Add(den, bignum.NewFloat(2, s.prec))
		return num.Quo(num, den)
	}
	num.Mul(num, new(big.Float).Add(s.a, s.b))
	q := new(big.Float).Add(s.a, s.b)
	q.Add(q, bignum.NewFloat(2*k, s.prec))
	den := new(big.Float).Add(q, bignum.NewFloat(2, s.prec))
	den.Mul(den, q)
	return num.Quo(num, den)
}

func (s jacobiBig) Beta(k int) *big.Float {
	switch k {
	case 0:
		return new(big.Float).Copy(s.beta0)
	case 1:
		one := bignum.NewFloat(1, s.prec)
		num := new(big.Float).Add(s.a, one)
		num.Mul(num, new(big.Float).Add(s.b, one))
		num.Mul(num, bignum.NewFloat(4, s.prec))
		ab2 := new(big.Float).Add(s.a, s.b)
		ab2.Add(ab2, bignum.NewFloat(2, s.prec))
		den := new(big.Float).Mul(ab2, ab2)
		den.Mul(den, new(big.Float).Add(ab2, one))
		return num.Quo(num, den)
	default:
		fk := bignum.NewFloat(k, s.prec)
		num := bignum.NewFloat(4, s.prec)
		num.Mul(num, fk)
		num.Mul(num, new(big.Float).Add(fk, s.a))
		num.Mul(num, new(big.Float).Add(fk, s.b))
		kab := new(big.Float).Add(s.a, s.b)
		kab.Add(kab, fk)
		num.Mul(num, kab)
		q := new(big.Float).Add(kab, fk)
		one := bignum.NewFloat(1, s.prec)
		den := new(big.Float).Mul(q, q)
		den.Mul(den, new(big.Float).Add(q, one))
		den.Mul(den, new(big.Float).Sub(q, one))
		return num.Quo(num, den)
	}
}

func (s jacobiBig) Scale(k int) *big.Float {
	c := bignum.NewFloat(1, s.prec)
	if s.std != Classical {
		return c
	}
	kab := new(big.Float).Add(s.a, s.b)
	kab.Add(kab, bignum.NewFloat(k, s.prec))
	tmp := new(big.Float).SetPrec(s.prec)
	for i := int64(1); i <= int64(k); i++ {
		c.Mul(c, tmp.Add(kab, bignum.NewFloat(i, s.prec)))
		c.Quo(c, bignum.NewFloat(2*i, s.prec))
	}
	return c
}

type jacobiExact struct {
	std   Standardization
	a, b  *big.Rat
	beta0 *big.Rat
}

// JacobiExact returns the Jacobi coefficient source over exact rationals.
// The total mass is rational only when a and b are integers, so non-integer
// parameters are rejected with ErrDomainMismatch.
func JacobiExact(a, b *big.Rat, std Standardization) (ExactSource, error) {
	minusOne := big.NewRat(-1, 1)
	if a.Cmp(minusOne) <= 0 || b.Cmp(minusOne) <= 0 {
		return nil, fmt.Errorf("cannot JacobiExact: parameters a=%v, b=%v must be greater than -1: %w", a, b, ErrInvalidParameter)
	}
	if !a.IsInt() || !b.IsInt() {
		return nil, fmt.Errorf("cannot JacobiExact: total mass is irrational for non-integer a=%v, b=%v: %w", a, b, ErrDomainMismatch)
	}
	if err := checkStandardization(std, Monic, Classical, Orthonormal); err != nil {
		return nil, fmt.Errorf("cannot JacobiExact: %w", err)
	}

	// 2^(a+b+1) a! b! / (a+b+1)!
	an, bn := a.Num().Int64(), b.Num().Int64()
	num := new(big.Int).Mul(new(big.Int).MulRange(1, an), new(big.Int).MulRange(1, bn))
	num.Lsh(num, uint(an+bn+1))
	den := new(big.Int).MulRange(1, an+bn+1)
	beta0 := new(big.Rat).SetFrac(num, den)

	return jacobiExact{std: std, a: new(big.Rat).Set(a), b: new(big.Rat).Set(b), beta0: beta0}, nil
}

func (s jacobiExact) Standardization() Standardization { return s.std }

func (s jacobiExact) Alpha(k int) *big.Rat {
	num := new(big.Rat).Sub(s.b, s.a)
	if k == 0 {
		den := new(big.Rat).Add(s.a, s.b)
		den.Add(den, big.NewRat(2, 1))
		return num.Quo(num, den)
	}
	num.Mul(num, new(big.Rat).Add(s.a, s.b))
	q := new(big.Rat).Add(s.a, s.b)
	q.Add(q, big.NewRat(2*int64(k), 1))
	den := new(big.Rat).Add(q, big.NewRat(2, 1))
	den.Mul(den, q)
	return num.Quo(num, den)
}

func (s jacobiExact) Beta(k int) *big.Rat {
	one := big.NewRat(1, 1)
	switch k {
	case 0:
		return new(big.Rat).Set(s.beta0)
	case 1:
		num := new(big.Rat).Add(s.a, one)
		num.Mul(num, new(big.Rat).Add(s.b, one))
		num.Mul(num, big.NewRat(4, 1))
		ab2 := new(big.Rat).Add(s.a, s.b)
		ab2.Add(ab2, big.NewRat(2, 1))
		den := new(big.Rat).Mul(ab2, ab2)
		den.Mul(den, new(big.Rat).Add(ab2, one))
		return num.Quo(num, den)
	default:
		fk := big.NewRat(int64(k), 1)
		num := big.NewRat(4, 1)
		num.Mul(num, fk)
		num.Mul(num, new(big.Rat).Add(fk, s.a))
		num.Mul(num, new(big.Rat).Add(fk, s.b))
		kab := new(big.Rat).Add(s.a, s.b)
		kab.Add(kab, fk)
		num.Mul(num, kab)
		q := new(big.Rat).Add(kab, fk)
		den := new(big.Rat).Mul(q, q)
		den.Mul(den, new(big.Rat).Add(q, one))
		den.Mul(den, new(big.Rat).Sub(q, one))
		return num.Quo(num, den)
	}
}

func (s jacobiExact) Scale(k int) *big.Rat {
	c := big.NewRat(1, 1)
	if s.std != Classical {
		return c
	}
	kab := new(big.Rat).Add(s.a, s.b)
	kab.Add(kab, big.NewRat(int64(k), 1))
	tmp := new(big.Rat)
	for i := int64(1); i <= int64(k); i++ {
		c.Mul(c, tmp.Add(kab, big.NewRat(i, 1)))
		c.Quo(c, big.NewRat(2*i, 1))
	}
	return c
}
