package ratpoly

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotCoprime is returned by InverseMod when the element shares a factor
// with the modulus and has no inverse in the quotient ring.
var ErrNotCoprime = errors.New("ratpoly: polynomials are not coprime")

// QuoRem returns the euclidean quotient and remainder of p by q, so that
// p = quo*q + rem with the degree of rem strictly below the degree of q.
// It panics if q is the zero polynomial.
func (p *Poly) QuoRem(q *Poly) (quo, rem *Poly) {
	if q.IsZero() {
		panic(fmt.Errorf("cannot QuoRem: division by the zero polynomial"))
	}
	n, m := p.Degree(), q.Degree()
	if n < m {
		return &Poly{}, p.Clone()
	}
	r := make([]*big.Rat, n+1)
	for i, ci := range p.coeffs {
		r[i] = new(big.Rat).Set(ci)
	}
	qc := make([]*big.Rat, n-m+1)
	invLead := new(big.Rat).Inv(q.coeffs[m])
	tmp := new(big.Rat)
	for k := n - m; k >= 0; k-- {
		qc[k] = new(big.Rat).Mul(r[m+k], invLead)
		if qc[k].Sign() == 0 {
			continue
		}
		for j := 0; j <= m; j++ {
			r[j+k].Sub(r[j+k], tmp.Mul(qc[k], q.coeffs[j]))
		}
	}
	return &Poly{coeffs: trim(qc)}, &Poly{coeffs: trim(r[:m])}
}

// Rem returns the euclidean remainder of p by q.
func (p *Poly) Rem(q *Poly) *Poly {
	_, rem := p.QuoRem(q)
	return rem
}

// GCD returns the monic greatest common divisor of p and q.
func GCD(p, q *Poly) *Poly {
	a, b := p.Clone(), q.Clone()
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a.Monic()
}

// IsSquareFree reports whether p has no repeated complex root, that is
// whether gcd(p, p') is constant.
func (p *Poly) IsSquareFree() bool {
	if p.Degree() <= 1 {
		return true
	}
	return GCD(p, p.Derivative()).Degree() == 0
}

// ExtendedGCD returns (g, u, v) with u*p + v*q = g and g the monic greatest
// common divisor of p and q.
func ExtendedGCD(p, q *Poly) (g, u, v *Poly) {
	r0, r1 := p.Clone(), q.Clone()
	u0, u1 := Constant(big.NewRat(1, 1)), &Poly{}
	v0, v1 := &Poly{}, Constant(big.NewRat(1, 1))
	for !r1.IsZero() {
		quo, rem := r0.QuoRem(r1)
		r0, r1 = r1, rem
		u0, u1 = u1, u0.Sub(quo.Mul(u1))
		v0, v1 = v1, v0.Sub(quo.Mul(v1))
	}
	if r0.IsZero() {
		return &Poly{}, &Poly{}, &Poly{}
	}
	inv := new(big.Rat).Inv(r0.Lead())
	return r0.Scale(inv), u0.Scale(inv), v0.Scale(inv)
}

// InverseMod returns the inverse of p in the quotient ring modulo m, reduced
// below the degree of m. It returns ErrNotCoprime when p and m share a
// factor.
func InverseMod(p, m *Poly) (*Poly, error) {
	g, u, _ := ExtendedGCD(p, m)
	if g.Degree() != 0 {
		return nil, fmt.Errorf("cannot InverseMod: %w", ErrNotCoprime)
	}
	return u.Rem(m), nil
}
