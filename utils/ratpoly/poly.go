// Package ratpoly implements dense univariate polynomials over the rationals,
// together with the euclidean, Sturm sequence and real root isolation
// operations needed to manipulate characteristic polynomials exactly.
package ratpoly

import (
	"fmt"
	"math/big"
	"strings"
)

// Poly is a dense univariate polynomial with rational coefficients.
// Constructors copy their inputs and all methods treat their receiver and
// arguments as immutable, returning fresh values.
type Poly struct {
	coeffs []*big.Rat // coeffs[i] is the coefficient of x^i, no trailing zeros
}

// NewPoly returns the polynomial with the given coefficients in ascending
// powers.
func NewPoly(coeffs ...*big.Rat) *Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, ci := range coeffs {
		c[i] = new(big.Rat).Set(ci)
	}
	return &Poly{coeffs: trim(c)}
}

// NewPolyInt64 returns the polynomial with the given integer coefficients in
// ascending powers.
func NewPolyInt64(coeffs ...int64) *Poly {
	c := make([]*big.Rat, len(coeffs))
	for i, ci := range coeffs {
		c[i] = new(big.Rat).SetInt64(ci)
	}
	return &Poly{coeffs: trim(c)}
}

// Constant returns the constant polynomial c.
func Constant(c *big.Rat) *Poly {
	return NewPoly(c)
}

// X returns the monic monomial of degree one.
func X() *Poly {
	return NewPolyInt64(0, 1)
}

func trim(c []*big.Rat) []*big.Rat {
	for len(c) > 0 && c[len(c)-1].Sign() == 0 {
		c = c[:len(c)-1]
	}
	return c
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns a copy of the coefficient of x^i, zero beyond the degree.
func (p *Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[i])
}

// Lead returns a copy of the leading coefficient, zero for the zero
// polynomial.
func (p *Poly) Lead() *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[len(p.coeffs)-1])
}

// Clone returns a deep copy of p.
func (p *Poly) Clone() *Poly {
	return NewPoly(p.coeffs...)
}

// Equal reports whether p and q have identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	c := make([]*big.Rat, max(len(p.coeffs), len(q.coeffs)))
	for i := range c {
		c[i] = new(big.Rat)
		if i < len(p.coeffs) {
			c[i].Add(c[i], p.coeffs[i])
		}
		if i < len(q.coeffs) {
			c[i].Add(c[i], q.coeffs[i])
		}
	}
	return &Poly{coeffs: trim(c)}
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	c := make([]*big.Rat, len(p.coeffs))
	for i, ci := range p.coeffs {
		c[i] = new(big.Rat).Neg(ci)
	}
	return &Poly{coeffs: c}
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return &Poly{}
	}
	c := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, pi := range p.coeffs {
		if pi.Sign() == 0 {
			continue
		}
		for j, qj := range q.coeffs {
			c[i+j].Add(c[i+j], tmp.Mul(pi, qj))
		}
	}
	return &Poly{coeffs: trim(c)}
}

// Scale returns c * p.
func (p *Poly) Scale(c *big.Rat) *Poly {
	if c.Sign() == 0 {
		return &Poly{}
	}
	r := make([]*big.Rat, len(p.coeffs))
	for i, pi := range p.coeffs {
		r[i] = new(big.Rat).Mul(pi, c)
	}
	return &Poly{coeffs: r}
}

// Eval returns p(x) by Horner's rule.
func (p *Poly) Eval(x *big.Rat) *big.Rat {
	y := new(big.Rat)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.coeffs[i])
	}
	return y
}

// EvalFloat returns p(x) over big.Float at the precision of x.
func (p *Poly) EvalFloat(x *big.Float) *big.Float {
	y := new(big.Float).SetPrec(x.Prec())
	tmp := new(big.Float).SetPrec(x.Prec())
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, tmp.SetRat(p.coeffs[i]))
	}
	return y
}

// Derivative returns dp/dx.
func (p *Poly) Derivative() *Poly {
	if p.Degree() < 1 {
		return &Poly{}
	}
	c := make([]*big.Rat, len(p.coeffs)-1)
	k := new(big.Rat)
	for i := 1; i < len(p.coeffs); i++ {
		c[i-1] = new(big.Rat).Mul(p.coeffs[i], k.SetInt64(int64(i)))
	}
	return &Poly{coeffs: trim(c)}
}

// Monic returns p divided by its leading coefficient, or zero for zero p.
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		return &Poly{}
	}
	return p.Scale(new(big.Rat).Inv(p.Lead()))
}

// String renders p in ascending powers, such as "-1/3 + x^2".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	one := big.NewRat(1, 1)
	var sb strings.Builder
	first := true
	for i, ci := range p.coeffs {
		if ci.Sign() == 0 {
			continue
		}
		switch {
		case first && ci.Sign() < 0:
			sb.WriteString("-")
		case !first && ci.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		abs := new(big.Rat).Abs(ci)
		if i == 0 || abs.Cmp(one) != 0 {
			sb.WriteString(abs.RatString())
			if i > 0 {
				sb.WriteString("*")
			}
		}
		if i == 1 {
			sb.WriteString("x")
		} else if i > 1 {
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}
	return sb.String()
}
