package ratpoly

import (
	"math/big"
)

// Algebraic is a real algebraic number: a simple real root of a rational
// polynomial pinned down by a rational isolating interval. The interval
// shrinks as the number is refined, so a single Algebraic must not be shared
// between concurrent goroutines.
type Algebraic struct {
	p      *Poly
	lo, hi *big.Rat
	exact  bool
	signLo int // sign of p at lo, meaningless once exact
}

func newRationalRoot(p *Poly, x *big.Rat) *Algebraic {
	v := new(big.Rat).Set(x)
	return &Algebraic{p: p.Clone(), lo: v, hi: v, exact: true}
}

func newBracketedRoot(p *Poly, lo, hi *big.Rat) *Algebraic {
	return &Algebraic{
		p:      p.Clone(),
		lo:     new(big.Rat).Set(lo),
		hi:     new(big.Rat).Set(hi),
		signLo: p.Eval(lo).Sign(),
	}
}

// IsRational reports whether the number has collapsed to an exact rational.
func (a *Algebraic) IsRational() bool {
	return a.exact
}

// Rat returns the exact rational value when the number has collapsed to one.
func (a *Algebraic) Rat() (*big.Rat, bool) {
	if !a.exact {
		return nil, false
	}
	return new(big.Rat).Set(a.lo), true
}

// Interval returns a copy of the current enclosing interval.
func (a *Algebraic) Interval() (lo, hi *big.Rat) {
	return new(big.Rat).Set(a.lo), new(big.Rat).Set(a.hi)
}

// RefineTo bisects the enclosing interval until it is no wider than width.
func (a *Algebraic) RefineTo(width *big.Rat) {
	if a.exact {
		return
	}
	w := new(big.Rat)
	for w.Sub(a.hi, a.lo); w.Cmp(width) > 0; w.Sub(a.hi, a.lo) {
		mid := midpoint(a.lo, a.hi)
		switch s := a.p.Eval(mid).Sign(); {
		case s == 0:
			a.lo.Set(mid)
			a.hi.Set(mid)
			a.exact = true
			return
		case s == a.signLo:
			a.lo.Set(mid)
		default:
			a.hi.Set(mid)
		}
	}
}

// Float returns the number rounded to prec bits, refining the enclosing
// interval below 2^-(prec+2) first.
func (a *Algebraic) Float(prec uint) *big.Float {
	a.RefineTo(new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), prec+2)))
	mid := a.lo
	if !a.exact {
		mid = midpoint(a.lo, a.hi)
	}
	return new(big.Float).SetPrec(prec).SetRat(mid)
}
