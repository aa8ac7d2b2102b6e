package ratpoly

import (
	"fmt"
	"math/big"
)

// SturmChain returns the canonical Sturm sequence of p: the chain starting
// with p and its derivative, where each further entry is the negated
// euclidean remainder of the previous two, stopping before the zero
// polynomial.
func SturmChain(p *Poly) []*Poly {
	if p.Degree() < 1 {
		return []*Poly{p.Clone()}
	}
	chain := []*Poly{p.Clone(), p.Derivative()}
	for {
		next := chain[len(chain)-2].Rem(chain[len(chain)-1]).Neg()
		if next.IsZero() {
			return chain
		}
		chain = append(chain, next)
	}
}

func signVariations(chain []*Poly, x *big.Rat) (v int) {
	last := 0
	for _, p := range chain {
		s := p.Eval(x).Sign()
		if s == 0 {
			continue
		}
		if last != 0 && s != last {
			v++
		}
		last = s
	}
	return
}

// CountRootsWithin returns the number of distinct real roots in the half-open
// interval (lo, hi] of the square-free polynomial whose Sturm chain is given.
func CountRootsWithin(chain []*Poly, lo, hi *big.Rat) int {
	return signVariations(chain, lo) - signVariations(chain, hi)
}

// RootBound returns the Cauchy bound of p: every real root of p lies strictly
// within (-M, M).
func (p *Poly) RootBound() *big.Rat {
	m := new(big.Rat)
	if p.Degree() >= 1 {
		invLead := new(big.Rat).Inv(p.Lead())
		tmp := new(big.Rat)
		for _, ci := range p.coeffs[:len(p.coeffs)-1] {
			tmp.Mul(ci, invLead)
			tmp.Abs(tmp)
			if tmp.Cmp(m) > 0 {
				m.Set(tmp)
			}
		}
	}
	return m.Add(m, big.NewRat(1, 1))
}

// IsolateRoots returns every real root of the square-free polynomial p as an
// algebraic number with a rational isolating interval, in ascending order.
// It panics if p is the zero polynomial.
func IsolateRoots(p *Poly) []*Algebraic {
	if p.IsZero() {
		panic(fmt.Errorf("cannot IsolateRoots: zero polynomial"))
	}
	if p.Degree() == 0 {
		return nil
	}
	chain := SturmChain(p)
	hi := p.RootBound()
	lo := new(big.Rat).Neg(hi)
	var out []*Algebraic
	isolate(p, chain, lo, hi, CountRootsWithin(chain, lo, hi), &out)
	return out
}

func isolate(p *Poly, chain []*Poly, lo, hi *big.Rat, count int, out *[]*Algebraic) {
	switch {
	case count == 0:
	case count == 1:
		*out = append(*out, bracket(p, chain, lo, hi))
	default:
		mid := midpoint(lo, hi)
		left := CountRootsWithin(chain, lo, mid)
		isolate(p, chain, lo, mid, left, out)
		isolate(p, chain, mid, hi, count-left, out)
	}
}

// bracket normalizes an interval (lo, hi] holding exactly one root of p into
// either an exact rational root or an open bracket with nonzero values of
// opposite signs at its endpoints.
func bracket(p *Poly, chain []*Poly, lo, hi *big.Rat) *Algebraic {
	if p.Eval(hi).Sign() == 0 {
		return newRationalRoot(p, hi)
	}
	for p.Eval(lo).Sign() == 0 {
		mid := midpoint(lo, hi)
		if p.Eval(mid).Sign() == 0 {
			return newRationalRoot(p, mid)
		}
		if CountRootsWithin(chain, lo, mid) == 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return newBracketedRoot(p, lo, hi)
}

func midpoint(lo, hi *big.Rat) *big.Rat {
	m := new(big.Rat).Add(lo, hi)
	return m.Quo(m, big.NewRat(2, 1))
}
