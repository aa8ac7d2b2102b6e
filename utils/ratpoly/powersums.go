package ratpoly

import (
	"fmt"
	"math/big"
)

// PowerSums returns the sums of the k-th powers of the complex roots of p,
// counted with multiplicity, for k = 0..m. The sums follow from Newton's
// identities on the coefficients and are rational even when the roots are
// not. PowerSums panics if p is the zero polynomial.
func (p *Poly) PowerSums(m int) []*big.Rat {
	if p.IsZero() {
		panic(fmt.Errorf("cannot PowerSums: zero polynomial"))
	}
	n := p.Degree()
	// a[i] is the coefficient of x^(n-i) of the monic normalization of p
	a := make([]*big.Rat, n+1)
	invLead := new(big.Rat).Inv(p.Lead())
	for i := 0; i <= n; i++ {
		a[i] = new(big.Rat).Mul(p.coeffs[n-i], invLead)
	}
	s := make([]*big.Rat, m+1)
	s[0] = new(big.Rat).SetInt64(int64(n))
	tmp := new(big.Rat)
	for k := 1; k <= m; k++ {
		sk := new(big.Rat)
		for i := 1; i < k && i <= n; i++ {
			sk.Sub(sk, tmp.Mul(a[i], s[k-i]))
		}
		if k <= n {
			sk.Sub(sk, tmp.Mul(a[k], new(big.Rat).SetInt64(int64(k))))
		}
		s[k] = sk
	}
	return s
}

// SumOverRoots returns the sum of q evaluated at every complex root of p,
// counted with multiplicity. The result is rational even when the individual
// roots are not.
func SumOverRoots(q, p *Poly) *big.Rat {
	out := new(big.Rat)
	if q.IsZero() {
		return out
	}
	s := p.PowerSums(q.Degree())
	tmp := new(big.Rat)
	for i, qi := range q.coeffs {
		out.Add(out, tmp.Mul(qi, s[i]))
	}
	return out
}
