package recurrence

import (
	"fmt"
	"math/big"
)

// MomentsExact returns the exact moments of the measure behind src, that is
// the integrals of x^j against the weight function, for j = 0..m.
//
// The monomial x^j is expanded over the monic orthogonal basis with
// x p_k = p_{k+1} + alpha_k p_k + beta_k p_{k-1}; only the p_0 component
// survives integration, with mass Beta(0), so the moments follow from the
// recurrence coefficients alone.
func MomentsExact(src ExactSource, m int) ([]*big.Rat, error) {
	if m < 0 {
		return nil, fmt.Errorf("cannot MomentsExact: negative moment order %d", m)
	}
	alpha, beta, err := TakeExact(src, m+1)
	if err != nil {
		return nil, fmt.Errorf("cannot MomentsExact: %w", err)
	}

	moments := make([]*big.Rat, m+1)
	c := []*big.Rat{big.NewRat(1, 1)}
	tmp := new(big.Rat)
	for j := 0; ; j++ {
		moments[j] = new(big.Rat).Mul(c[0], beta[0])
		if j == m {
			break
		}
		next := make([]*big.Rat, len(c)+1)
		for k := range next {
			next[k] = new(big.Rat)
			if k >= 1 {
				next[k].Add(next[k], c[k-1])
			}
			if k < len(c) {
				next[k].Add(next[k], tmp.Mul(alpha[k], c[k]))
			}
			if k+1 < len(c) {
				next[k].Add(next[k], tmp.Mul(beta[k+1], c[k+1]))
			}
		}
		c = next
	}
	return moments, nil
}
