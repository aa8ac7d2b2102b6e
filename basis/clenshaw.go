package basis

import (
	"fmt"
	"math/big"
)

// Clenshaw evaluates the expansion sum_k c[k] p_k(x) over the monic
// polynomials of the recurrence with coefficients alpha and beta, without
// forming the p_k themselves. It runs the backward recurrence
//
//	b_k = c_k + (x - alpha_k) b_{k+1} - beta_{k+1} b_{k+2}
//
// down from the highest degree; b_0 is the value of the expansion. With
// n = len(c)-1, the entries alpha[0..n-1] and beta[1..n-1] are read;
// beta[0] is never used. An empty c evaluates to zero.
func Clenshaw(c, alpha, beta []float64, x float64) (float64, error) {
	n := len(c) - 1
	if n < 0 {
		return 0, nil
	}
	if len(alpha) < n || len(beta) < n {
		return 0, fmt.Errorf("cannot Clenshaw: expansion of degree %d needs %d recurrence coefficients, have alpha=%d and beta=%d: %w",
			n, n, len(alpha), len(beta), ErrLengthMismatch)
	}
	b1, b2 := c[n], 0.0
	for k := n - 1; k >= 0; k-- {
		b := c[k] + (x-alpha[k])*b1
		if k+2 <= n {
			b -= beta[k+1] * b2
		}
		b2, b1 = b1, b
	}
	return b1, nil
}

// ClenshawBig is the arbitrary-precision counterpart of Clenshaw. The
// result carries the precision of x.
func ClenshawBig(c, alpha, beta []*big.Float, x *big.Float) (*big.Float, error) {
	prec := x.Prec()
	n := len(c) - 1
	if n < 0 {
		return new(big.Float).SetPrec(prec), nil
	}
	if len(alpha) < n || len(beta) < n {
		return nil, fmt.Errorf("cannot ClenshawBig: expansion of degree %d needs %d recurrence coefficients, have alpha=%d and beta=%d: %w",
			n, n, len(alpha), len(beta), ErrLengthMismatch)
	}
	b1 := new(big.Float).SetPrec(prec).Set(c[n])
	b2 := new(big.Float).SetPrec(prec)
	t := new(big.Float).SetPrec(prec)
	u := new(big.Float).SetPrec(prec)
	for k := n - 1; k >= 0; k-- {
		t.Sub(x, alpha[k])
		t.Mul(t, b1)
		t.Add(t, c[k])
		if k+2 <= n {
			u.Mul(beta[k+1], b2)
			t.Sub(t, u)
		}
		b2.Set(b1)
		b1.Set(t)
	}
	return b1, nil
}

// ClenshawExact is the exact rational counterpart of Clenshaw.
func ClenshawExact(c, alpha, beta []*big.Rat, x *big.Rat) (*big.Rat, error) {
	n := len(c) - 1
	if n < 0 {
		return new(big.Rat), nil
	}
	if len(alpha) < n || len(beta) < n {
		return nil, fmt.Errorf("cannot ClenshawExact: expansion of degree %d needs %d recurrence coefficients, have alpha=%d and beta=%d: %w",
			n, n, len(alpha), len(beta), ErrLengthMismatch)
	}
	b1 := new(big.Rat).Set(c[n])
	b2 := new(big.Rat)
	t := new(big.Rat)
	u := new(big.Rat)
	for k := n - 1; k >= 0; k-- {
		t.Sub(x, alpha[k])
		t.Mul(t, b1)
		t.Add(t, c[k])
		if k+2 <= n {
			u.Mul(beta[k+1], b2)
			t.Sub(t, u)
		}
		b2.Set(b1)
		b1.Set(t)
	}
	return b1, nil
}
