package quadrature

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/bignum"
)

// GaussBig computes the n-point Gauss rule of the measure behind src with
// digits decimal digits of precision. The Golub-Welsch algorithm runs at a
// working precision with guard bits over the requested one, bounded by the
// precision of the source; a source carrying fewer bits than the request
// is rejected with ErrPrecisionUnderflow. The precision is local to the
// call, so concurrent calls with different precisions do not interact.
func GaussBig(src recurrence.BigFloatSource, n, digits int) (*BigRule, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot GaussBig: rule order %d: %w", n, ErrInvalidOrder)
	}
	bits, err := ruleBits(digits)
	if err != nil {
		return nil, fmt.Errorf("cannot GaussBig: %w", err)
	}
	if src.Prec() < bits {
		return nil, fmt.Errorf("cannot GaussBig: %d bits requested from a %d-bit source: %w", bits, src.Prec(), ErrPrecisionUnderflow)
	}
	wprec := bits + 64
	if wprec > src.Prec() {
		wprec = src.Prec()
	}

	alpha, beta, err := recurrence.TakeBigFloat(src, n)
	if err != nil {
		return nil, fmt.Errorf("cannot GaussBig: %w", err)
	}

	d := make([]*big.Float, n)
	e := make([]*big.Float, n)
	z := make([]*big.Float, n)
	for k := 0; k < n; k++ {
		d[k] = new(big.Float).SetPrec(wprec).Set(alpha[k])
		e[k] = new(big.Float).SetPrec(wprec)
		z[k] = new(big.Float).SetPrec(wprec)
	}
	for k := 1; k < n; k++ {
		e[k-1].Sqrt(beta[k])
	}
	z[0].SetInt64(1)

	if err := tridiagEigenBig(d, e, z, wprec); err != nil {
		return nil, fmt.Errorf("cannot GaussBig: %w", err)
	}

	w := make([]*big.Float, n)
	for j := range w {
		w[j] = new(big.Float).SetPrec(wprec).Mul(z[j], z[j])
		w[j].Mul(w[j], beta[0])
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return d[perm[i]].Cmp(d[perm[j]]) < 0 })

	nodes := make([]*big.Float, n)
	weights := make([]*big.Float, n)
	for i, pi := range perm {
		nodes[i] = new(big.Float).SetPrec(bits).Set(d[pi])
		weights[i] = new(big.Float).SetPrec(bits).Set(w[pi])
	}
	return &BigRule{Prec: bits, Nodes: nodes, Weights: weights}, nil
}

// ruleBits converts a decimal digit request into mantissa bits.
func ruleBits(digits int) (uint, error) {
	if digits < 1 {
		return 0, fmt.Errorf("digits=%d must be at least 1: %w", digits, ErrPrecisionUnderflow)
	}
	if digits >= 1<<31 {
		return 0, fmt.Errorf("digits=%d out of range: %w", digits, ErrPrecisionUnderflow)
	}
	bits := bignum.BitsForDigits(uint(digits))
	if bits > big.MaxPrec {
		return 0, fmt.Errorf("digits=%d needs %d mantissa bits, more than big.Float supports: %w", digits, bits, ErrPrecisionUnderflow)
	}
	return bits, nil
}

const maxQLSweepsBig = 60

// tridiagEigenBig is the arbitrary-precision mirror of tridiagEigen, with
// the convergence threshold scaled to one ulp at the working precision and
// a larger sweep budget.
func tridiagEigenBig(d, e, z []*big.Float, prec uint) error {
	n := len(d)
	if n == 1 {
		return nil
	}
	one := bignum.NewFloat(1, prec)
	eps := new(big.Float).SetMantExp(bignum.NewFloat(1, prec), 1-int(prec))
	e[n-1].SetInt64(0)

	var (
		g = new(big.Float).SetPrec(prec)
		s = new(big.Float).SetPrec(prec)
		c = new(big.Float).SetPrec(prec)
		p = new(big.Float).SetPrec(prec)
		f = new(big.Float).SetPrec(prec)
		b = new(big.Float).SetPrec(prec)
		t = new(big.Float).SetPrec(prec)
		u = new(big.Float).SetPrec(prec)
	)
	var r *big.Float

	for l := 0; l < n; l++ {
		for sweep := 0; ; sweep++ {
			var m int
			for m = l; m < n-1; m++ {
				t.Abs(d[m])
				u.Abs(d[m+1])
				t.Add(t, u)
				t.Mul(t, eps)
				u.Abs(e[m])
				if u.Cmp(t) <= 0 {
					break
				}
			}
			if m == l {
				break
			}
			if sweep == maxQLSweepsBig {
				return fmt.Errorf("block %d..%d after %d sweeps: %w", l, m, sweep, ErrNoConvergence)
			}

			// Wilkinson shift from the leading 2x2
			g.Sub(d[l+1], d[l])
			t.Add(e[l], e[l])
			g.Quo(g, t)
			r = bignum.Hypot(g, one)
			t.Copy(r)
			if g.Signbit() != t.Signbit() {
				t.Neg(t)
			}
			t.Add(g, t)
			t.Quo(e[l], t)
			g.Sub(d[m], d[l])
			g.Add(g, t)

			s.SetInt64(1)
			c.SetInt64(1)
			p.SetInt64(0)
			underflow := false
			for i := m - 1; i >= l; i-- {
				f.Mul(s, e[i])
				b.Mul(c, e[i])
				r = bignum.Hypot(f, g)
				e[i+1].Set(r)
				if r.Sign() == 0 {
					// deflate and retry the sweep
					d[i+1].Sub(d[i+1], p)
					e[m].SetInt64(0)
					underflow = true
					break
				}
				s.Quo(f, r)
				c.Quo(g, r)
				g.Sub(d[i+1], p)
				t.Sub(d[i], g)
				t.Mul(t, s)
				u.Mul(c, b)
				u.Add(u, u)
				r.Add(t, u)
				p.Mul(s, r)
				d[i+1].Add(g, p)
				g.Mul(c, r)
				g.Sub(g, b)

				f.Set(z[i+1])
				z[i+1].Mul(s, z[i])
				t.Mul(c, f)
				z[i+1].Add(z[i+1], t)
				t.Mul(s, f)
				z[i].Mul(c, z[i])
				z[i].Sub(z[i], t)
			}
			if underflow {
				continue
			}
			d[l].Sub(d[l], p)
			e[l].Set(g)
			e[m].SetInt64(0)
		}
	}
	return nil
}
