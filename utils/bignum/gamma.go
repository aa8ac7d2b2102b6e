package bignum

import (
	"fmt"
	"math/big"
)

// Gamma returns the gamma function evaluated at x with prec bits of precision,
// using Spouge's approximation. The number of terms grows linearly with the
// target precision, following the error bound a^(-1/2) * (2*Pi)^(-a-1/2) of
// the a-term expansion. Gamma panics if x is zero or a negative integer.
func Gamma(x *big.Float, prec uint) (y *big.Float) {

	if x.IsInt() && x.Sign() <= 0 {
		panic(fmt.Errorf("cannot Gamma: x=%s is zero or a negative integer", x.String()))
	}

	wprec := prec + 64

	// Gamma(x) = Pi / (Sin(Pi*x) * Gamma(1-x)) maps the argument to [1/2, inf).
	if x.Cmp(NewFloat(0.5, wprec)) < 0 {
		pi := Pi(wprec)

		// Sin(Pi*x) = (-1)^n * Sin(Pi*(x-n)) with n = round(x), so that the
		// argument passed to Sin stays within [-Pi/2, Pi/2].
		n := Round(new(big.Float).SetPrec(wprec).Set(x))
		nInt, _ := n.Int(nil)
		r := new(big.Float).SetPrec(wprec).Sub(x, n)

		sin := Sin(new(big.Float).Mul(pi, r))
		if nInt.Bit(0) == 1 {
			sin.Neg(sin)
		}

		y = gammaSpouge(new(big.Float).Sub(NewFloat(1, wprec), x), wprec)
		y.Mul(y, sin)
		y = new(big.Float).Quo(pi, y)
		return y.SetPrec(prec)
	}

	return gammaSpouge(new(big.Float).SetPrec(wprec).Set(x), prec).SetPrec(prec)
}

// gammaSpouge evaluates Spouge's expansion at x >= 1/2. The alternating sum
// loses bits to cancellation, so the working precision carries one guard bit
// per term on top of the target precision.
func gammaSpouge(x *big.Float, prec uint) *big.Float {

	a := int(0.4*float64(prec)) + 8
	wprec := prec + uint(a) + 32

	half := NewFloat(0.5, wprec)

	z := new(big.Float).SetPrec(wprec).Sub(x, NewFloat(1, wprec))

	// c_0 = sqrt(2*Pi)
	twoPi := Pi(wprec)
	twoPi.Add(twoPi, twoPi)
	sum := new(big.Float).Sqrt(twoPi)

	fk := NewFloat(1, wprec) // (k-1)!
	for k := 1; k < a; k++ {
		if k > 1 {
			fk.Mul(fk, NewFloat(k-1, wprec))
		}

		// c_k = (-1)^(k-1)/(k-1)! * (a-k)^(k-1/2) * exp(a-k)
		ak := NewFloat(a-k, wprec)
		ck := Pow(ak, new(big.Float).Sub(NewFloat(k, wprec), half))
		ck.Mul(ck, Exp(ak))
		ck.Quo(ck, fk)
		if k&1 == 0 {
			ck.Neg(ck)
		}

		den := new(big.Float).Add(z, NewFloat(k, wprec))
		sum.Add(sum, ck.Quo(ck, den))
	}

	// Gamma(z+1) = (z+a)^(z+1/2) * exp(-(z+a)) * sum
	za := new(big.Float).Add(z, NewFloat(a, wprec))
	y := Pow(za, new(big.Float).Add(z, half))
	y.Mul(y, Exp(new(big.Float).Neg(za)))
	y.Mul(y, sum)

	return y
}
