package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
	testFunc2("Hypot", 1.4142135623730951, 2.718281828459045, math.Hypot, Hypot, 1e-15, t)
}

func TestHypotExact(t *testing.T) {
	h := Hypot(NewFloat(3, 64), NewFloat(4, 64))
	require.Equal(t, 0, h.Cmp(NewFloat(5, 64)))
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}

func TestPi(t *testing.T) {
	pi, _ := Pi(53).Float64()
	require.Equal(t, math.Pi, pi)
}

func TestRound(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{2.4, 2}, {2.6, 3}, {-2.4, -2}, {-2.6, -3}, {0, 0},
	} {
		r, _ := Round(NewFloat(tc.in, 53)).Float64()
		require.Equal(t, tc.want, r)
	}
}

func TestBitsForDigits(t *testing.T) {
	require.GreaterOrEqual(t, BitsForDigits(16), uint(54))
	require.Greater(t, BitsForDigits(50), BitsForDigits(16))
}

func TestGamma(t *testing.T) {

	t.Run("Float64Range", func(t *testing.T) {
		for _, x := range []float64{0.5, 1, 1.5, 2, 3.25, 5, 7.5, 10, -0.5, -1.5, -2.5} {
			y, _ := Gamma(NewFloat(x, 53), 53).Float64()
			require.InDeltaf(t, math.Gamma(x), y, 1e-13*math.Abs(math.Gamma(x)), "x=%v", x)
		}
	})

	t.Run("HalfSquaredIsPi", func(t *testing.T) {
		prec := BitsForDigits(50)
		g := Gamma(NewFloat(0.5, prec), prec)
		g.Mul(g, g)
		g.Sub(g, Pi(prec))
		diff, _ := g.Float64()
		require.Less(t, math.Abs(diff), 1e-48)
	})

	t.Run("Integer", func(t *testing.T) {
		prec := BitsForDigits(50)
		g := Gamma(NewFloat(5, prec), prec)
		g.Sub(g, NewFloat(24, prec))
		diff, _ := g.Float64()
		require.Less(t, math.Abs(diff), 1e-48)
	})

	t.Run("Pole", func(t *testing.T) {
		require.Panics(t, func() { Gamma(NewFloat(0, 53), 53) })
		require.Panics(t, func() { Gamma(NewFloat(-3, 53), 53) })
	})
}
