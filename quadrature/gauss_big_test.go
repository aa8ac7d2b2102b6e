package quadrature

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/bignum"
)

func TestGaussBig(t *testing.T) {

	t.Run("ChebyshevFiftyDigits", func(t *testing.T) {
		const n, digits = 5, 50
		bits := bignum.BitsForDigits(digits)
		src, err := recurrence.Chebyshev1Big(bits+64, recurrence.Monic)
		require.NoError(t, err)
		rule, err := GaussBig(src, n, digits)
		require.NoError(t, err)
		require.Equal(t, n, rule.Len())
		require.Equal(t, bits, rule.Prec)

		// nodes are cos((2k-1)Pi/2n) and every weight is Pi/n
		p := bits + 64
		pi := bignum.Pi(p)
		bound := bignum.NewFloat(1e-45, p)
		diff := new(big.Float).SetPrec(p)
		for i := 0; i < n; i++ {
			theta := new(big.Float).SetPrec(p).SetInt64(int64(2*(n-i) - 1))
			theta.Mul(theta, pi)
			theta.Quo(theta, bignum.NewFloat(2*n, p))
			diff.Sub(bignum.Cos(theta), rule.Node(i, p))
			require.True(t, diff.Abs(diff).Cmp(bound) < 0, "node %d off by %s", i, diff.Text('e', 3))

			diff.Quo(pi, bignum.NewFloat(n, p))
			diff.Sub(diff, rule.Weight(i, p))
			require.True(t, diff.Abs(diff).Cmp(bound) < 0, "weight %d off by %s", i, diff.Text('e', 3))
		}
	})

	t.Run("IntegratesCosine", func(t *testing.T) {
		const digits = 50
		bits := bignum.BitsForDigits(digits)
		src, err := recurrence.LegendreBig(bits+64, recurrence.Monic)
		require.NoError(t, err)
		rule, err := GaussBig(src, 30, digits)
		require.NoError(t, err)

		// int_{-1}^{1} cos = 2 sin(1)
		got := rule.Integrate(bignum.Cos)
		want := bignum.Sin(bignum.NewFloat(1, bits))
		want.Add(want, want)
		diff := new(big.Float).Sub(want, got)
		require.True(t, diff.Abs(diff).Cmp(bignum.NewFloat(1e-45, bits)) < 0, "off by %s", diff.Text('e', 3))
	})

	t.Run("HermiteMass", func(t *testing.T) {
		const digits = 40
		bits := bignum.BitsForDigits(digits)
		src, err := recurrence.HermitePhysicistBig(bits+64, recurrence.Monic)
		require.NoError(t, err)
		rule, err := GaussBig(src, 6, digits)
		require.NoError(t, err)

		sum := new(big.Float).SetPrec(bits + 64)
		for _, w := range rule.Weights {
			require.True(t, w.Sign() > 0)
			sum.Add(sum, w)
		}
		want := bignum.Pi(bits + 64)
		want.Sqrt(want)
		diff := new(big.Float).Sub(want, sum)
		require.True(t, diff.Abs(diff).Cmp(bignum.NewFloat(1e-35, bits)) < 0, "off by %s", diff.Text('e', 3))
	})

	t.Run("CarriesRequestedPrecision", func(t *testing.T) {
		const digits = 25
		bits := bignum.BitsForDigits(digits)
		src, err := recurrence.LegendreBig(bits+64, recurrence.Monic)
		require.NoError(t, err)
		rule, err := GaussBig(src, 4, digits)
		require.NoError(t, err)

		require.Equal(t, bits, rule.Prec)
		for i := 0; i < rule.Len(); i++ {
			require.Equal(t, bits, rule.Nodes[i].Prec())
			require.Equal(t, bits, rule.Weights[i].Prec())
		}
		require.Equal(t, uint(64), rule.Node(0, 64).Prec())
	})

	t.Run("Validation", func(t *testing.T) {
		src, err := recurrence.LegendreBig(512, recurrence.Monic)
		require.NoError(t, err)

		_, err = GaussBig(src, 0, 30)
		require.ErrorIs(t, err, ErrInvalidOrder)

		_, err = GaussBig(src, 4, 0)
		require.ErrorIs(t, err, ErrPrecisionUnderflow)

		_, err = GaussBig(src, 4, -7)
		require.ErrorIs(t, err, ErrPrecisionUnderflow)

		narrow, err := recurrence.LegendreBig(64, recurrence.Monic)
		require.NoError(t, err)
		_, err = GaussBig(narrow, 4, 50)
		require.ErrorIs(t, err, ErrPrecisionUnderflow)
		require.ErrorContains(t, err, "64-bit source")
	})
}
