package quadrature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/bignum"
)

func TestComparePrecision(t *testing.T) {

	t.Run("Float64AgainstBig", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		got, err := Gauss(src, 8)
		require.NoError(t, err)

		bsrc, err := recurrence.LegendreBig(bignum.BitsForDigits(30)+64, recurrence.Monic)
		require.NoError(t, err)
		ref, err := GaussBig(bsrc, 8, 30)
		require.NoError(t, err)

		stats, err := ComparePrecision(ref, got, 120)
		require.NoError(t, err)
		require.Less(t, stats.NodeDelta.Max, 1e-13)
		require.Less(t, stats.WeightDelta.Max, 1e-13)
		require.LessOrEqual(t, stats.NodeDelta.Mean, stats.NodeDelta.Max)
		require.LessOrEqual(t, stats.NodeDelta.Median, stats.NodeDelta.Max)

		out := stats.String()
		require.Contains(t, out, "NODES")
		require.Contains(t, out, "WEIGHTS")
		require.Contains(t, out, "MAX Err")
	})

	t.Run("Float64AgainstExact", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		got, err := Gauss(src, 5)
		require.NoError(t, err)

		esrc, err := recurrence.LegendreExact(recurrence.Monic)
		require.NoError(t, err)
		ref, err := GaussExact(esrc, 5)
		require.NoError(t, err)

		stats, err := ComparePrecision(ref, got, 120)
		require.NoError(t, err)
		require.Less(t, stats.NodeDelta.Max, 1e-13)
		require.Less(t, stats.WeightDelta.Max, 1e-13)
	})

	t.Run("SelfIsZero", func(t *testing.T) {
		src, err := recurrence.LaguerreFloat64(recurrence.Monic)
		require.NoError(t, err)
		rule, err := Gauss(src, 7)
		require.NoError(t, err)

		stats, err := ComparePrecision(rule, rule, 128)
		require.NoError(t, err)
		require.Zero(t, stats.NodeDelta.Max)
		require.Zero(t, stats.NodeDelta.Mean)
		require.Zero(t, stats.WeightDelta.Max)
		require.Zero(t, stats.WeightDelta.Median)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		r3, err := Gauss(src, 3)
		require.NoError(t, err)
		r4, err := Gauss(src, 4)
		require.NoError(t, err)

		_, err = ComparePrecision(r3, r4, 64)
		require.Error(t, err)
		require.ErrorContains(t, err, "3 and 4")
	})
}
