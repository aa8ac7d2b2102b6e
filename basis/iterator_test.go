package basis

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specfun/orthoquad/recurrence"
)

// countingSource wraps a coefficient source and records which indices were
// pulled.
type countingSource struct {
	recurrence.Float64Source
	alphaPulls map[int]int
	betaPulls  map[int]int
}

func newCountingSource(src recurrence.Float64Source) *countingSource {
	return &countingSource{
		Float64Source: src,
		alphaPulls:    map[int]int{},
		betaPulls:     map[int]int{},
	}
}

func (s *countingSource) Alpha(k int) float64 {
	s.alphaPulls[k]++
	return s.Float64Source.Alpha(k)
}

func (s *countingSource) Beta(k int) float64 {
	s.betaPulls[k]++
	return s.Float64Source.Beta(k)
}

func TestIterator(t *testing.T) {

	x := []float64{-1, -0.3, 0, 0.5, 1}

	t.Run("MonicLegendre", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		it := NewIterator(src, x)
		require.Equal(t, 0, it.Degree())

		row, err := it.Next()
		require.NoError(t, err)
		for i := range x {
			require.Equal(t, 1.0, row[i])
		}

		row, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, x, row)

		row, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, 3, it.Degree())
		for i, xi := range x {
			require.InDelta(t, xi*xi-1.0/3.0, row[i], 1e-15)
		}

		row, err = it.Next()
		require.NoError(t, err)
		for i, xi := range x {
			require.InDelta(t, xi*xi*xi-0.6*xi, row[i], 1e-15)
		}
	})

	t.Run("ClassicalLegendre", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Classical)
		require.NoError(t, err)
		rows, err := Tree(src, x, 3)
		require.NoError(t, err)
		for i, xi := range x {
			require.InDelta(t, 1, rows[0][i], 1e-15)
			require.InDelta(t, xi, rows[1][i], 1e-15)
			require.InDelta(t, (3*xi*xi-1)/2, rows[2][i], 1e-15)
			require.InDelta(t, (5*xi*xi*xi-3*xi)/2, rows[3][i], 1e-15)
		}
	})

	t.Run("OrthonormalLegendre", func(t *testing.T) {
		orth, err := recurrence.LegendreFloat64(recurrence.Orthonormal)
		require.NoError(t, err)
		cls, err := recurrence.LegendreFloat64(recurrence.Classical)
		require.NoError(t, err)
		oRows, err := Tree(orth, x, 6)
		require.NoError(t, err)
		cRows, err := Tree(cls, x, 6)
		require.NoError(t, err)
		// the classical P_k has norm 2/(2k+1)
		for k := range oRows {
			norm := math.Sqrt((2*float64(k) + 1) / 2)
			for i := range x {
				require.InDelta(t, norm*cRows[k][i], oRows[k][i], 1e-13, "degree %d", k)
			}
		}
	})

	t.Run("LazyPulls", func(t *testing.T) {
		base, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		src := newCountingSource(base)
		it := NewIterator(src, x)
		require.Empty(t, src.betaPulls)

		_, err = it.Next()
		require.NoError(t, err)
		require.Empty(t, src.alphaPulls)
		require.Empty(t, src.betaPulls)

		_, err = it.Next()
		require.NoError(t, err)
		require.Empty(t, src.betaPulls)

		_, err = it.Next()
		require.NoError(t, err)
		require.Contains(t, src.betaPulls, 1)
		require.NotContains(t, src.betaPulls, 0)
	})

	t.Run("NormalizedPullsMassOnce", func(t *testing.T) {
		base, err := recurrence.LegendreFloat64(recurrence.Orthonormal)
		require.NoError(t, err)
		src := newCountingSource(base)
		it := NewIterator(src, x)

		_, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, map[int]int{0: 1}, src.betaPulls)

		_, err = it.Next()
		require.NoError(t, err)
		require.Equal(t, map[int]int{0: 1, 1: 1}, src.betaPulls)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		it := NewIterator(src, nil)
		row, err := it.Next()
		require.NoError(t, err)
		require.Empty(t, row)
	})

	t.Run("BrokenBeta", func(t *testing.T) {
		src := brokenBetaSource{bad: 2}
		it := NewIterator(src, x)
		_, err := it.Next()
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		// the bad coefficient feeds the degree three row
		_, err = it.Next()
		require.ErrorIs(t, err, recurrence.ErrNonPositiveBeta)
	})
}

// brokenBetaSource is a monic source whose beta turns negative at index
// bad.
type brokenBetaSource struct {
	bad int
}

func (s brokenBetaSource) Standardization() recurrence.Standardization { return recurrence.Monic }
func (s brokenBetaSource) Alpha(k int) float64                         { return 0 }
func (s brokenBetaSource) Scale(k int) float64                         { return 1 }

func (s brokenBetaSource) Beta(k int) float64 {
	if k == s.bad {
		return -1
	}
	return 1
}

func TestTree(t *testing.T) {

	t.Run("MatchesIterator", func(t *testing.T) {
		src, err := recurrence.Chebyshev1Float64(recurrence.Classical)
		require.NoError(t, err)
		x := []float64{-0.9, 0.2, 0.8}
		rows, err := Tree(src, x, 5)
		require.NoError(t, err)
		require.Len(t, rows, 6)

		it := NewIterator(src, x)
		for k := range rows {
			row, err := it.Next()
			require.NoError(t, err)
			require.Equal(t, row, rows[k])
		}
		// classical Chebyshev is T_k(x) = cos(k arccos x)
		for k := range rows {
			for i, xi := range x {
				require.InDelta(t, math.Cos(float64(k)*math.Acos(xi)), rows[k][i], 1e-13)
			}
		}
	})

	t.Run("NegativeDegree", func(t *testing.T) {
		src, err := recurrence.LegendreFloat64(recurrence.Monic)
		require.NoError(t, err)
		_, err = Tree(src, []float64{0}, -1)
		require.Error(t, err)
	})
}

func TestBigIterator(t *testing.T) {

	x := []float64{-0.75, 0.25, 0.6}

	toBig := func(prec uint) []*big.Float {
		xs := make([]*big.Float, len(x))
		for i := range x {
			xs[i] = new(big.Float).SetPrec(prec).SetFloat64(x[i])
		}
		return xs
	}

	t.Run("MatchesFloat64", func(t *testing.T) {
		for _, std := range []recurrence.Standardization{recurrence.Monic, recurrence.Classical, recurrence.Orthonormal} {
			f64, err := recurrence.LegendreFloat64(std)
			require.NoError(t, err)
			big128, err := recurrence.LegendreBig(128, std)
			require.NoError(t, err)

			fRows, err := Tree(f64, x, 8)
			require.NoError(t, err)
			bRows, err := TreeBig(big128, toBig(128), 8)
			require.NoError(t, err)

			for k := range fRows {
				for i := range x {
					got, _ := bRows[k][i].Float64()
					require.InDelta(t, fRows[k][i], got, 1e-13, "std %s degree %d", std, k)
				}
			}
		}
	})

	t.Run("CarriesSourcePrecision", func(t *testing.T) {
		src, err := recurrence.HermitePhysicistBig(192, recurrence.Physicist)
		require.NoError(t, err)
		it := NewBigIterator(src, toBig(64))
		row, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, uint(192), row[0].Prec())
	})
}

func TestExactIterator(t *testing.T) {

	x := []*big.Rat{big.NewRat(-1, 1), big.NewRat(1, 2), big.NewRat(2, 1)}

	t.Run("MonicValues", func(t *testing.T) {
		src, err := recurrence.LegendreExact(recurrence.Monic)
		require.NoError(t, err)
		it := NewExactIterator(src, x)

		row, err := it.Next()
		require.NoError(t, err)
		for i := range x {
			require.True(t, row[i].Cmp(big.NewRat(1, 1)) == 0)
		}

		row, err = it.Next()
		require.NoError(t, err)
		for i := range x {
			require.True(t, row[i].Cmp(x[i]) == 0)
		}

		row, err = it.Next()
		require.NoError(t, err)
		// x^2 - 1/3 at 1/2 is -1/12
		require.True(t, row[1].Cmp(big.NewRat(-1, 12)) == 0)
		require.True(t, row[0].Cmp(big.NewRat(2, 3)) == 0)
	})

	t.Run("NormSq", func(t *testing.T) {
		src, err := recurrence.LegendreExact(recurrence.Orthonormal)
		require.NoError(t, err)
		it := NewExactIterator(src, x)

		_, err = it.NormSq()
		require.Error(t, err)

		_, err = it.Next()
		require.NoError(t, err)
		h0, err := it.NormSq()
		require.NoError(t, err)
		require.True(t, h0.Cmp(big.NewRat(2, 1)) == 0)

		_, err = it.Next()
		require.NoError(t, err)
		_, err = it.Next()
		require.NoError(t, err)
		h2, err := it.NormSq()
		require.NoError(t, err)
		// 2 * 1/3 * 4/15
		require.True(t, h2.Cmp(big.NewRat(8, 45)) == 0)
	})

	t.Run("ClassicalValues", func(t *testing.T) {
		src, err := recurrence.LegendreExact(recurrence.Classical)
		require.NoError(t, err)
		rows, err := TreeExact(src, x, 2)
		require.NoError(t, err)
		// P_2(1/2) = -1/8
		require.True(t, rows[2][1].Cmp(big.NewRat(-1, 8)) == 0)
	})
}

func TestSymbolicIterator(t *testing.T) {

	t.Run("MonicLegendre", func(t *testing.T) {
		src, err := recurrence.LegendreExact(recurrence.Monic)
		require.NoError(t, err)
		polys, err := TreeSymbolic(src, 3)
		require.NoError(t, err)

		require.Equal(t, "1", polys[0].String())
		require.Equal(t, "x", polys[1].String())
		require.True(t, polys[2].Coeff(0).Cmp(big.NewRat(-1, 3)) == 0)
		require.True(t, polys[2].Coeff(1).Sign() == 0)
		require.True(t, polys[2].Coeff(2).Cmp(big.NewRat(1, 1)) == 0)
		require.True(t, polys[3].Coeff(1).Cmp(big.NewRat(-3, 5)) == 0)
	})

	t.Run("ClassicalLegendre", func(t *testing.T) {
		src, err := recurrence.LegendreExact(recurrence.Classical)
		require.NoError(t, err)
		polys, err := TreeSymbolic(src, 2)
		require.NoError(t, err)
		require.True(t, polys[2].Coeff(2).Cmp(big.NewRat(3, 2)) == 0)
		require.True(t, polys[2].Coeff(0).Cmp(big.NewRat(-1, 2)) == 0)
	})

	t.Run("MatchesPointEvaluation", func(t *testing.T) {
		src, err := recurrence.LaguerreGeneralizedExact(big.NewRat(1, 1), recurrence.Monic)
		require.NoError(t, err)
		pt := big.NewRat(7, 3)
		polys, err := TreeSymbolic(src, 5)
		require.NoError(t, err)
		rows, err := TreeExact(src, []*big.Rat{pt}, 5)
		require.NoError(t, err)
		for k := range polys {
			require.True(t, polys[k].Eval(pt).Cmp(rows[k][0]) == 0, "degree %d", k)
		}
	})
}
