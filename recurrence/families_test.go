package recurrence

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardization(t *testing.T) {
	require.Equal(t, "monic", Monic.String())
	require.Equal(t, "classical", Classical.String())
	require.Equal(t, "orthonormal", Orthonormal.String())
	require.Equal(t, "probabilist", Probabilist.String())
	require.Equal(t, "physicist", Physicist.String())
	require.Equal(t, "Standardization(17)", Standardization(17).String())

	require.False(t, Monic.IsNormalized())
	require.False(t, Classical.IsNormalized())
	require.True(t, Orthonormal.IsNormalized())
	require.True(t, Probabilist.IsNormalized())
	require.True(t, Physicist.IsNormalized())
}

// requireAgree checks that the float64, big.Float and exact views of a
// family produce the same coefficients.
func requireAgree(t *testing.T, f Float64Source, b BigFloatSource, e ExactSource, n int) {
	t.Helper()
	for k := 0; k < n; k++ {
		ba, _ := b.Alpha(k).Float64()
		bb, _ := b.Beta(k).Float64()
		require.InDelta(t, f.Alpha(k), ba, 1e-14, "alpha[%d]", k)
		require.InDelta(t, f.Beta(k), bb, 1e-14, "beta[%d]", k)
		if e != nil {
			ea, _ := e.Alpha(k).Float64()
			eb, _ := e.Beta(k).Float64()
			require.InDelta(t, f.Alpha(k), ea, 1e-14, "alpha[%d]", k)
			require.InDelta(t, f.Beta(k), eb, 1e-14, "beta[%d]", k)
		}
	}
}

func TestLegendre(t *testing.T) {

	t.Run("Coefficients", func(t *testing.T) {
		src, err := LegendreFloat64(Monic)
		require.NoError(t, err)
		require.Equal(t, Monic, src.Standardization())
		require.Equal(t, 0.0, src.Alpha(3))
		require.Equal(t, 2.0, src.Beta(0))
		require.Equal(t, 1.0/3.0, src.Beta(1))
		require.Equal(t, 4.0/15.0, src.Beta(2))
		require.Equal(t, 9.0/35.0, src.Beta(3))
		require.Equal(t, 1.0, src.Scale(5))
	})

	t.Run("ClassicalScale", func(t *testing.T) {
		src, err := LegendreFloat64(Classical)
		require.NoError(t, err)
		require.Equal(t, 1.0, src.Scale(0))
		require.Equal(t, 1.0, src.Scale(1))
		require.Equal(t, 1.5, src.Scale(2))
		require.Equal(t, 2.5, src.Scale(3))

		exact, err := LegendreExact(Classical)
		require.NoError(t, err)
		require.True(t, exact.Scale(3).Cmp(big.NewRat(5, 2)) == 0)
	})

	t.Run("CrossDomain", func(t *testing.T) {
		f, err := LegendreFloat64(Monic)
		require.NoError(t, err)
		b, err := LegendreBig(128, Monic)
		require.NoError(t, err)
		require.Equal(t, uint(128), b.Prec())
		e, err := LegendreExact(Monic)
		require.NoError(t, err)
		requireAgree(t, f, b, e, 8)
	})

	t.Run("UnknownStandardization", func(t *testing.T) {
		_, err := LegendreFloat64(Probabilist)
		require.ErrorIs(t, err, ErrUnknownStandardization)
		_, err = LegendreBig(128, Physicist)
		require.ErrorIs(t, err, ErrUnknownStandardization)
		_, err = LegendreExact(Standardization(42))
		require.ErrorIs(t, err, ErrUnknownStandardization)
	})

	t.Run("ZeroPrecision", func(t *testing.T) {
		_, err := LegendreBig(0, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestChebyshev(t *testing.T) {

	t.Run("FirstKind", func(t *testing.T) {
		src, err := Chebyshev1Float64(Classical)
		require.NoError(t, err)
		require.Equal(t, math.Pi, src.Beta(0))
		require.Equal(t, 0.5, src.Beta(1))
		require.Equal(t, 0.25, src.Beta(7))
		require.Equal(t, 1.0, src.Scale(0))
		require.Equal(t, 1.0, src.Scale(1))
		require.Equal(t, 2.0, src.Scale(2))
		require.Equal(t, 4.0, src.Scale(3))

		b, err := Chebyshev1Big(256, Classical)
		require.NoError(t, err)
		requireAgree(t, src, b, nil, 8)
		s3, _ := b.Scale(3).Float64()
		require.Equal(t, 4.0, s3)
	})

	t.Run("SecondKind", func(t *testing.T) {
		src, err := Chebyshev2Float64(Classical)
		require.NoError(t, err)
		require.Equal(t, math.Pi/2, src.Beta(0))
		require.Equal(t, 0.25, src.Beta(1))
		require.Equal(t, 0.25, src.Beta(7))
		require.Equal(t, 8.0, src.Scale(3))

		b, err := Chebyshev2Big(256, Monic)
		require.NoError(t, err)
		requireAgree(t, src, b, nil, 8)
	})

	t.Run("NoExactDomain", func(t *testing.T) {
		_, err := Chebyshev1Exact(Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
		_, err = Chebyshev2Exact(Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
	})
}

func TestJacobi(t *testing.T) {

	t.Run("ReducesToLegendre", func(t *testing.T) {
		jac, err := JacobiFloat64(0, 0, Classical)
		require.NoError(t, err)
		leg, err := LegendreFloat64(Classical)
		require.NoError(t, err)
		for k := 0; k < 8; k++ {
			require.InDelta(t, leg.Alpha(k), jac.Alpha(k), 1e-15, "alpha[%d]", k)
			require.InDelta(t, leg.Beta(k), jac.Beta(k), 1e-15, "beta[%d]", k)
			require.InDelta(t, leg.Scale(k), jac.Scale(k), 1e-14, "scale[%d]", k)
		}
	})

	t.Run("ReducesToChebyshev", func(t *testing.T) {
		jac, err := JacobiFloat64(-0.5, -0.5, Monic)
		require.NoError(t, err)
		che, err := Chebyshev1Float64(Monic)
		require.NoError(t, err)
		for k := 0; k < 8; k++ {
			require.InDelta(t, che.Beta(k), jac.Beta(k), 1e-15, "beta[%d]", k)
			require.Equal(t, 0.0, jac.Alpha(k))
		}
	})

	t.Run("BigMass", func(t *testing.T) {
		b, err := JacobiBig(0.5, 0.5, 192, Monic)
		require.NoError(t, err)
		// 2^2 Gamma(3/2)^2 / Gamma(3) = Pi/2
		want := new(big.Float).Quo(pi192(), big.NewFloat(2))
		diff := new(big.Float).Sub(b.Beta(0), want)
		require.LessOrEqual(t, diff.Abs(diff).Cmp(big.NewFloat(1e-50)), 0)
	})

	t.Run("Asymmetric", func(t *testing.T) {
		src, err := JacobiFloat64(1, 2, Monic)
		require.NoError(t, err)
		// 2^4 1! 2! / 4! = 4/3
		require.InDelta(t, 4.0/3.0, src.Beta(0), 1e-14)
		require.InDelta(t, (2.0-1.0)/(1.0+2.0+2.0), src.Alpha(0), 1e-15)

		e, err := JacobiExact(big.NewRat(1, 1), big.NewRat(2, 1), Monic)
		require.NoError(t, err)
		require.True(t, e.Beta(0).Cmp(big.NewRat(4, 3)) == 0)

		b, err := JacobiBig(1, 2, 128, Monic)
		require.NoError(t, err)
		requireAgree(t, src, b, e, 8)
	})

	t.Run("ExactInteger", func(t *testing.T) {
		e, err := JacobiExact(big.NewRat(1, 1), big.NewRat(1, 1), Monic)
		require.NoError(t, err)
		require.True(t, e.Beta(0).Cmp(big.NewRat(4, 3)) == 0)
	})

	t.Run("ExactNonInteger", func(t *testing.T) {
		_, err := JacobiExact(big.NewRat(1, 2), big.NewRat(0, 1), Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
	})

	t.Run("ParameterRange", func(t *testing.T) {
		_, err := JacobiFloat64(-1, 0, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = JacobiFloat64(0, math.NaN(), Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = JacobiBig(0, -1.5, 128, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = JacobiExact(big.NewRat(-3, 2), big.NewRat(0, 1), Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

// pi192 returns Pi at 192 bits.
func pi192() *big.Float {
	pi, _, err := big.ParseFloat("3.14159265358979323846264338327950288419716939937510582097494459", 10, 192, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return pi
}

func TestGegenbauer(t *testing.T) {

	t.Run("DelegatesToJacobi", func(t *testing.T) {
		geg, err := GegenbauerFloat64(1, Monic)
		require.NoError(t, err)
		jac, err := JacobiFloat64(0.5, 0.5, Monic)
		require.NoError(t, err)
		for k := 0; k < 8; k++ {
			require.Equal(t, jac.Beta(k), geg.Beta(k), "beta[%d]", k)
			require.Equal(t, jac.Alpha(k), geg.Alpha(k), "alpha[%d]", k)
		}
		// lambda = 1 is the second-kind Chebyshev weight
		require.InDelta(t, math.Pi/2, geg.Beta(0), 1e-15)
	})

	t.Run("Exact", func(t *testing.T) {
		e, err := GegenbauerExact(big.NewRat(3, 2), Monic)
		require.NoError(t, err)
		require.True(t, e.Beta(0).Cmp(big.NewRat(4, 3)) == 0)

		_, err = GegenbauerExact(big.NewRat(1, 3), Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
	})

	t.Run("ParameterRange", func(t *testing.T) {
		_, err := GegenbauerFloat64(-0.5, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = GegenbauerBig(-1, 128, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestLaguerre(t *testing.T) {

	t.Run("Plain", func(t *testing.T) {
		src, err := LaguerreFloat64(Monic)
		require.NoError(t, err)
		require.Equal(t, 1.0, src.Beta(0))
		require.Equal(t, 1.0, src.Alpha(0))
		require.Equal(t, 3.0, src.Alpha(1))
		require.Equal(t, 1.0, src.Beta(1))
		require.Equal(t, 4.0, src.Beta(2))
		require.Equal(t, 9.0, src.Beta(3))
	})

	t.Run("Generalized", func(t *testing.T) {
		src, err := LaguerreGeneralizedFloat64(1, Monic)
		require.NoError(t, err)
		require.InDelta(t, 1.0, src.Beta(0), 1e-15)
		require.Equal(t, 2.0, src.Alpha(0))
		require.Equal(t, 4.0, src.Alpha(1))
		require.Equal(t, 2.0, src.Beta(1))
		require.Equal(t, 6.0, src.Beta(2))

		e, err := LaguerreGeneralizedExact(big.NewRat(1, 1), Monic)
		require.NoError(t, err)
		b, err := LaguerreGeneralizedBig(1, 128, Monic)
		require.NoError(t, err)
		requireAgree(t, src, b, e, 8)
	})

	t.Run("ExactMass", func(t *testing.T) {
		e, err := LaguerreGeneralizedExact(big.NewRat(2, 1), Monic)
		require.NoError(t, err)
		require.True(t, e.Beta(0).Cmp(big.NewRat(2, 1)) == 0)

		e, err = LaguerreExact(Monic)
		require.NoError(t, err)
		require.True(t, e.Beta(0).Cmp(big.NewRat(1, 1)) == 0)
	})

	t.Run("ClassicalScale", func(t *testing.T) {
		src, err := LaguerreFloat64(Classical)
		require.NoError(t, err)
		require.Equal(t, 1.0, src.Scale(0))
		require.Equal(t, -1.0, src.Scale(1))
		require.Equal(t, 0.5, src.Scale(2))
		require.Equal(t, -1.0/6.0, src.Scale(3))
	})

	t.Run("ExactNonInteger", func(t *testing.T) {
		_, err := LaguerreGeneralizedExact(big.NewRat(1, 2), Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
	})

	t.Run("ParameterRange", func(t *testing.T) {
		_, err := LaguerreGeneralizedFloat64(-1, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
		_, err = LaguerreGeneralizedBig(-2, 128, Monic)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestHermite(t *testing.T) {

	t.Run("Physicist", func(t *testing.T) {
		src, err := HermitePhysicistFloat64(Classical)
		require.NoError(t, err)
		require.Equal(t, math.Sqrt(math.Pi), src.Beta(0))
		require.Equal(t, 0.5, src.Beta(1))
		require.Equal(t, 1.0, src.Beta(2))
		require.Equal(t, 1.5, src.Beta(3))
		require.Equal(t, 0.0, src.Alpha(4))
		require.Equal(t, 8.0, src.Scale(3))

		b, err := HermitePhysicistBig(128, Classical)
		require.NoError(t, err)
		requireAgree(t, src, b, nil, 8)
	})

	t.Run("Probabilist", func(t *testing.T) {
		src, err := HermiteProbabilistFloat64(Classical)
		require.NoError(t, err)
		require.Equal(t, math.Sqrt(2*math.Pi), src.Beta(0))
		require.Equal(t, 1.0, src.Beta(1))
		require.Equal(t, 2.0, src.Beta(2))
		// He_k is monic already
		require.Equal(t, 1.0, src.Scale(3))

		b, err := HermiteProbabilistBig(128, Monic)
		require.NoError(t, err)
		requireAgree(t, src, b, nil, 8)
	})

	t.Run("Aliases", func(t *testing.T) {
		_, err := HermitePhysicistFloat64(Physicist)
		require.NoError(t, err)
		_, err = HermiteProbabilistFloat64(Probabilist)
		require.NoError(t, err)
		_, err = HermitePhysicistFloat64(Probabilist)
		require.ErrorIs(t, err, ErrUnknownStandardization)
		_, err = HermiteProbabilistBig(128, Physicist)
		require.ErrorIs(t, err, ErrUnknownStandardization)
	})

	t.Run("NoExactDomain", func(t *testing.T) {
		_, err := HermitePhysicistExact(Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
		_, err = HermiteProbabilistExact(Monic)
		require.ErrorIs(t, err, ErrDomainMismatch)
	})
}

type brokenFloat64Source struct {
	betas []float64
}

func (s brokenFloat64Source) Standardization() Standardization { return Monic }
func (s brokenFloat64Source) Alpha(k int) float64              { return 0 }
func (s brokenFloat64Source) Beta(k int) float64               { return s.betas[k] }
func (s brokenFloat64Source) Scale(k int) float64              { return 1 }

type brokenExactSource struct {
	betas []int64
}

func (s brokenExactSource) Standardization() Standardization { return Monic }
func (s brokenExactSource) Alpha(k int) *big.Rat              { return new(big.Rat) }
func (s brokenExactSource) Beta(k int) *big.Rat               { return big.NewRat(s.betas[k], 1) }
func (s brokenExactSource) Scale(k int) *big.Rat              { return big.NewRat(1, 1) }

func TestTake(t *testing.T) {

	t.Run("Float64", func(t *testing.T) {
		src, err := LegendreFloat64(Monic)
		require.NoError(t, err)
		alpha, beta, err := TakeFloat64(src, 5)
		require.NoError(t, err)
		require.Len(t, alpha, 5)
		require.Len(t, beta, 5)
		require.Equal(t, 2.0, beta[0])
	})

	t.Run("NegativeBeta", func(t *testing.T) {
		_, _, err := TakeFloat64(brokenFloat64Source{betas: []float64{1, 1, -1, 1}}, 4)
		require.ErrorIs(t, err, ErrNonPositiveBeta)
		require.ErrorContains(t, err, "beta[2]")
	})

	t.Run("NaNBeta", func(t *testing.T) {
		_, _, err := TakeFloat64(brokenFloat64Source{betas: []float64{1, math.NaN()}}, 2)
		require.ErrorIs(t, err, ErrNonPositiveBeta)
	})

	t.Run("ZeroBetaExact", func(t *testing.T) {
		_, _, err := TakeExact(brokenExactSource{betas: []int64{1, 0}}, 2)
		require.ErrorIs(t, err, ErrNonPositiveBeta)
	})

	t.Run("BigFloat", func(t *testing.T) {
		src, err := Chebyshev1Big(96, Monic)
		require.NoError(t, err)
		alpha, beta, err := TakeBigFloat(src, 4)
		require.NoError(t, err)
		require.Len(t, alpha, 4)
		f, _ := beta[1].Float64()
		require.Equal(t, 0.5, f)
	})
}
