package quadrature

import (
	"fmt"
	"math/big"

	"github.com/specfun/orthoquad/recurrence"
)

// Backend selects the arithmetic a rule is computed with.
type Backend int

const (
	// Float64 computes rules in IEEE double precision.
	Float64 Backend = iota
	// Big computes rules in arbitrary precision, to the digit count given
	// in Params.
	Big
	// Exact computes rules exactly over the rationals, for families whose
	// recurrence coefficients are rational.
	Exact
)

func (b Backend) String() string {
	switch b {
	case Float64:
		return "float64"
	case Big:
		return "big"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Params selects the backend of a family rule constructor.
type Params struct {
	// Backend is the arithmetic the rule is computed with.
	Backend Backend
	// Digits is the decimal precision of the Big backend; the other
	// backends ignore it.
	Digits int
}

// familyDispatch wires one family's three coefficient sources to the
// backend selected by Params.
type familyDispatch struct {
	name string
	f64  func() (recurrence.Float64Source, error)
	bf   func(prec uint) (recurrence.BigFloatSource, error)
	ex   func() (recurrence.ExactSource, error)
}

func dispatch(fd familyDispatch, n int, p Params) (GaussRule, error) {
	switch p.Backend {
	case Float64:
		src, err := fd.f64()
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		rule, err := Gauss(src, n)
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		return rule, nil
	case Big:
		bits, err := ruleBits(p.Digits)
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		src, err := fd.bf(bits + 64)
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		rule, err := GaussBig(src, n, p.Digits)
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		return rule, nil
	case Exact:
		src, err := fd.ex()
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		rule, err := GaussExact(src, n)
		if err != nil {
			return nil, fmt.Errorf("cannot %s: %w", fd.name, err)
		}
		return rule, nil
	default:
		return nil, fmt.Errorf("cannot %s: backend %s: %w", fd.name, p.Backend, ErrUnsupportedBackend)
	}
}

// ratParam converts a float64 family parameter to its exact binary value.
func ratParam(name string, v float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return nil, fmt.Errorf("parameter %s=%v is not finite: %w", name, v, recurrence.ErrInvalidParameter)
	}
	return r, nil
}

// Legendre returns the n-point Gauss-Legendre rule, which integrates
// polynomials up to degree 2n-1 exactly over [-1, 1].
func Legendre(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Legendre",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.LegendreFloat64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.LegendreBig(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.LegendreExact(recurrence.Monic)
		},
	}, n, p)
}

// Chebyshev1 returns the n-point Gauss-Chebyshev rule of the first kind,
// for the weight 1/sqrt(1-x^2) on [-1, 1].
func Chebyshev1(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Chebyshev1",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.Chebyshev1Float64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.Chebyshev1Big(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.Chebyshev1Exact(recurrence.Monic)
		},
	}, n, p)
}

// Chebyshev2 returns the n-point Gauss-Chebyshev rule of the second kind,
// for the weight sqrt(1-x^2) on [-1, 1].
func Chebyshev2(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Chebyshev2",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.Chebyshev2Float64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.Chebyshev2Big(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.Chebyshev2Exact(recurrence.Monic)
		},
	}, n, p)
}

// Jacobi returns the n-point Gauss-Jacobi rule with parameters a and b,
// for the weight (1-x)^a (1+x)^b on [-1, 1]. The exact backend reads the
// parameters through their binary float64 values and accepts only
// integers.
func Jacobi(a, b float64, n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Jacobi",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.JacobiFloat64(a, b, recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.JacobiBig(a, b, prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			ra, err := ratParam("a", a)
			if err != nil {
				return nil, err
			}
			rb, err := ratParam("b", b)
			if err != nil {
				return nil, err
			}
			return recurrence.JacobiExact(ra, rb, recurrence.Monic)
		},
	}, n, p)
}

// Gegenbauer returns the n-point Gauss-Gegenbauer rule with parameter
// lambda, for the weight (1-x^2)^(lambda-1/2) on [-1, 1].
func Gegenbauer(lambda float64, n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Gegenbauer",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.GegenbauerFloat64(lambda, recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.GegenbauerBig(lambda, prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			rl, err := ratParam("lambda", lambda)
			if err != nil {
				return nil, err
			}
			return recurrence.GegenbauerExact(rl, recurrence.Monic)
		},
	}, n, p)
}

// Laguerre returns the n-point Gauss-Laguerre rule, for the weight
// exp(-x) on [0, inf).
func Laguerre(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Laguerre",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.LaguerreFloat64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.LaguerreBig(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.LaguerreExact(recurrence.Monic)
		},
	}, n, p)
}

// LaguerreGeneralized returns the n-point generalized Gauss-Laguerre rule
// with parameter a, for the weight x^a exp(-x) on [0, inf). The exact
// backend reads the parameter through its binary float64 value and
// accepts only integers.
func LaguerreGeneralized(a float64, n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "LaguerreGeneralized",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.LaguerreGeneralizedFloat64(a, recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.LaguerreGeneralizedBig(a, prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			ra, err := ratParam("a", a)
			if err != nil {
				return nil, err
			}
			return recurrence.LaguerreGeneralizedExact(ra, recurrence.Monic)
		},
	}, n, p)
}

// Hermite returns the n-point Gauss-Hermite rule in the physicists'
// convention, for the weight exp(-x^2) on the real line.
func Hermite(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "Hermite",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.HermitePhysicistFloat64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.HermitePhysicistBig(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.HermitePhysicistExact(recurrence.Monic)
		},
	}, n, p)
}

// HermiteProbabilist returns the n-point Gauss-Hermite rule in the
// probabilists' convention, for the weight exp(-x^2/2) on the real line.
func HermiteProbabilist(n int, p Params) (GaussRule, error) {
	return dispatch(familyDispatch{
		name: "HermiteProbabilist",
		f64: func() (recurrence.Float64Source, error) {
			return recurrence.HermiteProbabilistFloat64(recurrence.Monic)
		},
		bf: func(prec uint) (recurrence.BigFloatSource, error) {
			return recurrence.HermiteProbabilistBig(prec, recurrence.Monic)
		},
		ex: func() (recurrence.ExactSource, error) {
			return recurrence.HermiteProbabilistExact(recurrence.Monic)
		},
	}, n, p)
}
