package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// BitsForDigits returns the number of mantissa bits needed to carry the given
// number of significant decimal digits.
func BitsForDigits(digits uint) uint {
	return uint(math.Ceil(float64(digits+1) * 3.321928094887362))
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int,
// *big.Rat or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Rat:
		y.SetRat(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int, *big.Rat or *big.Float but is %T", x))
	}

	return
}

// Round returns round(x) to the nearest integer.
func Round(x *big.Float) (r *big.Float) {
	r = new(big.Float).Set(x)
	if r.Cmp(new(big.Float)) >= 0 {
		r.Add(r, new(big.Float).SetFloat64(0.5))
	} else {
		r.Sub(r, new(big.Float).SetFloat64(0.5))
	}

	tmp := new(big.Int)
	r.Int(tmp)
	r.SetInt(tmp)
	return
}

// Cos is an iterative arbitrary precision computation of Cos(x)
// Iterative process with an error of ~10^{-0.60206*k} = (1/4)^k after k iterations.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return
}

// Sin is an iterative arbitrary precision computation of Sin(x).
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, new(big.Float).SetInt64(2))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Hypot returns sqrt(x^2 + y^2) with the precision of x. A big.Float
// exponent cannot overflow on squaring, so no rescaling is involved.
func Hypot(x, y *big.Float) (h *big.Float) {
	h = new(big.Float).SetPrec(x.Prec()).Mul(x, x)
	t := new(big.Float).SetPrec(x.Prec()).Mul(y, y)
	h.Add(h, t)
	return h.Sqrt(h)
}

// Log returns ln(x) with the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with the precision of x.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y with the precision of x.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
