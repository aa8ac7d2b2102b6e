package sampling

import (
	"encoding/binary"
	"io"
	"math/big"
)

// Float64 draws a uniform float64 in [min, max) from r.
func Float64(r io.Reader, min, max float64) float64 {
	b := make([]byte, 8)
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	f := float64(binary.LittleEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Float64Slice draws n uniform float64 values in [min, max) from r.
func Float64Slice(r io.Reader, n int, min, max float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = Float64(r, min, max)
	}
	return s
}

// BigFloat draws a uniform value in [min, max) from r with prec bits of
// precision.
func BigFloat(r io.Reader, min, max float64, prec uint) *big.Float {
	nbytes := int(prec+7)/8 + 1
	b := make([]byte, nbytes)
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	f := new(big.Float).SetPrec(prec).SetInt(new(big.Int).SetBytes(b))
	den := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(8*nbytes)))
	f.Quo(f, den)
	span := new(big.Float).SetPrec(prec).SetFloat64(max - min)
	f.Mul(f, span)
	return f.Add(f, new(big.Float).SetPrec(prec).SetFloat64(min))
}

// Rat draws a rational with numerator in [-bound, bound] and denominator in
// [1, bound] from r.
func Rat(r io.Reader, bound int64) *big.Rat {
	if bound < 1 {
		panic("cannot Rat: bound must be at least 1")
	}
	b := make([]byte, 16)
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	num := int64(binary.LittleEndian.Uint64(b[:8])%uint64(2*bound+1)) - bound
	den := int64(binary.LittleEndian.Uint64(b[8:])%uint64(bound)) + 1
	return big.NewRat(num, den)
}
