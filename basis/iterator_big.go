package basis

import (
	"fmt"
	"math/big"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/bignum"
)

// BigIterator is the arbitrary-precision counterpart of Iterator. All
// arithmetic and all returned values carry the precision of the source.
type BigIterator struct {
	src        recurrence.BigFloatSource
	x          []*big.Float
	classical  bool
	normalized bool
	k          int
	prev, cur  []*big.Float
	sqrtBeta   *big.Float
}

// NewBigIterator returns an iterator over the polynomial sequence of src
// evaluated at the points x. The points are copied and rounded to the
// precision of src.
func NewBigIterator(src recurrence.BigFloatSource, x []*big.Float) *BigIterator {
	std := src.Standardization()
	prec := src.Prec()
	xs := make([]*big.Float, len(x))
	for i := range x {
		xs[i] = new(big.Float).SetPrec(prec).Set(x[i])
	}
	return &BigIterator{
		src:        src,
		x:          xs,
		classical:  std == recurrence.Classical,
		normalized: std.IsNormalized(),
		sqrtBeta:   bignum.NewFloat(0, prec),
	}
}

// Degree returns the degree of the row that the next call to Next
// produces.
func (it *BigIterator) Degree() int { return it.k }

// Next returns the values of the polynomial of degree Degree() at the
// evaluation points and advances the iterator. The returned values are
// fresh and owned by the caller.
func (it *BigIterator) Next() ([]*big.Float, error) {
	prec := it.src.Prec()
	if it.k == 0 {
		seed := bignum.NewFloat(1, prec)
		if it.normalized {
			b0 := it.src.Beta(0)
			if b0.Sign() <= 0 {
				return nil, fmt.Errorf("cannot Next: beta[0]=%v: %w", b0, recurrence.ErrNonPositiveBeta)
			}
			seed.Quo(seed, b0.Sqrt(b0))
		}
		it.cur = make([]*big.Float, len(it.x))
		it.prev = make([]*big.Float, len(it.x))
		for i := range it.cur {
			it.cur[i] = new(big.Float).Copy(seed)
			it.prev[i] = bignum.NewFloat(0, prec)
		}
	} else if it.normalized {
		a := it.src.Alpha(it.k - 1)
		bk := it.src.Beta(it.k)
		if bk.Sign() <= 0 {
			return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k, bk, recurrence.ErrNonPositiveBeta)
		}
		sq := bk.Sqrt(bk)
		t := new(big.Float).SetPrec(prec)
		u := new(big.Float).SetPrec(prec)
		for i, xi := range it.x {
			t.Sub(xi, a)
			t.Mul(t, it.cur[i])
			u.Mul(it.sqrtBeta, it.prev[i])
			t.Sub(t, u)
			t.Quo(t, sq)
			it.prev[i].Set(it.cur[i])
			it.cur[i].Set(t)
		}
		it.sqrtBeta = sq
	} else {
		a := it.src.Alpha(it.k - 1)
		var b *big.Float
		if it.k >= 2 {
			if b = it.src.Beta(it.k - 1); b.Sign() <= 0 {
				return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k-1, b, recurrence.ErrNonPositiveBeta)
			}
		}
		t := new(big.Float).SetPrec(prec)
		u := new(big.Float).SetPrec(prec)
		for i, xi := range it.x {
			t.Sub(xi, a)
			t.Mul(t, it.cur[i])
			if b != nil {
				u.Mul(b, it.prev[i])
				t.Sub(t, u)
			}
			it.prev[i].Set(it.cur[i])
			it.cur[i].Set(t)
		}
	}

	out := make([]*big.Float, len(it.x))
	if it.classical {
		s := it.src.Scale(it.k)
		for i := range out {
			out[i] = new(big.Float).Mul(s, it.cur[i])
		}
	} else {
		for i := range out {
			out[i] = new(big.Float).Copy(it.cur[i])
		}
	}
	it.k++
	return out, nil
}

// TreeBig returns the polynomial table of src at the points x, one row per
// degree from 0 to n inclusive.
func TreeBig(src recurrence.BigFloatSource, x []*big.Float, n int) ([][]*big.Float, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot TreeBig: negative maximum degree %d", n)
	}
	it := NewBigIterator(src, x)
	rows := make([][]*big.Float, n+1)
	for k := range rows {
		row, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("cannot TreeBig: %w", err)
		}
		rows[k] = row
	}
	return rows, nil
}
