package basis

import (
	"fmt"
	"math/big"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/ratpoly"
)

// ExactIterator produces rows of exact rational polynomial values. Rows
// follow the monic recurrence, with the classical scaling applied on
// emission when the source asks for it.
//
// Normalized sequences involve square roots and leave the rational domain,
// so for a normalized source the iterator emits the monic values and
// exposes the squared norms through NormSq; dividing by sqrt(NormSq) in a
// floating domain recovers the normalized values.
type ExactIterator struct {
	src       recurrence.ExactSource
	x         []*big.Rat
	classical bool
	k         int
	prev, cur []*big.Rat
	norm      *big.Rat
	normDeg   int
}

// NewExactIterator returns an iterator over the polynomial sequence of src
// evaluated at the points x.
func NewExactIterator(src recurrence.ExactSource, x []*big.Rat) *ExactIterator {
	xs := make([]*big.Rat, len(x))
	for i := range x {
		xs[i] = new(big.Rat).Set(x[i])
	}
	return &ExactIterator{
		src:       src,
		x:         xs,
		classical: src.Standardization() == recurrence.Classical,
		normDeg:   -1,
	}
}

// Degree returns the degree of the row that the next call to Next
// produces.
func (it *ExactIterator) Degree() int { return it.k }

// Next returns the values of the polynomial of degree Degree() at the
// evaluation points and advances the iterator. The returned values are
// fresh and owned by the caller.
func (it *ExactIterator) Next() ([]*big.Rat, error) {
	if it.k == 0 {
		it.cur = make([]*big.Rat, len(it.x))
		it.prev = make([]*big.Rat, len(it.x))
		for i := range it.cur {
			it.cur[i] = big.NewRat(1, 1)
			it.prev[i] = new(big.Rat)
		}
	} else {
		a := it.src.Alpha(it.k - 1)
		var b *big.Rat
		if it.k >= 2 {
			if b = it.src.Beta(it.k - 1); b.Sign() <= 0 {
				return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k-1, b, recurrence.ErrNonPositiveBeta)
			}
		}
		t := new(big.Rat)
		u := new(big.Rat)
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

	out := make([]*big.Rat, len(it.x))
	if it.classical {
		s := it.src.Scale(it.k)
		for i := range out {
			out[i] = new(big.Rat).Mul(s, it.cur[i])
		}
	} else {
		for i := range out {
			out[i] = new(big.Rat).Set(it.cur[i])
		}
	}
	it.k++
	return out, nil
}

// NormSq returns the squared norm of the monic polynomial of the last row
// returned by Next, that is beta_0 beta_1 ... beta_k for a row of degree
// k. The betas are pulled from the source on the first call that needs
// them.
func (it *ExactIterator) NormSq() (*big.Rat, error) {
	if it.k == 0 {
		return nil, fmt.Errorf("cannot NormSq: no row produced yet")
	}
	deg := it.k - 1
	if it.norm == nil {
		it.norm = big.NewRat(1, 1)
	}
	for j := it.normDeg + 1; j <= deg; j++ {
		b := it.src.Beta(j)
		if b.Sign() <= 0 {
			return nil, fmt.Errorf("cannot NormSq: beta[%d]=%v: %w", j, b, recurrence.ErrNonPositiveBeta)
		}
		it.norm.Mul(it.norm, b)
	}
	it.normDeg = deg
	return new(big.Rat).Set(it.norm), nil
}

// TreeExact returns the exact polynomial table of src at the points x, one
// row per degree from 0 to n inclusive.
func TreeExact(src recurrence.ExactSource, x []*big.Rat, n int) ([][]*big.Rat, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot TreeExact: negative maximum degree %d", n)
	}
	it := NewExactIterator(src, x)
	rows := make([][]*big.Rat, n+1)
	for k := range rows {
		row, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("cannot TreeExact: %w", err)
		}
		rows[k] = row
	}
	return rows, nil
}

// SymbolicIterator produces the polynomials of a sequence themselves, as
// exact rational coefficient vectors, rather than their values at points.
// As with ExactIterator, normalized sources yield the monic polynomials.
type SymbolicIterator struct {
	src       recurrence.ExactSource
	classical bool
	k         int
	prev, cur *ratpoly.Poly
}

// NewSymbolicIterator returns an iterator over the polynomials of src.
func NewSymbolicIterator(src recurrence.ExactSource) *SymbolicIterator {
	return &SymbolicIterator{
		src:       src,
		classical: src.Standardization() == recurrence.Classical,
	}
}

// Degree returns the degree of the polynomial that the next call to Next
// produces.
func (it *SymbolicIterator) Degree() int { return it.k }

// Next returns the polynomial of degree Degree() and advances the
// iterator.
func (it *SymbolicIterator) Next() (*ratpoly.Poly, error) {
	if it.k == 0 {
		it.cur = ratpoly.NewPolyInt64(1)
		it.prev = ratpoly.NewPolyInt64()
	} else {
		step := ratpoly.X().Sub(ratpoly.Constant(it.src.Alpha(it.k - 1)))
		next := step.Mul(it.cur)
		if it.k >= 2 {
			b := it.src.Beta(it.k - 1)
			if b.Sign() <= 0 {
				return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k-1, b, recurrence.ErrNonPositiveBeta)
			}
			next = next.Sub(it.prev.Scale(b))
		}
		it.prev = it.cur
		it.cur = next
	}

	out := it.cur
	if it.classical {
		out = out.Scale(it.src.Scale(it.k))
	}
	it.k++
	return out, nil
}

// TreeSymbolic returns the polynomials of src from degree 0 to n
// inclusive.
func TreeSymbolic(src recurrence.ExactSource, n int) ([]*ratpoly.Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot TreeSymbolic: negative maximum degree %d", n)
	}
	it := NewSymbolicIterator(src)
	polys := make([]*ratpoly.Poly, n+1)
	for k := range polys {
		p, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("cannot TreeSymbolic: %w", err)
		}
		polys[k] = p
	}
	return polys, nil
}
