// Package basis evaluates orthogonal polynomial sequences through their
// three-term recurrence, one degree at a time, over batches of points.
//
// Iterators pull recurrence coefficients from their source only when a row
// needs them, so families backed by expensive coefficients pay for exactly
// the degrees they produce. Monic and classical sequences never read the
// total mass Beta(0); normalized sequences read it once, for the seed row.
package basis

import (
	"fmt"
	"math"

	"github.com/specfun/orthoquad/recurrence"
)

// Iterator produces the rows of an orthogonal polynomial table over a
// fixed batch of points, in increasing degree.
//
// Monic and classical sequences are advanced with the monic recurrence
//
//	p_{k+1}(x) = (x - alpha_k) p_k(x) - beta_k p_{k-1}(x),
//
// classical rows being scaled on emission. Normalized sequences use the
// equivalent normalized recurrence, which divides each row by sqrt(beta)
// as it is produced and is better conditioned than scaling after the fact.
type Iterator struct {
	src        recurrence.Float64Source
	x          []float64
	classical  bool
	normalized bool
	k          int
	prev, cur  []float64
	sqrtBeta   float64
}

// NewIterator returns an iterator over the polynomial sequence of src
// evaluated at the points x.
func NewIterator(src recurrence.Float64Source, x []float64) *Iterator {
	std := src.Standardization()
	return &Iterator{
		src:        src,
		x:          append([]float64(nil), x...),
		classical:  std == recurrence.Classical,
		normalized: std.IsNormalized(),
	}
}

// Degree returns the degree of the row that the next call to Next
// produces.
func (it *Iterator) Degree() int { return it.k }

// Next returns the values of the polynomial of degree Degree() at the
// evaluation points and advances the iterator. The returned slice is owned
// by the caller. It returns recurrence.ErrNonPositiveBeta if the source
// produces an invalid coefficient for this row.
func (it *Iterator) Next() ([]float64, error) {
	if it.k == 0 {
		seed := 1.0
		if it.normalized {
			b0 := it.src.Beta(0)
			if !(b0 > 0) {
				return nil, fmt.Errorf("cannot Next: beta[0]=%v: %w", b0, recurrence.ErrNonPositiveBeta)
			}
			seed = 1 / math.Sqrt(b0)
		}
		it.cur = make([]float64, len(it.x))
		it.prev = make([]float64, len(it.x))
		for i := range it.cur {
			it.cur[i] = seed
		}
	} else if it.normalized {
		a := it.src.Alpha(it.k - 1)
		bk := it.src.Beta(it.k)
		if !(bk > 0) {
			return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k, bk, recurrence.ErrNonPositiveBeta)
		}
		sq := math.Sqrt(bk)
		for i, xi := range it.x {
			next := ((xi-a)*it.cur[i] - it.sqrtBeta*it.prev[i]) / sq
			it.prev[i] = it.cur[i]
			it.cur[i] = next
		}
		it.sqrtBeta = sq
	} else {
		a := it.src.Alpha(it.k - 1)
		b := 0.0
		if it.k >= 2 {
			if b = it.src.Beta(it.k - 1); !(b > 0) {
				return nil, fmt.Errorf("cannot Next: beta[%d]=%v: %w", it.k-1, b, recurrence.ErrNonPositiveBeta)
			}
		}
		for i, xi := range it.x {
			next := (xi-a)*it.cur[i] - b*it.prev[i]
			it.prev[i] = it.cur[i]
			it.cur[i] = next
		}
	}

	out := make([]float64, len(it.x))
	if it.classical {
		s := it.src.Scale(it.k)
		for i := range out {
			out[i] = s * it.cur[i]
		}
	} else {
		copy(out, it.cur)
	}
	it.k++
	return out, nil
}

// Tree returns the polynomial table of src at the points x, one row per
// degree from 0 to n inclusive.
func Tree(src recurrence.Float64Source, x []float64, n int) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot Tree: negative maximum degree %d", n)
	}
	it := NewIterator(src, x)
	rows := make([][]float64, n+1)
	for k := range rows {
		row, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("cannot Tree: %w", err)
		}
		rows[k] = row
	}
	return rows, nil
}
