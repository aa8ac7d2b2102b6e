package basis

import (
	"fmt"
	"math"
	"math/big"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/bignum"
)

// Product evaluates the orthonormal basis of a product measure, built by
// taking the same one-dimensional family along every coordinate axis. The
// basis function attached to a multi-index (k_1, ..., k_d) is the product
// of the one-dimensional polynomials of those degrees, and the iterator
// emits one level at a time: level L holds every multi-index of total
// degree L, in ascending lexicographic order.
//
// The total mass of the product measure is supplied by the caller and
// replaces the per-axis masses in the normalization. Passing the d-th
// power of the one-dimensional mass recovers the fully orthonormal basis;
// other values absorb constant prefactors of the weight, such as the
// normalization of a Gaussian density.
type Product struct {
	src         recurrence.Float64Source
	x           [][]float64
	invSqrtMass float64
	level       int
	axes        [][][]float64
	sqrtBeta    []float64
}

// NewProduct returns a product evaluator of dimension dim over the points
// whose coordinates are given per axis: x[d][i] is the d-th coordinate of
// the i-th point. The source must use a normalized standardization, and
// mass is the total mass of the product measure.
func NewProduct(src recurrence.Float64Source, dim int, x [][]float64, mass float64) (*Product, error) {
	if dim < 1 {
		return nil, fmt.Errorf("cannot NewProduct: dimension %d must be at least 1: %w", dim, recurrence.ErrInvalidParameter)
	}
	if std := src.Standardization(); !std.IsNormalized() {
		return nil, fmt.Errorf("cannot NewProduct: product bases require a normalized standardization, got %s: %w", std, recurrence.ErrUnknownStandardization)
	}
	if len(x) != dim {
		return nil, fmt.Errorf("cannot NewProduct: %d coordinate axes for dimension %d: %w", len(x), dim, ErrAxisCountMismatch)
	}
	for d := 1; d < dim; d++ {
		if len(x[d]) != len(x[0]) {
			return nil, fmt.Errorf("cannot NewProduct: axis %d has %d points, axis 0 has %d: %w", d, len(x[d]), len(x[0]), ErrLengthMismatch)
		}
	}
	if !(mass > 0) {
		return nil, fmt.Errorf("cannot NewProduct: total mass %v: %w", mass, ErrNonPositiveMass)
	}
	xs := make([][]float64, dim)
	for d := range xs {
		xs[d] = append([]float64(nil), x[d]...)
	}
	return &Product{
		src:         src,
		x:           xs,
		invSqrtMass: 1 / math.Sqrt(mass),
		axes:        make([][][]float64, dim),
	}, nil
}

// Level returns the total degree of the level that the next call to Next
// or NextWithDegrees produces.
func (p *Product) Level() int { return p.level }

// NextWithDegrees returns the basis values of the next level together with
// their multi-indices: vals[j][i] is the value of the basis function with
// multi-index degrees[j] at the i-th point.
func (p *Product) NextWithDegrees() (vals [][]float64, degrees [][]int, err error) {
	L := p.level
	if err := p.growTo(L); err != nil {
		return nil, nil, fmt.Errorf("cannot NextWithDegrees: %w", err)
	}
	degrees = compositions(L, len(p.x))
	npts := len(p.x[0])
	vals = make([][]float64, len(degrees))
	for j, idx := range degrees {
		row := make([]float64, npts)
		for i := range row {
			v := p.invSqrtMass
			for d, k := range idx {
				v *= p.axes[d][k][i]
			}
			row[i] = v
		}
		vals[j] = row
	}
	p.level++
	return vals, degrees, nil
}

// Next returns the basis values of the next level, discarding the
// multi-indices.
func (p *Product) Next() ([][]float64, error) {
	vals, _, err := p.NextWithDegrees()
	return vals, err
}

// growTo extends the per-axis tables up to degree n. The one-dimensional
// rows follow the normalized recurrence with the mass term left out; the
// external mass supplied at construction replaces it.
func (p *Product) growTo(n int) error {
	for k := len(p.sqrtBeta); k <= n; k++ {
		if k == 0 {
			for d := range p.axes {
				row := make([]float64, len(p.x[d]))
				for i := range row {
					row[i] = 1
				}
				p.axes[d] = append(p.axes[d], row)
			}
			p.sqrtBeta = append(p.sqrtBeta, 0)
			continue
		}
		a := p.src.Alpha(k - 1)
		bk := p.src.Beta(k)
		if !(bk > 0) {
			return fmt.Errorf("beta[%d]=%v: %w", k, bk, recurrence.ErrNonPositiveBeta)
		}
		sq := math.Sqrt(bk)
		for d := range p.axes {
			cur := p.axes[d][k-1]
			row := make([]float64, len(p.x[d]))
			for i, xi := range p.x[d] {
				v := (xi - a) * cur[i]
				if k >= 2 {
					v -= p.sqrtBeta[k-1] * p.axes[d][k-2][i]
				}
				row[i] = v / sq
			}
			p.axes[d] = append(p.axes[d], row)
		}
		p.sqrtBeta = append(p.sqrtBeta, sq)
	}
	return nil
}

// compositions returns all ways of writing total as an ordered sum of dim
// non-negative parts, in ascending lexicographic order.
func compositions(total, dim int) [][]int {
	if dim == 1 {
		return [][]int{{total}}
	}
	var out [][]int
	for head := 0; head <= total; head++ {
		for _, tail := range compositions(total-head, dim-1) {
			idx := make([]int, 0, dim)
			idx = append(idx, head)
			idx = append(idx, tail...)
			out = append(out, idx)
		}
	}
	return out
}

// ProductBig is the arbitrary-precision counterpart of Product. All
// arithmetic and all returned values carry the precision of the source.
type ProductBig struct {
	src         recurrence.BigFloatSource
	x           [][]*big.Float
	invSqrtMass *big.Float
	level       int
	axes        [][][]*big.Float
	sqrtBeta    []*big.Float
}

// NewProductBig returns a product evaluator of dimension dim over the
// points whose coordinates are given per axis. The source must use a
// normalized standardization, and mass is the total mass of the product
// measure.
func NewProductBig(src recurrence.BigFloatSource, dim int, x [][]*big.Float, mass *big.Float) (*ProductBig, error) {
	if dim < 1 {
		return nil, fmt.Errorf("cannot NewProductBig: dimension %d must be at least 1: %w", dim, recurrence.ErrInvalidParameter)
	}
	if std := src.Standardization(); !std.IsNormalized() {
		return nil, fmt.Errorf("cannot NewProductBig: product bases require a normalized standardization, got %s: %w", std, recurrence.ErrUnknownStandardization)
	}
	if len(x) != dim {
		return nil, fmt.Errorf("cannot NewProductBig: %d coordinate axes for dimension %d: %w", len(x), dim, ErrAxisCountMismatch)
	}
	for d := 1; d < dim; d++ {
		if len(x[d]) != len(x[0]) {
			return nil, fmt.Errorf("cannot NewProductBig: axis %d has %d points, axis 0 has %d: %w", d, len(x[d]), len(x[0]), ErrLengthMismatch)
		}
	}
	if mass.Sign() <= 0 {
		return nil, fmt.Errorf("cannot NewProductBig: total mass %v: %w", mass, ErrNonPositiveMass)
	}

	prec := src.Prec()
	xs := make([][]*big.Float, dim)
	for d := range xs {
		xs[d] = make([]*big.Float, len(x[d]))
		for i := range x[d] {
			xs[d][i] = new(big.Float).SetPrec(prec).Set(x[d][i])
		}
	}
	inv := new(big.Float).SetPrec(prec).Set(mass)
	inv.Quo(bignum.NewFloat(1, prec), inv.Sqrt(inv))
	return &ProductBig{
		src:         src,
		x:           xs,
		invSqrtMass: inv,
		axes:        make([][][]*big.Float, dim),
	}, nil
}

// Level returns the total degree of the level that the next call to Next
// or NextWithDegrees produces.
func (p *ProductBig) Level() int { return p.level }

// NextWithDegrees returns the basis values of the next level together with
// their multi-indices. The returned values are fresh and owned by the
// caller.
func (p *ProductBig) NextWithDegrees() (vals [][]*big.Float, degrees [][]int, err error) {
	L := p.level
	if err := p.growTo(L); err != nil {
		return nil, nil, fmt.Errorf("cannot NextWithDegrees: %w", err)
	}
	degrees = compositions(L, len(p.x))
	npts := len(p.x[0])
	vals = make([][]*big.Float, len(degrees))
	for j, idx := range degrees {
		row := make([]*big.Float, npts)
		for i := range row {
			v := new(big.Float).Copy(p.invSqrtMass)
			for d, k := range idx {
				v.Mul(v, p.axes[d][k][i])
			}
			row[i] = v
		}
		vals[j] = row
	}
	p.level++
	return vals, degrees, nil
}

// Next returns the basis values of the next level, discarding the
// multi-indices.
func (p *ProductBig) Next() ([][]*big.Float, error) {
	vals, _, err := p.NextWithDegrees()
	return vals, err
}

func (p *ProductBig) growTo(n int) error {
	prec := p.src.Prec()
	for k := len(p.sqrtBeta); k <= n; k++ {
		if k == 0 {
			for d := range p.axes {
				row := make([]*big.Float, len(p.x[d]))
				for i := range row {
					row[i] = bignum.NewFloat(1, prec)
				}
				p.axes[d] = append(p.axes[d], row)
			}
			p.sqrtBeta = append(p.sqrtBeta, bignum.NewFloat(0, prec))
			continue
		}
		a := p.src.Alpha(k - 1)
		bk := p.src.Beta(k)
		if bk.Sign() <= 0 {
			return fmt.Errorf("beta[%d]=%v: %w", k, bk, recurrence.ErrNonPositiveBeta)
		}
		sq := bk.Sqrt(bk)
		t := new(big.Float).SetPrec(prec)
		u := new(big.Float).SetPrec(prec)
		for d := range p.axes {
			cur := p.axes[d][k-1]
			row := make([]*big.Float, len(p.x[d]))
			for i, xi := range p.x[d] {
				t.Sub(xi, a)
				t.Mul(t, cur[i])
				if k >= 2 {
					u.Mul(p.sqrtBeta[k-1], p.axes[d][k-2][i])
					t.Sub(t, u)
				}
				row[i] = new(big.Float).SetPrec(prec).Quo(t, sq)
			}
			p.axes[d] = append(p.axes[d], row)
		}
		p.sqrtBeta = append(p.sqrtBeta, sq)
	}
	return nil
}
