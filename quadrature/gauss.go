package quadrature

import (
	"fmt"
	"math"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils"
)

// Gauss computes the n-point Gauss rule of the measure behind src with the
// Golub-Welsch algorithm: the nodes are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix built from the recurrence coefficients, and
// each weight is the total mass times the squared first component of the
// corresponding normalized eigenvector. Nodes are returned in increasing
// order.
func Gauss(src recurrence.Float64Source, n int) (*Rule, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot Gauss: rule order %d: %w", n, ErrInvalidOrder)
	}
	alpha, beta, err := recurrence.TakeFloat64(src, n)
	if err != nil {
		return nil, fmt.Errorf("cannot Gauss: %w", err)
	}

	d := make([]float64, n)
	e := make([]float64, n)
	z := make([]float64, n)
	copy(d, alpha)
	for k := 1; k < n; k++ {
		e[k-1] = math.Sqrt(beta[k])
	}
	z[0] = 1

	if err := tridiagEigen(d, e, z); err != nil {
		return nil, fmt.Errorf("cannot Gauss: %w", err)
	}

	w := make([]float64, n)
	for j := range w {
		w[j] = beta[0] * z[j] * z[j]
	}
	perm := utils.ArgSort(d)
	return &Rule{
		Nodes:   utils.Permute(d, perm),
		Weights: utils.Permute(w, perm),
	}, nil
}

const maxQLSweeps = 30

// tridiagEigen diagonalizes a symmetric tridiagonal matrix with the
// implicit-shift QL algorithm. On entry d holds the diagonal, e the
// subdiagonal in e[0..n-2], and z an arbitrary row vector. On return d
// holds the eigenvalues, unsorted, e is destroyed, and z has been carried
// through every rotation; a z seeded with the first unit vector therefore
// ends up holding the first component of each normalized eigenvector.
func tridiagEigen(d, e, z []float64) error {
	n := len(d)
	if n == 1 {
		return nil
	}
	const eps = 0x1p-52
	e[n-1] = 0

	for l := 0; l < n; l++ {
		for sweep := 0; ; sweep++ {
			// find the block with a negligible subdiagonal entry
			var m int
			for m = l; m < n-1; m++ {
				dd := math.Abs(d[m]) + math.Abs(d[m+1])
				if math.Abs(e[m]) <= eps*dd {
					break
				}
			}
			if m == l {
				break
			}
			if sweep == maxQLSweeps {
				return fmt.Errorf("block %d..%d after %d sweeps: %w", l, m, sweep, ErrNoConvergence)
			}

			// Wilkinson shift from the leading 2x2
			g := (d[l+1] - d[l]) / (2 * e[l])
			r := math.Hypot(g, 1)
			g = d[m] - d[l] + e[l]/(g+math.Copysign(r, g))
			s, c := 1.0, 1.0
			p := 0.0
			underflow := false
			for i := m - 1; i >= l; i-- {
				f := s * e[i]
				b := c * e[i]
				r = math.Hypot(f, g)
				e[i+1] = r
				if r == 0 {
					// deflate and retry the sweep
					d[i+1] -= p
					e[m] = 0
					underflow = true
					break
				}
				s = f / r
				c = g / r
				g = d[i+1] - p
				r = (d[i]-g)*s + 2*c*b
				p = s * r
				d[i+1] = g + p
				g = c*r - b

				f = z[i+1]
				z[i+1] = s*z[i] + c*f
				z[i] = c*z[i] - s*f
			}
			if underflow {
				continue
			}
			d[l] -= p
			e[l] = g
			e[m] = 0
		}
	}
	return nil
}
