package quadrature

import (
	"fmt"
	"math/big"

	"github.com/specfun/orthoquad/recurrence"
	"github.com/specfun/orthoquad/utils/ratpoly"
)

// ExactRule is a Gauss rule held exactly over the rationals: the nodes are
// the real algebraic roots of the characteristic polynomial of the Jacobi
// matrix, and the weights are the values of a rational weight polynomial
// at those nodes. Floating queries refine the node enclosures on demand,
// so an ExactRule must not be shared between concurrent goroutines.
type ExactRule struct {
	beta0    *big.Rat
	charpoly *ratpoly.Poly
	weight   *ratpoly.Poly
	nodes    []*ratpoly.Algebraic
}

// GaussExact computes the n-point Gauss rule of the measure behind src
// exactly. The nodes come out of Sturm isolation on the characteristic
// polynomial and the weights out of the Christoffel function, inverted
// modulo the characteristic polynomial.
func GaussExact(src recurrence.ExactSource, n int) (*ExactRule, error) {
	if n < 1 {
		return nil, fmt.Errorf("cannot GaussExact: rule order %d: %w", n, ErrInvalidOrder)
	}
	alpha, beta, err := recurrence.TakeExact(src, n)
	if err != nil {
		return nil, fmt.Errorf("cannot GaussExact: %w", err)
	}
	rule, err := gaussExactFromCoeffs(alpha, beta)
	if err != nil {
		return nil, fmt.Errorf("cannot GaussExact: %w", err)
	}
	return rule, nil
}

func gaussExactFromCoeffs(alpha, beta []*big.Rat) (*ExactRule, error) {
	n := len(alpha)

	// pk[k] is the monic orthogonal polynomial of degree k, which is also
	// the characteristic polynomial of the order-k leading minor of the
	// Jacobi matrix
	pk := make([]*ratpoly.Poly, n+1)
	pk[0] = ratpoly.NewPolyInt64(1)
	for k := 0; k < n; k++ {
		next := ratpoly.X().Sub(ratpoly.Constant(alpha[k])).Mul(pk[k])
		if k >= 1 {
			next = next.Sub(pk[k-1].Scale(beta[k]))
		}
		pk[k+1] = next
	}
	charpoly := pk[n]

	if !charpoly.IsSquareFree() {
		return nil, fmt.Errorf("characteristic polynomial %v: %w", charpoly, ErrDegenerateSpectrum)
	}

	// Christoffel sum S = sum_k pk^2/h_k with h_k = beta_0...beta_k. The
	// weight of a node is 1/S there, so inverting S modulo the
	// characteristic polynomial yields the weights as a polynomial.
	S := ratpoly.NewPolyInt64()
	h := new(big.Rat).Set(beta[0])
	inv := new(big.Rat)
	for k := 0; k < n; k++ {
		if k > 0 {
			h.Mul(h, beta[k])
		}
		S = S.Add(pk[k].Mul(pk[k]).Scale(inv.Inv(h)))
	}
	weight, err := ratpoly.InverseMod(S, charpoly)
	if err != nil {
		// S is a sum of squares with a strictly positive constant term,
		// so it cannot vanish at a real root of the characteristic
		// polynomial
		panic(fmt.Errorf("Christoffel sum not invertible: %w", err))
	}

	nodes := ratpoly.IsolateRoots(charpoly)
	if len(nodes) != n {
		panic(fmt.Errorf("characteristic polynomial of degree %d with %d real roots", n, len(nodes)))
	}

	return &ExactRule{
		beta0:    new(big.Rat).Set(beta[0]),
		charpoly: charpoly,
		weight:   weight,
		nodes:    nodes,
	}, nil
}

// Len returns the number of nodes.
func (r *ExactRule) Len() int { return len(r.nodes) }

// Node returns the i-th node, smallest first, rounded to prec bits.
func (r *ExactRule) Node(i int, prec uint) *big.Float {
	return r.nodes[i].Float(prec)
}

// Weight returns the weight of the i-th node rounded to prec bits. For a
// node that collapsed to a rational the weight is evaluated exactly; for
// an algebraic node the weight polynomial is evaluated on an enclosure
// refined with guard bits beyond prec.
func (r *ExactRule) Weight(i int, prec uint) *big.Float {
	node := r.nodes[i]
	if x, ok := node.Rat(); ok {
		return new(big.Float).SetPrec(prec).SetRat(r.weight.Eval(x))
	}
	x := node.Float(prec + 64)
	return new(big.Float).SetPrec(prec).Set(r.weight.EvalFloat(x))
}

// AlgebraicNode returns the i-th node as an algebraic number. The returned
// value shares the rule's enclosure state.
func (r *ExactRule) AlgebraicNode(i int) *ratpoly.Algebraic { return r.nodes[i] }

// TotalMass returns the total mass of the measure, Beta(0).
func (r *ExactRule) TotalMass() *big.Rat { return new(big.Rat).Set(r.beta0) }

// CharacteristicPolynomial returns the monic polynomial whose roots are
// the nodes.
func (r *ExactRule) CharacteristicPolynomial() *ratpoly.Poly { return r.charpoly.Clone() }

// WeightPolynomial returns the polynomial whose value at each node is the
// weight of that node.
func (r *ExactRule) WeightPolynomial() *ratpoly.Poly { return r.weight.Clone() }

// WeightSum returns the exact sum of all weights. For a valid rule it
// equals the total mass.
func (r *ExactRule) WeightSum() *big.Rat {
	return ratpoly.SumOverRoots(r.weight, r.charpoly)
}

// IntegratePoly integrates q exactly against the measure of the rule,
// summing weight times q over the nodes through power sums rather than
// through the individual roots. The result is exact for q up to degree
// 2n-1.
func (r *ExactRule) IntegratePoly(q *ratpoly.Poly) *big.Rat {
	if q.IsZero() {
		return new(big.Rat)
	}
	return ratpoly.SumOverRoots(r.weight.Mul(q).Rem(r.charpoly), r.charpoly)
}
