// Package quadrature computes Gauss quadrature rules from the recurrence
// coefficients of an orthogonal polynomial family, with the Golub-Welsch
// algorithm in float64 or arbitrary precision, and exactly over the
// rationals through the characteristic polynomial of the Jacobi matrix.
package quadrature

import "math/big"

// GaussRule is the backend-independent view of a computed rule: n nodes in
// strictly increasing order with their positive weights, integrating
// polynomials up to degree 2n-1 exactly against the measure of the family.
type GaussRule interface {
	// Len returns the number of nodes.
	Len() int
	// Node returns the i-th node, smallest first, rounded to prec bits.
	Node(i int, prec uint) *big.Float
	// Weight returns the weight attached to the i-th node, rounded to
	// prec bits.
	Weight(i int, prec uint) *big.Float
	// Fingerprint returns a stable content hash of the rule, independent
	// of how the rule was computed or refined.
	Fingerprint() [32]byte
}

// Rule is a Gauss rule in IEEE double precision.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Len returns the number of nodes.
func (r *Rule) Len() int { return len(r.Nodes) }

// Node returns the i-th node rounded to prec bits.
func (r *Rule) Node(i int, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(r.Nodes[i])
}

// Weight returns the i-th weight rounded to prec bits.
func (r *Rule) Weight(i int, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(r.Weights[i])
}

// Integrate applies the rule to f.
func (r *Rule) Integrate(f func(float64) float64) float64 {
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}
	return sum
}

// BigRule is a Gauss rule in arbitrary precision. All entries carry Prec
// mantissa bits.
type BigRule struct {
	Prec    uint
	Nodes   []*big.Float
	Weights []*big.Float
}

// Len returns the number of nodes.
func (r *BigRule) Len() int { return len(r.Nodes) }

// Node returns the i-th node rounded to prec bits.
func (r *BigRule) Node(i int, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(r.Nodes[i])
}

// Weight returns the i-th weight rounded to prec bits.
func (r *BigRule) Weight(i int, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(r.Weights[i])
}

// Integrate applies the rule to f. Arguments reach f as fresh copies at
// the precision of the rule, and the sum is accumulated at that precision.
func (r *BigRule) Integrate(f func(*big.Float) *big.Float) *big.Float {
	sum := new(big.Float).SetPrec(r.Prec)
	tmp := new(big.Float).SetPrec(r.Prec)
	for i, x := range r.Nodes {
		tmp.Mul(r.Weights[i], f(new(big.Float).Copy(x)))
		sum.Add(sum, tmp)
	}
	return sum
}
