/*
Package orthoquad evaluates orthogonal polynomial families from their
three-term recurrence coefficients and derives Gauss quadrature rules from
the spectral decomposition of the associated Jacobi matrix. Every operation
is available over three interchangeable numeric domains: IEEE float64,
arbitrary-precision big.Float with an explicit per-call precision, and
exact rational arithmetic in which nodes are algebraic numbers and weights
are rational polynomial values.
*/
package orthoquad
