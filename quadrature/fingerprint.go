package quadrature

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/zeebo/blake3"

	"github.com/specfun/orthoquad/utils/ratpoly"
)

// Rule fingerprints are blake3 hashes over a canonical encoding of the
// rule content, domain-separated per representation. Two rules of the
// same type with identical content hash identically; an ExactRule hashes
// its defining rational data only, so refining node enclosures never
// changes its fingerprint.

// Fingerprint returns a stable content hash of the rule.
func (r *Rule) Fingerprint() [32]byte {
	h := blake3.New()
	var buf [8]byte
	h.Write([]byte("rule/f64"))
	binary.LittleEndian.PutUint64(buf[:], uint64(len(r.Nodes)))
	h.Write(buf[:])
	for _, x := range r.Nodes {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h.Write(buf[:])
	}
	for _, w := range r.Weights {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(w))
		h.Write(buf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Fingerprint returns a stable content hash of the rule.
func (r *BigRule) Fingerprint() [32]byte {
	h := blake3.New()
	var buf [8]byte
	h.Write([]byte("rule/big"))
	binary.LittleEndian.PutUint64(buf[:], uint64(r.Prec))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(len(r.Nodes)))
	h.Write(buf[:])
	writeAll := func(xs []*big.Float) {
		for _, x := range xs {
			s := x.Text('x', -1)
			binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
			h.Write(buf[:])
			h.Write([]byte(s))
		}
	}
	writeAll(r.Nodes)
	writeAll(r.Weights)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Fingerprint returns a stable content hash of the rule, covering the
// total mass and the characteristic and weight polynomials.
func (r *ExactRule) Fingerprint() [32]byte {
	h := blake3.New()
	var buf [8]byte
	h.Write([]byte("rule/exact"))
	writeRat := func(x *big.Rat) {
		s := x.RatString()
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	writePoly := func(p *ratpoly.Poly) {
		binary.LittleEndian.PutUint64(buf[:], uint64(p.Degree()+1))
		h.Write(buf[:])
		for i := 0; i <= p.Degree(); i++ {
			writeRat(p.Coeff(i))
		}
	}
	writeRat(r.beta0)
	writePoly(r.charpoly)
	writePoly(r.weight)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
