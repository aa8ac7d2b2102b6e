// Package sampling implements deterministic sampling of scalar values from a
// keyed pseudo-random byte stream, used to generate reproducible test data.
package sampling

import (
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a deterministic pseudo-random byte stream expanded from a key
// with the blake2b hash function. Two instances built from the same key
// produce the same stream. Reads are serialized by a mutex, but interleaving
// reads from multiple goroutines still breaks reproducibility, so a single
// instance should be driven from one goroutine.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG into sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
