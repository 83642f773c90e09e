package generator

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
)

// RandomSource returns a uniformly distributed integer in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// SourceFunc adapts a plain function to RandomSource.
type SourceFunc func(n int) (int, error)

func (f SourceFunc) Intn(n int) (int, error) {
	return f(n)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use and is
// the source every production code path uses.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random range must be positive, got %d", n)
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a reproducible, non-cryptographic source backed by PCG.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a SeededSource. The same seed always yields the
// same sequence.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random range must be positive, got %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}
