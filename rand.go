package mobius

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the randomness consumed by Warp.Apply: one continuous
// draw for the probability gate and one discrete draw for effect selection.
//
// Implementations must be safe for concurrent use if the Warp is shared
// across goroutines; the sources returned by NewSource and used by default
// are.
type Source interface {
	// Uniform returns a value in [0, 1).
	Uniform() float64

	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a seeded, mutex-guarded Source for reproducible runs.
func NewSource(seed uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Uniform() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// globalSource delegates to the math/rand/v2 top-level generator,
// which is already safe for concurrent use.
type globalSource struct{}

func (globalSource) Uniform() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }
