package bits

import (
	"math/rand/v2"
	"sync"
)

// RandomSource supplies the random choices made while building bits.
type RandomSource interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Flip returns a fair coin toss.
	Flip() bool
}

type globalSource struct{}

// NewRandom returns a source backed by the process-wide math/rand/v2 generator,
// which is safe for concurrent use.
func NewRandom() RandomSource {
	return globalSource{}
}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func (globalSource) Flip() bool { return rand.IntN(2) == 1 }

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible source. Draws are serialized with a mutex.
func NewSeeded(seed uint64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *seededSource) Flip() bool {
	return s.IntN(2) == 1
}
