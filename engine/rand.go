package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies random integers for spawn decisions
// Swappable so tests can pin the catalog pick and column sequence
type Source interface {
	Intn(n int) int
}

// lockedSource wraps math/rand with a mutex so a shared source stays
// usable if a test ever drives the session from more than one goroutine
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a seeded random source; seed 0 derives one from the clock
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform random int in [0, n)
func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
