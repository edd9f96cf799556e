package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_randomizer.go github.com/KirkDiggler/prizedraw/internal/random Randomizer

// Randomizer picks uniformly distributed indexes
type Randomizer interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Source is a seedable, goroutine-safe Randomizer backed by math/rand
type Source struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible draws
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Source {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Source{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniformly distributed value in [0, n)
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.random.Intn(n)
}

// Sample picks n distinct items from pool without replacement, in selection
// order. It is a partial Fisher-Yates shuffle over a copy of pool, so every
// subset and every ordering is equally likely. n is clamped to len(pool).
func Sample[T any](r Randomizer, pool []T, n int) []T {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return []T{}
	}

	remaining := make([]T, len(pool))
	copy(remaining, pool)

	picked := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := r.Intn(len(remaining))
		picked = append(picked, remaining[j])

		// Move the last item into the hole to keep the draw O(1)
		last := len(remaining) - 1
		remaining[j] = remaining[last]
		remaining = remaining[:last]
	}

	return picked
}
