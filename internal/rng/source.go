package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness the sampler draws from. *math/rand.Rand and
// *CSPRNG both satisfy it.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSeeded returns a reproducible source. It is not safe for concurrent use.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewDefault returns the CSPRNG, or a time-seeded math/rand source when the
// system entropy pool is unavailable.
func NewDefault() (Source, error) {
	c, err := NewCSPRNG()
	if err != nil {
		return NewSeeded(time.Now().UnixNano()), err
	}
	return c, nil
}
