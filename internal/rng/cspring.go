// internal/rng/cspring.go
package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// CSPRNG uses AES-CTR under the hood. It is seeded once from crypto/rand and
// is safe for concurrent use.
type CSPRNG struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// NewCSPRNG initializes an AES-CTR generator seeded from crypto/rand.
func NewCSPRNG() (*CSPRNG, error) {
	// 256-bit AES key
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("rng: failed to get seed from crypto/rand: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("rng: aes.NewCipher failed: %w", err)
	}

	var iv [aes.BlockSize]byte
	if _, err := io.ReadFull(rand.Reader, iv[:]); err != nil {
		return nil, fmt.Errorf("rng: failed to get IV from crypto/rand: %w", err)
	}

	return &CSPRNG{stream: cipher.NewCTR(block, iv[:])}, nil
}

// Read fills buf with keystream bytes. It never fails.
func (c *CSPRNG) Read(buf []byte) (int, error) {
	clear(buf)
	c.mu.Lock()
	c.stream.XORKeyStream(buf, buf)
	c.mu.Unlock()
	return len(buf), nil
}

// Uint32 returns a single 32-bit random word.
func (c *CSPRNG) Uint32() uint32 {
	var b [4]byte
	_, _ = c.Read(b[:])
	return binary.BigEndian.Uint32(b[:])
}

// Intn returns a uniform value in [0, n). Words above the largest multiple
// of n are redrawn so the result carries no modulo bias.
func (c *CSPRNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	bound := uint32(n)
	limit := ^uint32(0) - ^uint32(0)%bound
	for {
		v := c.Uint32()
		if v < limit {
			return int(v % bound)
		}
	}
}
