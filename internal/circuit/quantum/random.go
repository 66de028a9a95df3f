package quantum

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"sync"
	"time"
)

// RandomSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// RandomBit draws an unbiased bit from src
func RandomBit(src RandomSource) Bit {
	return Bit(src.Intn(2))
}

// lockedSource serializes access to a non goroutine-safe source
type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

// NewMathSource returns a time-seeded math/rand source safe for concurrent use
func NewMathSource() RandomSource {
	return &lockedSource{src: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a reproducible math/rand source safe for concurrent use
func NewSeededSource(seed int64) RandomSource {
	return &lockedSource{src: rand.New(rand.NewSource(seed))}
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

// CryptoSource draws from crypto/rand. If the system reader fails it falls
// back to a math/rand source rather than returning an error.
type CryptoSource struct {
	fallback RandomSource
}

// NewCryptoSource creates a crypto/rand backed source
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{fallback: NewMathSource()}
}

func (c *CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("quantum: Intn called with non-positive n")
	}

	nBig, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return c.fallback.Intn(n)
	}

	return int(nBig.Int64())
}
