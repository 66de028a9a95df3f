package circuit

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterTokens(t *testing.T) {
	var c CounterTokens
	assert.Equal(t, "1", c.NextToken())
	assert.Equal(t, "2", c.NextToken())
	assert.Equal(t, "3", c.NextToken())
}

func TestNanoTokens(t *testing.T) {
	tokens := NewNanoTokens()
	seen := make(map[string]bool)

	for i := 0; i < 500; i++ {
		tok := tokens.NextToken()
		assert.Len(t, tok, TokenLength)
		assert.NotContains(t, tok, "-")
		for _, r := range tok {
			assert.True(t, strings.ContainsRune(TokenAlphabet, r), "unexpected rune %q", r)
		}
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}

// TestCounterTokensConcurrent checks no token is handed out twice
func TestCounterTokensConcurrent(t *testing.T) {
	var c CounterTokens
	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				tok := c.NextToken()
				mu.Lock()
				seen[tok] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1000)
}
