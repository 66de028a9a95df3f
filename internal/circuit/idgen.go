package circuit

import (
	"strconv"
	"sync/atomic"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// TokenSource supplies the unique part of a gate instance id
type TokenSource interface {
	NextToken() string
}

// CounterTokens yields "1", "2", "3", ... and is safe for concurrent use
type CounterTokens struct {
	n atomic.Uint64
}

func (c *CounterTokens) NextToken() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}

// TokenAlphabet is the character set for nanoid tokens. It excludes '-',
// which separates the parts of a gate id.
const TokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength is the number of random characters in a nanoid token
const TokenLength = 10

// NanoTokens yields short random tokens backed by nanoid
type NanoTokens struct {
	fallback CounterTokens
}

// NewNanoTokens creates a nanoid token source
func NewNanoTokens() *NanoTokens {
	return &NanoTokens{}
}

func (n *NanoTokens) NextToken() string {
	id, err := nanoid.Generate(TokenAlphabet, TokenLength)
	if err != nil {
		// entropy failure; counter tokens still keep ids unique
		return "c" + n.fallback.NextToken()
	}
	return id
}
