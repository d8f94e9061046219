package testutil

import "sync"

// FixedTokens returns predetermined run tokens for tests.
//
// CLI runs normally tag their logs and JSON envelopes with a fresh UUIDv7
// token; substituting a known sequence keeps envelope output deterministic
// for golden comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedTokens struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedTokens creates a generator that returns tokens in order.
//
// Example:
//
//	gen := testutil.NewFixedTokens("run-1", "run-2")
//	gen.Generate() // "run-1"
//	gen.Generate() // "run-2"
//	gen.Generate() // panic: all tokens exhausted
func NewFixedTokens(tokens ...string) *FixedTokens {
	return &FixedTokens{tokens: tokens}
}

// Generate returns the next predetermined token.
//
// Panics when all tokens are consumed: a test asking for more runs than it
// declared is misconfigured, and failing fast beats silently reusing tokens.
func (g *FixedTokens) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("FixedTokens: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
