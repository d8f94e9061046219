package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a settable wall clock for tests.
//
// Rendered artifacts embed the build time (sitemap lastmod stamps), so tests
// that compare output byte-for-byte pin the clock instead of calling
// time.Now. The same fixture rendered twice produces identical bytes.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the frozen instant. Pass as the Now field of a site.Builder.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the frozen instant forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
