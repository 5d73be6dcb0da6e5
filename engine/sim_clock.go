package engine

import (
	"sync"
	"time"
)

// SimClock is simulated time moved only by Advance
// The match advances it by the fixed step each tick so runs replay from the seed
type SimClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewSimClock creates a simulated clock starting at start
func NewSimClock(start time.Time) *SimClock {
	return &SimClock{currentTime: start}
}

// Now returns the current simulated time
func (c *SimClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// SetTime sets the current time
func (c *SimClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

// Advance moves the clock forward by d
func (c *SimClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
