// Package input provides the clocks, touch sources and microphone models
// that drive a shooter session from a terminal or a simulation.
package input

import (
	"sync"
	"time"
)

// Clock is a monotonic millisecond tick counter.
type Clock interface {
	Now() uint64
}

// WallClock counts milliseconds since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed milliseconds.
func (c *WallClock) Now() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// ManualClock only moves when told to. Simulations step it once per frame.
type ManualClock struct {
	mu  sync.Mutex
	now uint64
}

// Now returns the current tick.
func (c *ManualClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d milliseconds and returns the new tick.
func (c *ManualClock) Advance(d uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	return c.now
}
