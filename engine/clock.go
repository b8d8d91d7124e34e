package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the pausable game time source
// Tick measures real time since the previous tick; while paused the
// measured delta is discarded so game time stands still
type Clock struct {
	mu       sync.RWMutex
	provider TimeProvider

	lastTick time.Time
	elapsed  time.Duration // Game time, excludes paused spans
	delta    time.Duration // Game time added by the last Tick
	maxDelta time.Duration // 0 = unbounded

	paused atomic.Bool
}

// NewClock creates a running clock reading from provider
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider: provider,
		lastTick: provider.Now(),
	}
}

// SetMaxDelta caps the delta of a single tick, 0 disables the cap
func (c *Clock) SetMaxDelta(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxDelta = d
}

// Tick advances game time by the real time since the last tick unless paused
// Returns the new delta
func (c *Clock) Tick() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	measured := now.Sub(c.lastTick)
	c.lastTick = now

	if c.paused.Load() || measured < 0 {
		c.delta = 0
		return 0
	}
	if c.maxDelta > 0 && measured > c.maxDelta {
		measured = c.maxDelta
	}
	c.delta = measured
	c.elapsed += measured
	return measured
}

// Pause zeroes the delta of subsequent ticks
func (c *Clock) Pause() {
	c.paused.Store(true)
}

// Resume lets subsequent ticks advance game time again
func (c *Clock) Resume() {
	c.paused.Store(false)
}

// Toggle flips pause state and returns the new state
func (c *Clock) Toggle() bool {
	for {
		old := c.paused.Load()
		if c.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (c *Clock) IsPaused() bool {
	return c.paused.Load()
}

// Delta returns the game time added by the last tick
func (c *Clock) Delta() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delta
}

// Elapsed returns total game time
func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

// Reset zeroes game time and resumes the clock
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed = 0
	c.delta = 0
	c.lastTick = c.provider.Now()
	c.paused.Store(false)
}
