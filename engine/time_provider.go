package engine

import (
	"sync"
	"time"
)

// TimeProvider is the real-time source read by the Clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider returns time.Now with its monotonic reading
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// SteppedTimeProvider is a manually advanced time source
// Drives deterministic headless runs and tests
type SteppedTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewSteppedTimeProvider creates a provider frozen at startTime
func NewSteppedTimeProvider(startTime time.Time) *SteppedTimeProvider {
	return &SteppedTimeProvider{currentTime: startTime}
}

func (p *SteppedTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentTime
}

// SetTime jumps to t
func (p *SteppedTimeProvider) SetTime(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentTime = t
}

// Advance moves time forward by d
func (p *SteppedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentTime = p.currentTime.Add(d)
}
