package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for tests and the headless simulation.
// Step advances by a fixed frame step and counts frames; Advance and SetTime jump freely.
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
	step  time.Duration
	steps int
}

// NewMockTimeProvider creates a mock clock at start with a zero frame step
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start}
}

// NewSteppedTimeProvider creates a mock clock whose Step advances by step
func NewSteppedTimeProvider(start time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{start: start, now: start, step: step}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t; Elapsed is still measured from the start time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Step advances one frame and returns the new time
func (m *MockTimeProvider) Step() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.step)
	m.steps++
	return m.now
}

// Steps reports how many frames Step has advanced
func (m *MockTimeProvider) Steps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.steps
}

// Elapsed is the time since the provider was created
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
