package engine

import "time"

// TimeProvider supplies the current time to the session
// Swappable so tests can drive the clock deterministically
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the real system time with monotonic clock readings
type RealTimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
