package engine

import "time"

// TimeProvider abstracts the wall clock so the tick loop can be driven
// by mocked time in tests
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider returns the real system time with monotonic clock
// readings
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a monotonic time provider
func NewSystemTimeProvider() SystemTimeProvider {
	return SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (SystemTimeProvider) Now() time.Time {
	return time.Now()
}
