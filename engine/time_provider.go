package engine

import "time"

// Clock supplies the timestamp stamped on collisions each tick
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
// Ticks stamped with it depend on scheduling and do not replay
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
