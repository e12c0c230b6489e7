package clock

import (
	"time"

	"github.com/skylar-games/case-opener/internal/domain/port/core"
)

// RealClock implements the TimeProvider and Scheduler ports with the real
// wall clock and real timers.
type RealClock struct{}

// New creates a real clock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// AfterFunc runs f once d has elapsed
func (c *RealClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

var (
	_ core.TimeProvider = (*RealClock)(nil)
	_ core.Scheduler    = (*RealClock)(nil)
)
