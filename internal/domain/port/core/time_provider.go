package core

import "time"

// TimeProvider abstracts time observation for the domain. Account IDs and
// spin deadlines both derive from it, which keeps them deterministic in tests.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Scheduler abstracts deferred execution. The spin session uses it to drive
// settlement after the reveal window instead of an ambient timer callback.
type Scheduler interface {
	// AfterFunc runs f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func())
}
