// Package biztime centralizes time handling for the membership lifecycle.
// All storage and transport use UTC. Every logical operation takes a single
// "now" snapshot from a Clock and never re-reads the current time
// mid-computation, so a member cannot flip status within one request.
package biztime

import "time"

// Clock is the time collaborator injected into the lifecycle engine.
// Production code uses System(); tests use a FixedClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns a Clock backed by the wall clock, in UTC.
func System() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant. Test use only.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant.UTC()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AddMonths advances t by n calendar months, preserving the day of month
// where possible. Normalization follows time.AddDate: Jan 31 + 1 month
// becomes Mar 2/3 rather than failing.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
