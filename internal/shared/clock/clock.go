package clock

import "time"

// Clock supplies the current time. Components that compare against "now" take a Clock so that
// tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by the wall clock, in UTC.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a Clock that always reports now.
func NewFixed(now time.Time) Clock {
	return fixedClock{now: now}
}

func (c fixedClock) Now() time.Time {
	return c.now
}
