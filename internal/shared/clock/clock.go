package clock

import "time"

// Clock lets services read "now" without calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// RealClock reports the system time in Location (UTC when nil).
type RealClock struct {
	Location *time.Location
}

func (c RealClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

func NewReal(loc *time.Location) Clock {
	return RealClock{Location: loc}
}

func NewFixed(t time.Time) Clock {
	return FixedClock{T: t}
}
