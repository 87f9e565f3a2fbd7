package mock

import "time"

// Time is a controllable clock for scenarios that pin a date. The clock
// keeps ticking from whatever instant was last set.
type Time struct {
	base  time.Time
	setAt time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{base: now, setAt: now}
}

func (t *Time) SetCurrentTime(instant time.Time) {
	t.base = instant
	t.setAt = time.Now()
}

func (t *Time) Now() time.Time {
	return t.base.Add(time.Since(t.setAt))
}
