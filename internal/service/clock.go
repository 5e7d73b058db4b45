package service

import "time"

// Clock returns the current instant. Services call it once per operation so
// every value derived within that operation agrees on what "now" is.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
