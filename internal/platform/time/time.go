// Package time contains time related helpers
package time

import "time"

// Clock is the seam for anything that asks what day it is
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock
var System Clock = ClockFunc(time.Now)

// Fixed always reports t
func Fixed(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

// OrSystem returns c, or System when c is nil
func OrSystem(c Clock) Clock {
	if c == nil {
		return System
	}
	return c
}
