// Package clock abstracts time.Now so "now"-dependent behavior can be
// pinned in tests.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock.
type Real struct{}

// Now returns the current local time.
func (Real) Now() time.Time {
	return time.Now()
}

var _ Clock = Real{}

// Fixed is a Clock frozen at a single instant.
type Fixed struct {
	Time time.Time
}

// Now returns the frozen instant.
func (f Fixed) Now() time.Time {
	return f.Time
}

var _ Clock = Fixed{}
