// Package clock supplies the current local time to the timer engine.
// An interface keeps the engine deterministic under test.
package clock

import "time"

// Clock provides the current local time.
type Clock interface {
	Now() time.Time
}

// Real is the production Clock backed by time.Now.
type Real struct{}

// Now returns the current local time.
func (Real) Now() time.Time { return time.Now() }

// Fake is a controllable Clock for tests.
type Fake struct {
	Current time.Time
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time { return f.Current }

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

// StartOfDay returns midnight of t's local calendar date.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
