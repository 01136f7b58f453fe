// Package time contains clock and zone helpers shared by services
package time

import (
	"strings"
	"time"
)

// Clock returns the current instant, services take one so tests can pin "now"
type Clock func() time.Time

// System is the wall clock
func System() Clock { return time.Now }

// Fixed always returns t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// Now calls c, a nil Clock falls back to the wall clock
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Location loads an IANA zone name, empty means def and def nil means time.Local
func Location(name string, def *time.Location) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if def == nil {
			return time.Local, nil
		}
		return def, nil
	}
	return time.LoadLocation(name)
}
