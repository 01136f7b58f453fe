// Package analytics turns inspection records into calendar bucketed quality metrics
//
// Every day boundary is a local calendar day of the viewer, expressed as a DateKey
// Keys compare as plain strings so range filters never touch time.Time math
package analytics

import (
	"fmt"
	"time"
)

// DateKey is a local calendar date in YYYY-MM-DD form
type DateKey string

const keyLayout = "2006-01-02"

// KeyOf returns the calendar date of t as seen from loc
// nil loc means time.Local
func KeyOf(t time.Time, loc *time.Location) DateKey {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", y, int(m), d))
}

// KeyFromMillis is KeyOf for epoch milliseconds
func KeyFromMillis(ms int64, loc *time.Location) DateKey {
	return KeyOf(time.UnixMilli(ms), loc)
}

// ParseKey validates s as a calendar date, 2024-02-30 is rejected
func ParseKey(s string) (DateKey, error) {
	if _, err := time.Parse(keyLayout, s); err != nil {
		return "", fmt.Errorf("date key %q: %w", s, err)
	}
	return DateKey(s), nil
}

// Valid reports whether k names a real calendar date
func (k DateKey) Valid() bool {
	_, err := ParseKey(string(k))
	return err == nil
}

// civil returns the date as UTC midnight, used only for day arithmetic
// UTC has no DST gaps so adding a day always lands on the next calendar date
func (k DateKey) civil() (time.Time, bool) {
	t, err := time.Parse(keyLayout, string(k))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Midnight returns the first instant of k in loc
// when a DST gap swallows 00:00 the day starts at the end of the gap
func (k DateKey) Midnight(loc *time.Location) (time.Time, bool) {
	c, ok := k.civil()
	if !ok {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, loc)
	for KeyOf(t, loc) < k {
		_, end := t.ZoneBounds()
		if end.IsZero() || !end.After(t) {
			return time.Time{}, false
		}
		t = end
	}
	return t, true
}

// AddDays moves k by n calendar days
func (k DateKey) AddDays(n int) DateKey {
	c, ok := k.civil()
	if !ok {
		return k
	}
	return KeyOf(c.AddDate(0, 0, n), time.UTC)
}

// Label renders k as DD/MM
func (k DateKey) Label() string {
	if len(k) != len(keyLayout) {
		return string(k)
	}
	return string(k[8:10]) + "/" + string(k[5:7])
}

// In reports start <= k <= end
func (k DateKey) In(start, end DateKey) bool { return k >= start && k <= end }

// DaysBetween counts calendar days from start to end inclusive, 0 when end < start
func DaysBetween(start, end DateKey) int {
	s, ok1 := start.civil()
	e, ok2 := end.civil()
	if !ok1 || !ok2 || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DefaultRange returns the last days local calendar days ending today
// the dashboard opens on DefaultRange(now, loc, 7)
func DefaultRange(now time.Time, loc *time.Location, days int) (DateKey, DateKey) {
	if days < 1 {
		days = 1
	}
	end := KeyOf(now, loc)
	return end.AddDays(-(days - 1)), end
}
