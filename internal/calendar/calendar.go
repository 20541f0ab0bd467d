// Package calendar wraps locale-aware day arithmetic so the recurrence
// engine never reads an ambient default calendar or clock.
package calendar

import (
	"math"
	"time"
)

// Calendar provides day-level date operations in a fixed location.
// All comparisons in the core happen on start-of-day values produced here.
type Calendar interface {
	// StartOfDay truncates t to midnight of its calendar day.
	StartOfDay(t time.Time) time.Time
	// WeekdayOf reports the weekday of t.
	WeekdayOf(t time.Time) Weekday
	// DayOfMonth reports the day component of t, 1-based.
	DayOfMonth(t time.Time) int
	// DaysBetween counts whole days from the day of from to the day of to.
	// Negative when to precedes from.
	DaysBetween(from, to time.Time) int
	// Date constructs midnight of (year, month, day). ok is false when the
	// components do not name a real day, e.g. February 30.
	Date(year int, month time.Month, day int) (t time.Time, ok bool)
	// AddDays shifts t by the given number of calendar days.
	AddDays(t time.Time, days int) time.Time
	// Components decomposes t into its year, month and day.
	Components(t time.Time) (year int, month time.Month, day int)
	// Location reports the time zone all operations are evaluated in.
	Location() *time.Location
}

// Gregorian is the standard Calendar over a time.Location.
type Gregorian struct {
	loc *time.Location
}

// NewGregorian returns a Gregorian calendar in loc, or the local zone
// when loc is nil.
func NewGregorian(loc *time.Location) Gregorian {
	if loc == nil {
		loc = time.Local
	}
	return Gregorian{loc: loc}
}

func (g Gregorian) StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(g.loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, g.loc)
}

func (g Gregorian) WeekdayOf(t time.Time) Weekday {
	return FromTime(t.In(g.loc).Weekday())
}

func (g Gregorian) DayOfMonth(t time.Time) int {
	return t.In(g.loc).Day()
}

func (g Gregorian) DaysBetween(from, to time.Time) int {
	a := g.StartOfDay(from)
	b := g.StartOfDay(to)
	// A day spanning a DST transition is 23 or 25 hours long; rounding
	// the day count absorbs the shifted hour.
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func (g Gregorian) Date(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, g.loc)
	y2, m2, d2 := t.Date()
	if y2 != year || m2 != month || d2 != day {
		return time.Time{}, false
	}
	return t, true
}

func (g Gregorian) AddDays(t time.Time, days int) time.Time {
	return t.In(g.loc).AddDate(0, 0, days)
}

func (g Gregorian) Components(t time.Time) (int, time.Month, int) {
	return t.In(g.loc).Date()
}

func (g Gregorian) Location() *time.Location {
	return g.loc
}

// SameDay reports whether a and b fall on the same calendar day under cal.
func SameDay(cal Calendar, a, b time.Time) bool {
	return cal.StartOfDay(a).Equal(cal.StartOfDay(b))
}
