// Package schedule implements the recurrence engine: a closed set of
// schedule kinds that decide whether an achievement is due on a given
// day and generate its next occurrences.
package schedule

import (
	"sort"
	"time"

	"github.com/ashvell/attain/internal/calendar"
)

// MaxMonthlyLookahead caps the occurrence scan of a Monthly schedule.
// A rule whose selected days never materialize (for a calendar without
// those month lengths) would otherwise scan forever; after this many
// consecutive months without an emission the scan reports no further
// occurrences.
const MaxMonthlyLookahead = 48

// Schedule is the recurrence rule of an achievement. The set of
// implementations is closed; type switches over it are exhaustive.
type Schedule interface {
	// IsDue reports whether the schedule fires on the day of date.
	IsDue(date time.Time, cal calendar.Calendar) bool
	// Occurrences returns up to limit due days at or after the day of
	// from, ascending. It returns nil for limit <= 0 and for schedules
	// whose effective rule set is empty.
	Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time

	isSchedule()
}

// Daily fires every day.
type Daily struct{}

func (Daily) isSchedule() {}

func (Daily) IsDue(time.Time, calendar.Calendar) bool { return true }

func (Daily) Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time {
	if limit <= 0 {
		return nil
	}
	start := cal.StartOfDay(from)
	out := make([]time.Time, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, cal.AddDays(start, i))
	}
	return out
}

// Weekly fires on each listed weekday.
type Weekly struct {
	Weekdays []calendar.Weekday
}

func (Weekly) isSchedule() {}

func (s Weekly) IsDue(date time.Time, cal calendar.Calendar) bool {
	return containsWeekday(s.Weekdays, cal.WeekdayOf(date))
}

func (s Weekly) Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time {
	// Out-of-range ordinals (possible in a decoded snapshot) can never
	// match a scanned day; without filtering they would drive the scan
	// forever.
	weekdays := make([]calendar.Weekday, 0, len(s.Weekdays))
	for _, d := range s.Weekdays {
		if d.Valid() {
			weekdays = append(weekdays, d)
		}
	}
	if limit <= 0 || len(weekdays) == 0 {
		return nil
	}
	var out []time.Time
	current := cal.StartOfDay(from)
	for len(out) < limit {
		if containsWeekday(weekdays, cal.WeekdayOf(current)) {
			out = append(out, current)
		}
		current = cal.AddDays(current, 1)
	}
	return out
}

// Monthly fires on each listed day of the month. A day outside the
// length of a given month never matches that month.
type Monthly struct {
	Days []int
}

func (Monthly) isSchedule() {}

func (s Monthly) IsDue(date time.Time, cal calendar.Calendar) bool {
	day := cal.DayOfMonth(date)
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

func (s Monthly) Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time {
	if limit <= 0 {
		return nil
	}
	validDays := make([]int, 0, len(s.Days))
	for _, d := range s.Days {
		if d >= 1 && d <= 31 {
			validDays = append(validDays, d)
		}
	}
	if len(validDays) == 0 {
		return nil
	}
	sort.Ints(validDays)

	start := cal.StartOfDay(from)
	year, month, _ := cal.Components(start)
	// Anchor the cursor on the first of the month so advancing never
	// normalizes past a short month.
	cursor, ok := cal.Date(year, month, 1)
	if !ok {
		return nil
	}
	var out []time.Time
	misses := 0
	for len(out) < limit {
		emitted := false
		y, m, _ := cal.Components(cursor)
		for _, day := range validDays {
			date, ok := cal.Date(y, m, day)
			if !ok {
				continue
			}
			if date.Before(start) {
				continue
			}
			out = append(out, date)
			emitted = true
			if len(out) == limit {
				break
			}
		}
		if emitted {
			misses = 0
		} else {
			misses++
			if misses >= MaxMonthlyLookahead {
				break
			}
		}
		ny, nm := y, m+1
		if nm > time.December {
			ny, nm = y+1, time.January
		}
		next, ok := cal.Date(ny, nm, 1)
		if !ok {
			break
		}
		cursor = next
	}
	return out
}

// DateEntry is a partial date. A nil field is a wildcard matching any
// value in that component.
type DateEntry struct {
	Year  *int        `json:"year,omitempty"`
	Month *time.Month `json:"month,omitempty"`
	Day   *int        `json:"day,omitempty"`
}

// Matches reports whether the entry matches (year, month, day) on every
// field it specifies.
func (e DateEntry) Matches(year int, month time.Month, day int) bool {
	if e.Year != nil && *e.Year != year {
		return false
	}
	if e.Month != nil && *e.Month != month {
		return false
	}
	if e.Day != nil && *e.Day != day {
		return false
	}
	return true
}

// resolve turns a fully specified entry into a concrete date. Entries
// with wildcard fields do not resolve.
func (e DateEntry) resolve(cal calendar.Calendar) (time.Time, bool) {
	if e.Year == nil || e.Month == nil || e.Day == nil {
		return time.Time{}, false
	}
	return cal.Date(*e.Year, *e.Month, *e.Day)
}

// SpecificDates fires on any day matching one of its entries.
type SpecificDates struct {
	Entries []DateEntry
}

func (SpecificDates) isSchedule() {}

func (s SpecificDates) IsDue(date time.Time, cal calendar.Calendar) bool {
	year, month, day := cal.Components(date)
	for _, e := range s.Entries {
		if e.Matches(year, month, day) {
			return true
		}
	}
	return false
}

func (s SpecificDates) Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time {
	if limit <= 0 {
		return nil
	}
	start := cal.StartOfDay(from)
	var resolved []time.Time
	for _, e := range s.Entries {
		if date, ok := e.resolve(cal); ok {
			resolved = append(resolved, date)
		}
	}
	sortTimes(resolved)
	var out []time.Time
	for _, date := range resolved {
		if date.Before(start) {
			continue
		}
		out = append(out, date)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Interval fires on the anchor day and every Every days after it. It is
// never due before the anchor's day.
type Interval struct {
	Every  int
	Anchor time.Time
}

func (Interval) isSchedule() {}

func (s Interval) IsDue(date time.Time, cal calendar.Calendar) bool {
	if s.Every <= 0 {
		return false
	}
	start := cal.StartOfDay(s.Anchor)
	target := cal.StartOfDay(date)
	if target.Before(start) {
		return false
	}
	return cal.DaysBetween(start, target)%s.Every == 0
}

func (s Interval) Occurrences(from time.Time, limit int, cal calendar.Calendar) []time.Time {
	if limit <= 0 || s.Every <= 0 {
		return nil
	}
	start := cal.StartOfDay(from)
	current := cal.StartOfDay(s.Anchor)
	var out []time.Time
	for len(out) < limit {
		if !current.Before(start) {
			out = append(out, current)
		}
		current = cal.AddDays(current, s.Every)
	}
	return out
}

func containsWeekday(set []calendar.Weekday, w calendar.Weekday) bool {
	for _, d := range set {
		if d == w {
			return true
		}
	}
	return false
}

func sortTimes(values []time.Time) {
	sort.Slice(values, func(i, j int) bool { return values[i].Before(values[j]) })
}
