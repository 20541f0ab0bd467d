package calendar

import "time"

// Weekday is a day of the week numbered 1 (Sunday) through 7 (Saturday).
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return "Weekday(?)"
	}
	return weekdayNames[w-1]
}

// Valid reports whether w is within the Sunday..Saturday range.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Advance cycles w forward by offset days. Negative offsets cycle backward.
func (w Weekday) Advance(offset int) Weekday {
	idx := (int(w) - 1 + offset) % 7
	if idx < 0 {
		idx += 7
	}
	return Weekday(idx + 1)
}

// FromTime converts the stdlib weekday (Sunday = 0) to a Weekday.
func FromTime(wd time.Weekday) Weekday {
	return Weekday(int(wd) + 1)
}
