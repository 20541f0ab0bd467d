package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ashvell/attain/internal/calendar"
)

// Wire type discriminators. The encoding is a single object with a
// "type" field plus the fields of the active variant.
const (
	typeDaily         = "daily"
	typeWeekly        = "weekly"
	typeMonthly       = "monthly"
	typeSpecificDates = "specificDates"
	typeInterval      = "customInterval"
)

type wireSchedule struct {
	Type      string             `json:"type"`
	Weekdays  []calendar.Weekday `json:"weekdays,omitempty"`
	MonthDays []int              `json:"monthDays,omitempty"`
	Dates     []DateEntry        `json:"dates,omitempty"`
	Interval  int                `json:"interval,omitempty"`
	Anchor    *time.Time         `json:"anchor,omitempty"`
}

// Encode serializes a schedule as a discriminated JSON object.
func Encode(s Schedule) (json.RawMessage, error) {
	var w wireSchedule
	switch v := s.(type) {
	case Daily:
		w.Type = typeDaily
	case Weekly:
		w.Type = typeWeekly
		w.Weekdays = v.Weekdays
	case Monthly:
		w.Type = typeMonthly
		w.MonthDays = v.Days
	case SpecificDates:
		w.Type = typeSpecificDates
		w.Dates = v.Entries
	case Interval:
		w.Type = typeInterval
		w.Interval = v.Every
		anchor := v.Anchor
		w.Anchor = &anchor
	default:
		return nil, fmt.Errorf("encode schedule: unknown kind %T", s)
	}
	return json.Marshal(w)
}

// Decode parses a discriminated JSON object back into a schedule.
func Decode(data json.RawMessage) (Schedule, error) {
	var w wireSchedule
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	switch w.Type {
	case typeDaily:
		return Daily{}, nil
	case typeWeekly:
		return Weekly{Weekdays: w.Weekdays}, nil
	case typeMonthly:
		return Monthly{Days: w.MonthDays}, nil
	case typeSpecificDates:
		return SpecificDates{Entries: w.Dates}, nil
	case typeInterval:
		if w.Anchor == nil {
			return nil, fmt.Errorf("decode schedule: %q without anchor", typeInterval)
		}
		return Interval{Every: w.Interval, Anchor: *w.Anchor}, nil
	default:
		return nil, fmt.Errorf("decode schedule: unknown type %q", w.Type)
	}
}
