package state

import (
	"time"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/models"
)

// Statistics rolls up the completions falling inside rng. The interval
// is closed by day on both ends. now anchors the current-streak
// staleness check and comes from the caller's clock, never the wall
// clock.
func (s *State) Statistics(rng models.Range, cal calendar.Calendar, now time.Time) models.Statistics {
	start := cal.StartOfDay(rng.Start)
	end := cal.StartOfDay(rng.End)

	var relevant []models.Completion
	for _, c := range s.completions {
		if c.Day.Before(start) || c.Day.After(end) {
			continue
		}
		relevant = append(relevant, c)
	}

	total := 0
	for _, a := range s.achievements {
		if !a.Archived {
			total++
		}
	}

	rate := 0.0
	if total > 0 {
		days := cal.DaysBetween(rng.Start, rng.End)
		if days < 1 {
			days = 1
		}
		rate = float64(len(relevant)) / float64(total*days)
	}

	points := 0
	for _, c := range relevant {
		points += c.Points
	}

	byWeekday := make(map[calendar.Weekday]int)
	byCategory := make(map[string]int)
	for _, c := range relevant {
		byWeekday[cal.WeekdayOf(c.Day)]++
		category := models.DefaultCategory
		if a, ok := s.Find(c.AchievementID); ok {
			category = a.Category
		}
		byCategory[category]++
	}

	current, best := streaks(relevant, cal, now)

	return models.Statistics{
		TotalAchievements: total,
		CompletedCount:    len(relevant),
		CompletionRate:    rate,
		TotalPoints:       points,
		CurrentStreak:     current,
		BestStreak:        best,
		ByWeekday:         byWeekday,
		History:           history(start, end, relevant, cal),
		ByCategory:        byCategory,
	}
}

// history maps every day of [start, end] to its completion count. Days
// without completions are present with zero, so the map is dense.
func history(start, end time.Time, completions []models.Completion, cal calendar.Calendar) map[time.Time]int {
	out := make(map[time.Time]int)
	for day := start; !day.After(end); day = cal.AddDays(day, 1) {
		out[day] = 0
	}
	for _, c := range completions {
		out[cal.StartOfDay(c.Day)]++
	}
	return out
}

// streaks scans the completion days ascending, counting runs of
// exactly-adjacent days. A gap, or a repeated day (difference 0, which
// duplicate logging can produce), restarts the run at 1. The current
// run is zeroed when the last completion lies more than one day before
// now.
func streaks(completions []models.Completion, cal calendar.Calendar, now time.Time) (current, best int) {
	if len(completions) == 0 {
		return 0, 0
	}
	var previous *time.Time
	for _, c := range completions {
		day := c.Day
		if previous != nil && cal.DaysBetween(*previous, day) == 1 {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
		prev := day
		previous = &prev
	}
	today := cal.StartOfDay(now)
	if previous != nil && cal.DaysBetween(*previous, today) > 1 {
		current = 0
	}
	return current, best
}
