package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/schedule"
)

// Template is a ready-made achievement blueprint for the gallery.
type Template struct {
	Title    string
	Detail   string
	Icon     IconReference
	Points   int
	Category string
	Schedule schedule.Schedule
}

// Instantiate creates a fresh achievement from the template.
func (t Template) Instantiate() Achievement {
	return Achievement{
		ID:        uuid.New(),
		Title:     t.Title,
		Detail:    t.Detail,
		Icon:      t.Icon,
		Points:    t.Points,
		Category:  t.Category,
		Schedule:  t.Schedule,
		CreatedAt: time.Now(),
	}
}

// StarterTemplates is the built-in everyday wellness gallery.
func StarterTemplates() []Template {
	return []Template{
		{
			Title:    "Make Your Bed",
			Detail:   "Start the day with a quick win by making your bed.",
			Icon:     SystemIcon("bed"),
			Points:   5,
			Category: "Morning",
			Schedule: schedule.Daily{},
		},
		{
			Title:    "Tidy the Kitchen",
			Detail:   "Do the dishes or wipe down the counters after meals.",
			Icon:     SystemIcon("kitchen"),
			Points:   10,
			Category: "Home",
			Schedule: schedule.Daily{},
		},
		{
			Title:    "Workout Session",
			Detail:   "Complete a workout or head to the gym.",
			Icon:     SystemIcon("dumbbell"),
			Points:   20,
			Category: "Fitness",
			Schedule: schedule.Weekly{Weekdays: []calendar.Weekday{calendar.Monday, calendar.Wednesday, calendar.Friday}},
		},
		{
			Title:    "Study Block",
			Detail:   "Focus on studying or learning for at least 45 minutes.",
			Icon:     SystemIcon("book"),
			Points:   15,
			Category: "Learning",
			Schedule: schedule.Weekly{Weekdays: []calendar.Weekday{calendar.Monday, calendar.Tuesday, calendar.Wednesday, calendar.Thursday}},
		},
		{
			Title:    "Laundry Day",
			Detail:   "Stay on top of laundry so it never piles up.",
			Icon:     SystemIcon("laundry"),
			Points:   15,
			Category: "Home",
			Schedule: schedule.Weekly{Weekdays: []calendar.Weekday{calendar.Saturday}},
		},
	}
}
