// Package models holds the value types shared across the tracker: the
// Achievement entity, its completion records, and derived statistics.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/schedule"
)

// DefaultPoints is the point value assigned when none is given.
const DefaultPoints = 10

// DefaultCategory groups achievements without an explicit category and
// labels completions whose achievement no longer exists.
const DefaultCategory = "General"

// IconSource distinguishes built-in icon names from remote image URLs.
type IconSource string

const (
	IconSystem IconSource = "systemSymbol"
	IconRemote IconSource = "remoteURL"
)

// IconReference names an icon without owning its rendering.
type IconReference struct {
	Source IconSource `json:"source"`
	Value  string     `json:"value"`
}

// SystemIcon references a built-in icon by name.
func SystemIcon(name string) IconReference {
	return IconReference{Source: IconSystem, Value: name}
}

// RemoteIcon references an icon fetched from a URL.
func RemoteIcon(url string) IconReference {
	return IconReference{Source: IconRemote, Value: url}
}

// ReminderTime is a timezone-less time of day. The notification
// collaborator interprets it; the core only carries it.
type ReminderTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Achievement is a recurring trackable item.
type Achievement struct {
	ID            uuid.UUID
	Title         string
	Detail        string
	Icon          IconReference
	Points        int
	Category      string
	Schedule      schedule.Schedule
	ReminderTimes []ReminderTime
	CreatedAt     time.Time
	Archived      bool
}

// NewAchievement builds an achievement with a fresh id and the default
// point value and category.
func NewAchievement(title, detail string, icon IconReference, sched schedule.Schedule) Achievement {
	return Achievement{
		ID:        uuid.New(),
		Title:     title,
		Detail:    detail,
		Icon:      icon,
		Points:    DefaultPoints,
		Category:  DefaultCategory,
		Schedule:  sched,
		CreatedAt: time.Now(),
	}
}

// Completion records that an achievement was completed on a day. Day is
// start-of-day normalized; Points snapshots the achievement's value at
// completion time and never changes afterwards.
type Completion struct {
	ID            uuid.UUID
	AchievementID uuid.UUID
	Day           time.Time
	Points        int
}

// Range is a closed day interval [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Statistics is the roll-up over a date range.
type Statistics struct {
	TotalAchievements int
	CompletedCount    int
	CompletionRate    float64
	TotalPoints       int
	CurrentStreak     int
	BestStreak        int
	ByWeekday         map[calendar.Weekday]int
	// History maps every start-of-day in the range, densely, to the
	// number of completions on that day.
	History    map[time.Time]int
	ByCategory map[string]int
}
