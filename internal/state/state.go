// Package state owns the in-memory collection of achievements and
// completion records and derives statistics over them.
//
// The state is single-mutator by contract: callers must serialize
// mutations. Read-only queries are pure and may run concurrently with
// each other but not with a mutation on the same value.
package state

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/models"
)

// State aggregates achievements (insertion order) and completions (kept
// ascending by day).
type State struct {
	achievements []models.Achievement
	completions  []models.Completion
}

// New builds a state from loaded collections. Completions are re-sorted
// by day so snapshots written by older versions stay valid.
func New(achievements []models.Achievement, completions []models.Completion) *State {
	s := &State{
		achievements: append([]models.Achievement(nil), achievements...),
		completions:  append([]models.Completion(nil), completions...),
	}
	s.sortCompletions()
	return s
}

// Achievements returns the achievements in insertion order.
func (s *State) Achievements() []models.Achievement {
	return append([]models.Achievement(nil), s.achievements...)
}

// Completions returns the completion log ascending by day.
func (s *State) Completions() []models.Completion {
	return append([]models.Completion(nil), s.completions...)
}

// Find looks up an achievement by id.
func (s *State) Find(id uuid.UUID) (models.Achievement, bool) {
	for _, a := range s.achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

// Add appends an achievement. Titles are not deduplicated.
func (s *State) Add(a models.Achievement) {
	s.achievements = append(s.achievements, a)
}

// Update replaces the achievement with the same id. Unknown ids are a
// no-op.
func (s *State) Update(a models.Achievement) {
	for i := range s.achievements {
		if s.achievements[i].ID == a.ID {
			s.achievements[i] = a
			return
		}
	}
}

// Remove deletes the achievement and cascades to all of its
// completions, so no dangling references persist.
func (s *State) Remove(id uuid.UUID) {
	kept := s.achievements[:0]
	for _, a := range s.achievements {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.achievements = kept

	keptCompletions := s.completions[:0]
	for _, c := range s.completions {
		if c.AchievementID != id {
			keptCompletions = append(keptCompletions, c)
		}
	}
	s.completions = keptCompletions
}

// LogCompletion records a completion for the day of date, snapshotting
// the achievement's current point value. It returns nil when the id is
// unknown. It does not check for an existing completion on the same
// day; repeated calls create multiple records.
func (s *State) LogCompletion(id uuid.UUID, date time.Time, cal calendar.Calendar) *models.Completion {
	a, ok := s.Find(id)
	if !ok {
		return nil
	}
	c := models.Completion{
		ID:            uuid.New(),
		AchievementID: id,
		Day:           cal.StartOfDay(date),
		Points:        a.Points,
	}
	s.completions = append(s.completions, c)
	s.sortCompletions()
	return &c
}

// ToggleCompletion removes the completion for (id, day) if one exists,
// otherwise logs one. This is the only operation enforcing at most one
// completion per achievement per day.
func (s *State) ToggleCompletion(id uuid.UUID, date time.Time, cal calendar.Calendar) {
	if existing := s.CompletionOn(id, date, cal); existing != nil {
		kept := s.completions[:0]
		for _, c := range s.completions {
			if c.ID != existing.ID {
				kept = append(kept, c)
			}
		}
		s.completions = kept
		return
	}
	s.LogCompletion(id, date, cal)
}

// CompletionOn returns the first completion of the achievement on the
// day of date, or nil.
func (s *State) CompletionOn(id uuid.UUID, date time.Time, cal calendar.Calendar) *models.Completion {
	target := cal.StartOfDay(date)
	for _, c := range s.completions {
		if c.AchievementID == id && calendar.SameDay(cal, c.Day, target) {
			found := c
			return &found
		}
	}
	return nil
}

// IsCompleted reports whether the achievement has a completion on the
// day of date.
func (s *State) IsCompleted(id uuid.UUID, date time.Time, cal calendar.Calendar) bool {
	return s.CompletionOn(id, date, cal) != nil
}

// Due returns the non-archived achievements whose schedule fires on the
// day of date.
func (s *State) Due(date time.Time, cal calendar.Calendar) []models.Achievement {
	var due []models.Achievement
	for _, a := range s.achievements {
		if a.Archived {
			continue
		}
		if a.Schedule != nil && a.Schedule.IsDue(date, cal) {
			due = append(due, a)
		}
	}
	return due
}

// UpcomingOccurrences returns up to limit future due days of the named
// achievement, empty when the id is unknown.
func (s *State) UpcomingOccurrences(id uuid.UUID, from time.Time, limit int, cal calendar.Calendar) []time.Time {
	a, ok := s.Find(id)
	if !ok || a.Schedule == nil {
		return nil
	}
	return a.Schedule.Occurrences(from, limit, cal)
}

func (s *State) sortCompletions() {
	sort.SliceStable(s.completions, func(i, j int) bool {
		return s.completions[i].Day.Before(s.completions[j].Day)
	})
}
