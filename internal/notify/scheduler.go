// Package notify schedules reminder callbacks for achievements. The
// core exposes reminder times untouched; this collaborator turns them
// into daily cron entries.
package notify

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ashvell/attain/internal/models"
)

// Scheduler registers one daily job per (achievement, reminder time).
type Scheduler struct {
	cron    *cron.Cron
	entries map[string]cron.EntryID
	fire    func(models.Achievement, models.ReminderTime)
}

// NewScheduler fires the callback in loc's local time whenever a
// reminder comes due.
func NewScheduler(loc *time.Location, fire func(models.Achievement, models.ReminderTime)) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		entries: make(map[string]cron.EntryID),
		fire:    fire,
	}
}

// Sync replaces all scheduled reminders with those of the given
// achievements. Disabled notifications and archived achievements clear
// to nothing. Every reminder time is validated before any existing
// entry is touched, so a failed sync leaves the previous generation
// running.
func (s *Scheduler) Sync(achievements []models.Achievement, enabled bool) error {
	type job struct {
		key         string
		spec        string
		achievement models.Achievement
		reminder    models.ReminderTime
	}
	var jobs []job
	if enabled {
		for _, a := range achievements {
			if a.Archived {
				continue
			}
			for _, rt := range a.ReminderTimes {
				spec, err := dailySpec(rt)
				if err != nil {
					return fmt.Errorf("reminder for %q: %w", a.Title, err)
				}
				jobs = append(jobs, job{
					key:         reminderID(a, rt),
					spec:        spec,
					achievement: a,
					reminder:    rt,
				})
			}
		}
	}

	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = make(map[string]cron.EntryID)

	for _, j := range jobs {
		j := j
		entryID, err := s.cron.AddFunc(j.spec, func() {
			s.fire(j.achievement, j.reminder)
		})
		if err != nil {
			for _, id := range s.entries {
				s.cron.Remove(id)
			}
			s.entries = make(map[string]cron.EntryID)
			return fmt.Errorf("reminder for %q: %w", j.achievement.Title, err)
		}
		s.entries[j.key] = entryID
	}
	return nil
}

// Pending reports how many reminder entries are currently scheduled.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// dailySpec builds a with-seconds cron spec firing once a day at the
// reminder time.
func dailySpec(rt models.ReminderTime) (string, error) {
	if rt.Hour < 0 || rt.Hour > 23 || rt.Minute < 0 || rt.Minute > 59 {
		return "", fmt.Errorf("invalid time %02d:%02d", rt.Hour, rt.Minute)
	}
	return fmt.Sprintf("0 %d %d * * *", rt.Minute, rt.Hour), nil
}

func reminderID(a models.Achievement, rt models.ReminderTime) string {
	return fmt.Sprintf("achievement_%s_%d_%d", a.ID, rt.Hour, rt.Minute)
}
