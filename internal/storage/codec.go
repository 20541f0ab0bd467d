package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/schedule"
	"github.com/ashvell/attain/internal/state"
)

// Snapshot document: two flat ordered lists, dates as RFC3339 strings,
// schedules as discriminated objects.

type achievementRecord struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Detail        string                `json:"detail"`
	Icon          models.IconReference  `json:"icon"`
	Points        int                   `json:"points"`
	Category      string                `json:"category"`
	Schedule      json.RawMessage       `json:"schedule"`
	ReminderTimes []models.ReminderTime `json:"reminder_times,omitempty"`
	CreatedAt     string                `json:"created_at"`
	Archived      bool                  `json:"archived,omitempty"`
}

type completionRecord struct {
	ID            string `json:"id"`
	AchievementID string `json:"achievement_id"`
	CompletedAt   string `json:"completed_at"`
	Points        int    `json:"points"`
}

type snapshot struct {
	Achievements []achievementRecord `json:"achievements"`
	Completions  []completionRecord  `json:"completions"`
}

func encodeState(st *state.State) (snapshot, error) {
	var doc snapshot
	for _, a := range st.Achievements() {
		record, err := encodeAchievement(a)
		if err != nil {
			return snapshot{}, err
		}
		doc.Achievements = append(doc.Achievements, record)
	}
	for _, c := range st.Completions() {
		doc.Completions = append(doc.Completions, completionRecord{
			ID:            c.ID.String(),
			AchievementID: c.AchievementID.String(),
			CompletedAt:   c.Day.Format(time.RFC3339),
			Points:        c.Points,
		})
	}
	return doc, nil
}

func encodeAchievement(a models.Achievement) (achievementRecord, error) {
	raw, err := schedule.Encode(a.Schedule)
	if err != nil {
		return achievementRecord{}, fmt.Errorf("achievement %s: %w", a.ID, err)
	}
	return achievementRecord{
		ID:            a.ID.String(),
		Title:         a.Title,
		Detail:        a.Detail,
		Icon:          a.Icon,
		Points:        a.Points,
		Category:      a.Category,
		Schedule:      raw,
		ReminderTimes: a.ReminderTimes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		Archived:      a.Archived,
	}, nil
}

func decodeState(doc snapshot) (*state.State, error) {
	var achievements []models.Achievement
	for _, record := range doc.Achievements {
		a, err := decodeAchievement(record)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	var completions []models.Completion
	for _, record := range doc.Completions {
		c, err := decodeCompletion(record)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return state.New(achievements, completions), nil
}

func decodeAchievement(record achievementRecord) (models.Achievement, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("achievement id %q: %w", record.ID, err)
	}
	sched, err := schedule.Decode(record.Schedule)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("achievement %s: %w", record.ID, err)
	}
	createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("achievement %s created_at: %w", record.ID, err)
	}
	return models.Achievement{
		ID:            id,
		Title:         record.Title,
		Detail:        record.Detail,
		Icon:          record.Icon,
		Points:        record.Points,
		Category:      record.Category,
		Schedule:      sched,
		ReminderTimes: record.ReminderTimes,
		CreatedAt:     createdAt,
		Archived:      record.Archived,
	}, nil
}

func decodeCompletion(record completionRecord) (models.Completion, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return models.Completion{}, fmt.Errorf("completion id %q: %w", record.ID, err)
	}
	achievementID, err := uuid.Parse(record.AchievementID)
	if err != nil {
		return models.Completion{}, fmt.Errorf("completion %s achievement id: %w", record.ID, err)
	}
	day, err := time.Parse(time.RFC3339, record.CompletedAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("completion %s completed_at: %w", record.ID, err)
	}
	return models.Completion{
		ID:            id,
		AchievementID: achievementID,
		Day:           day,
		Points:        record.Points,
	}, nil
}
