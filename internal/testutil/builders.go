package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/schedule"
)

// AchievementBuilder provides fluent API for creating test achievements.
type AchievementBuilder struct {
	achievement models.Achievement
}

func NewAchievement() *AchievementBuilder {
	return &AchievementBuilder{
		achievement: models.Achievement{
			ID:        uuid.New(),
			Title:     "Test Achievement",
			Detail:    "A recurring test item",
			Icon:      models.SystemIcon("star"),
			Points:    models.DefaultPoints,
			Category:  models.DefaultCategory,
			Schedule:  schedule.Daily{},
			CreatedAt: time.Now(),
		},
	}
}

func (b *AchievementBuilder) WithTitle(title string) *AchievementBuilder {
	b.achievement.Title = title
	return b
}

func (b *AchievementBuilder) WithPoints(points int) *AchievementBuilder {
	b.achievement.Points = points
	return b
}

func (b *AchievementBuilder) WithCategory(category string) *AchievementBuilder {
	b.achievement.Category = category
	return b
}

func (b *AchievementBuilder) WithSchedule(s schedule.Schedule) *AchievementBuilder {
	b.achievement.Schedule = s
	return b
}

func (b *AchievementBuilder) WithReminder(hour, minute int) *AchievementBuilder {
	b.achievement.ReminderTimes = append(b.achievement.ReminderTimes, models.ReminderTime{Hour: hour, Minute: minute})
	return b
}

func (b *AchievementBuilder) Archived() *AchievementBuilder {
	b.achievement.Archived = true
	return b
}

func (b *AchievementBuilder) Build() models.Achievement {
	return b.achievement
}
