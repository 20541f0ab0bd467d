package state

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/testutil"
)

func TestStatisticsRollUp(t *testing.T) {
	a := testutil.NewAchievement().WithPoints(20).WithCategory("Fitness").Build()
	st := New([]models.Achievement{a}, nil)
	start := day(t, 2024, time.April, 1) // Monday
	end := day(t, 2024, time.April, 7)

	st.LogCompletion(a.ID, start, cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 3), cal)

	stats := st.Statistics(models.Range{Start: start, End: end}, cal, end)
	if stats.TotalAchievements != 1 {
		t.Fatalf("expected 1 achievement, got %d", stats.TotalAchievements)
	}
	if stats.CompletedCount != 2 {
		t.Fatalf("expected 2 completions, got %d", stats.CompletedCount)
	}
	if stats.TotalPoints != 40 {
		t.Fatalf("expected 40 points, got %d", stats.TotalPoints)
	}
	// 2 completions over 1 achievement * 6 days.
	want := 2.0 / 6.0
	if diff := stats.CompletionRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected rate %.4f, got %.4f", want, stats.CompletionRate)
	}
	if got := len(stats.History); got != 7 {
		t.Fatalf("expected dense history of 7 days, got %d", got)
	}
	if stats.History[day(t, 2024, time.April, 3)] != 1 {
		t.Fatalf("expected 1 completion on April 3")
	}
	if stats.History[day(t, 2024, time.April, 5)] != 0 {
		t.Fatalf("expected zero entry present for April 5")
	}
	if stats.ByWeekday[calendar.Monday] != 1 || stats.ByWeekday[calendar.Wednesday] != 1 {
		t.Fatalf("expected one Monday and one Wednesday completion, got %v", stats.ByWeekday)
	}
	if stats.ByCategory["Fitness"] != 2 {
		t.Fatalf("expected 2 Fitness completions, got %v", stats.ByCategory)
	}
}

func TestStatisticsIgnoresOutOfRangeAndCountsArchived(t *testing.T) {
	a := testutil.NewAchievement().Build()
	archived := testutil.NewAchievement().Archived().Build()
	st := New([]models.Achievement{a, archived}, nil)

	st.LogCompletion(a.ID, day(t, 2024, time.March, 20), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 2), cal)

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.CompletedCount != 1 {
		t.Fatalf("expected out-of-range completion excluded, got %d", stats.CompletedCount)
	}
	if stats.TotalAchievements != 1 {
		t.Fatalf("expected archived achievements excluded from total, got %d", stats.TotalAchievements)
	}
}

func TestStatisticsEmptyState(t *testing.T) {
	st := New(nil, nil)
	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 1)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 1))
	if stats.CompletionRate != 0 {
		t.Fatalf("expected zero rate with no achievements, got %f", stats.CompletionRate)
	}
	if stats.CurrentStreak != 0 || stats.BestStreak != 0 {
		t.Fatalf("expected zero streaks, got %d/%d", stats.CurrentStreak, stats.BestStreak)
	}
	if got := len(stats.History); got != 1 {
		t.Fatalf("expected single-day history, got %d", got)
	}
}

func TestStatisticsOrphanCompletionFallsBackToGeneral(t *testing.T) {
	orphan := models.Completion{
		ID:            uuid.New(),
		AchievementID: uuid.New(),
		Day:           day(t, 2024, time.April, 2),
		Points:        5,
	}
	a := testutil.NewAchievement().Build()
	st := New([]models.Achievement{a}, []models.Completion{orphan})

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.ByCategory[models.DefaultCategory] != 1 {
		t.Fatalf("expected orphan completion under %q, got %v", models.DefaultCategory, stats.ByCategory)
	}
}

func TestStreakOverConsecutiveDays(t *testing.T) {
	a := testutil.NewAchievement().Build()
	st := New([]models.Achievement{a}, nil)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 6), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 7), cal)

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.CurrentStreak != 2 || stats.BestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", stats.CurrentStreak, stats.BestStreak)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	a := testutil.NewAchievement().Build()
	st := New([]models.Achievement{a}, nil)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 1), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 2), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 3), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 6), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 7), cal)

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.BestStreak != 3 {
		t.Fatalf("expected best streak 3, got %d", stats.BestStreak)
	}
	if stats.CurrentStreak != 2 {
		t.Fatalf("expected current streak 2, got %d", stats.CurrentStreak)
	}
}

func TestStreakGoesStale(t *testing.T) {
	a := testutil.NewAchievement().Build()
	st := New([]models.Achievement{a}, nil)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 1), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 2), cal)

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.CurrentStreak != 0 {
		t.Fatalf("expected stale streak zeroed, got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 2 {
		t.Fatalf("expected best streak preserved at 2, got %d", stats.BestStreak)
	}
}

// A duplicate same-day log produces an adjacent pair with difference 0,
// which restarts the run.
func TestStreakResetOnDuplicateDay(t *testing.T) {
	a := testutil.NewAchievement().Build()
	st := New([]models.Achievement{a}, nil)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 5), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 6), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 6), cal)
	st.LogCompletion(a.ID, day(t, 2024, time.April, 7), cal)

	rng := models.Range{Start: day(t, 2024, time.April, 1), End: day(t, 2024, time.April, 7)}
	stats := st.Statistics(rng, cal, day(t, 2024, time.April, 7))
	if stats.CurrentStreak != 2 {
		t.Fatalf("expected duplicate day to restart the run (current 2), got %d", stats.CurrentStreak)
	}
	if stats.BestStreak != 2 {
		t.Fatalf("expected best streak 2, got %d", stats.BestStreak)
	}
}
