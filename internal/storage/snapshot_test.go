package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/schedule"
	"github.com/ashvell/attain/internal/state"
	"github.com/ashvell/attain/internal/testutil"
)

var cal = calendar.NewGregorian(time.UTC)

func sampleState(t *testing.T) *state.State {
	t.Helper()
	a := testutil.NewAchievement().
		WithTitle("Morning stretch").
		WithPoints(15).
		WithCategory("Fitness").
		WithSchedule(schedule.Weekly{Weekdays: []calendar.Weekday{calendar.Monday, calendar.Thursday}}).
		WithReminder(7, 30).
		Build()
	b := testutil.NewAchievement().WithTitle("Read a chapter").Build()
	st := state.New([]models.Achievement{a, b}, nil)
	st.LogCompletion(a.ID, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), cal)
	st.LogCompletion(b.ID, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), cal)
	return st
}

func assertStatesMatch(t *testing.T, want, got *state.State) {
	t.Helper()
	wantAchievements := want.Achievements()
	gotAchievements := got.Achievements()
	if len(gotAchievements) != len(wantAchievements) {
		t.Fatalf("expected %d achievements, got %d", len(wantAchievements), len(gotAchievements))
	}
	for i, wa := range wantAchievements {
		ga := gotAchievements[i]
		if ga.ID != wa.ID || ga.Title != wa.Title || ga.Points != wa.Points ||
			ga.Category != wa.Category || ga.Archived != wa.Archived {
			t.Fatalf("achievement %d mismatch: want %+v, got %+v", i, wa, ga)
		}
		if len(ga.ReminderTimes) != len(wa.ReminderTimes) {
			t.Fatalf("achievement %d reminder times mismatch", i)
		}
		probe := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC) // Monday
		for d := 0; d < 7; d++ {
			day := cal.AddDays(probe, d)
			if ga.Schedule.IsDue(day, cal) != wa.Schedule.IsDue(day, cal) {
				t.Fatalf("achievement %d schedule diverges on %s", i, day.Format("2006-01-02"))
			}
		}
	}
	wantCompletions := want.Completions()
	gotCompletions := got.Completions()
	if len(gotCompletions) != len(wantCompletions) {
		t.Fatalf("expected %d completions, got %d", len(wantCompletions), len(gotCompletions))
	}
	for i, wc := range wantCompletions {
		gc := gotCompletions[i]
		if gc.ID != wc.ID || gc.AchievementID != wc.AchievementID || gc.Points != wc.Points {
			t.Fatalf("completion %d mismatch: want %+v, got %+v", i, wc, gc)
		}
		if !gc.Day.Equal(wc.Day) {
			t.Fatalf("completion %d day mismatch: want %v, got %v", i, wc.Day, gc.Day)
		}
	}
}

func TestSnapshotLoadMissingFile(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "achievements.json"))
	st, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Achievements()) != 0 || len(st.Completions()) != 0 {
		t.Fatalf("expected empty state for missing snapshot")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.json")
	store := NewSnapshotStore(path)
	want := sampleState(t)

	if err := store.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	assertStatesMatch(t, want, got)
}

func TestSnapshotSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "achievements.json")
	store := NewSnapshotStore(path)
	if err := store.Save(state.New(nil, nil)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot at %s: %v", path, err)
	}
}

func TestSnapshotLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	store := NewSnapshotStore(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error loading corrupt snapshot")
	}
}

func TestSnapshotLoadBadScheduleType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.json")
	doc := `{"achievements":[{"id":"8d9e6f1a-2b3c-4d5e-8f90-112233445566","title":"x","icon":{"source":"systemSymbol","value":"star"},"points":10,"category":"General","schedule":{"type":"fortnightly"},"created_at":"2024-04-01T00:00:00Z"}],"completions":[]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	store := NewSnapshotStore(path)
	_, err := store.Load()
	if err == nil {
		t.Fatal("expected error for unknown schedule type")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %T", err)
	}
	if opErr.Op != "decode" {
		t.Fatalf("expected decode op, got %q", opErr.Op)
	}
}
