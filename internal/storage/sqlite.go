package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ashvell/attain/internal/state"
	"github.com/ashvell/attain/internal/util"
)

// SQLiteStore implements the same whole-snapshot contract over a SQLite
// database: Save replaces all rows in one transaction, Load rebuilds
// the full state.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, wrapErr("open", "database", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("open", "database", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, wrapErr("open", "database", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			detail TEXT DEFAULT '',
			icon_source TEXT DEFAULT '',
			icon_value TEXT DEFAULT '',
			points INTEGER NOT NULL DEFAULT 10,
			category TEXT DEFAULT '',
			schedule TEXT NOT NULL,
			reminder_times TEXT,
			created_at TEXT NOT NULL,
			archived INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS completions (
			id TEXT PRIMARY KEY,
			achievement_id TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(achievement_id) REFERENCES achievements(id)
		);`,
	}
	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return wrapErr("migrate", "database", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() (*state.State, error) {
	rows, err := s.db.Query(`
		SELECT id, title, detail, icon_source, icon_value, points, category,
		       schedule, reminder_times, created_at, archived
		FROM achievements ORDER BY position ASC`)
	if err != nil {
		return nil, wrapErr("load", "achievements", err)
	}
	defer rows.Close()

	var doc snapshot
	for rows.Next() {
		var record achievementRecord
		var scheduleRaw string
		var reminders *string
		var archived int
		if err := rows.Scan(
			&record.ID, &record.Title, &record.Detail,
			&record.Icon.Source, &record.Icon.Value,
			&record.Points, &record.Category,
			&scheduleRaw, &reminders, &record.CreatedAt, &archived,
		); err != nil {
			return nil, wrapErr("load", "achievements", err)
		}
		record.Schedule = json.RawMessage(scheduleRaw)
		record.Archived = util.IntToBool(archived)
		if reminders != nil && *reminders != "" {
			if err := json.Unmarshal([]byte(*reminders), &record.ReminderTimes); err != nil {
				return nil, wrapErr("decode", "reminder times", err)
			}
		}
		doc.Achievements = append(doc.Achievements, record)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("load", "achievements", err)
	}

	completionRows, err := s.db.Query(`
		SELECT id, achievement_id, completed_at, points
		FROM completions ORDER BY completed_at ASC`)
	if err != nil {
		return nil, wrapErr("load", "completions", err)
	}
	defer completionRows.Close()
	for completionRows.Next() {
		var record completionRecord
		if err := completionRows.Scan(&record.ID, &record.AchievementID, &record.CompletedAt, &record.Points); err != nil {
			return nil, wrapErr("load", "completions", err)
		}
		doc.Completions = append(doc.Completions, record)
	}
	if err := completionRows.Err(); err != nil {
		return nil, wrapErr("load", "completions", err)
	}

	st, err := decodeState(doc)
	if err != nil {
		return nil, wrapErr("decode", "database", err)
	}
	return st, nil
}

func (s *SQLiteStore) Save(st *state.State) error {
	doc, err := encodeState(st)
	if err != nil {
		return wrapErr("encode", "database", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return wrapErr("save", "database", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return wrapErr("save", "completions", err)
	}
	if _, err := tx.Exec("DELETE FROM achievements"); err != nil {
		return wrapErr("save", "achievements", err)
	}

	for i, record := range doc.Achievements {
		var reminders interface{}
		if len(record.ReminderTimes) > 0 {
			raw, err := json.Marshal(record.ReminderTimes)
			if err != nil {
				return wrapErr("encode", "reminder times", err)
			}
			reminders = string(raw)
		}
		if _, err := tx.Exec(`
			INSERT INTO achievements
			(id, title, detail, icon_source, icon_value, points, category,
			 schedule, reminder_times, created_at, archived, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID, record.Title, record.Detail,
			string(record.Icon.Source), record.Icon.Value,
			record.Points, record.Category,
			string(record.Schedule), reminders, record.CreatedAt,
			util.BoolToInt(record.Archived), i,
		); err != nil {
			return wrapErr("save", "achievements", err)
		}
	}

	for _, record := range doc.Completions {
		if _, err := tx.Exec(`
			INSERT INTO completions (id, achievement_id, completed_at, points)
			VALUES (?, ?, ?, ?)`,
			record.ID, record.AchievementID, record.CompletedAt, record.Points,
		); err != nil {
			return wrapErr("save", "completions", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("save", "database", err)
	}
	commit = true
	return nil
}
