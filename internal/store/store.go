// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/lingocheck/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for scores and attempts.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			level TEXT NOT NULL,
			skill TEXT NOT NULL,
			percent INTEGER NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (level, skill)
		);`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			level TEXT NOT NULL,
			skill TEXT NOT NULL,
			percent INTEGER NOT NULL,
			matches INTEGER NOT NULL,
			total INTEGER NOT NULL,
			input TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_key ON attempts(level, skill, created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetScore returns the stored percent for key and whether it exists.
func (s *Store) GetScore(ctx context.Context, key model.ScoreKey) (int, bool, error) {
	var percent int
	err := s.db.QueryRowContext(ctx,
		`SELECT percent FROM scores WHERE level = ? AND skill = ?`,
		string(key.Level), string(key.Skill),
	).Scan(&percent)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return percent, true, nil
}

// SetScore stores percent for key, replacing any previous value.
func (s *Store) SetScore(ctx context.Context, key model.ScoreKey, percent int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (level, skill, percent, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(level, skill) DO UPDATE SET percent = excluded.percent, updated_at = excluded.updated_at`,
		string(key.Level), string(key.Skill), percent, time.Now().Format(time.RFC3339Nano),
	)
	return err
}

// RemoveScore deletes the score for key. Removing a missing key is not an error.
func (s *Store) RemoveScore(ctx context.Context, key model.ScoreKey) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM scores WHERE level = ? AND skill = ?`,
		string(key.Level), string(key.Skill),
	)
	return err
}

// ClearScores deletes every stored score. Attempt history is kept.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scores`)
	return err
}

// ListScores returns every stored score ordered by level and skill.
func (s *Store) ListScores(ctx context.Context) ([]model.ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT level, skill, percent, updated_at FROM scores ORDER BY level, skill`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ScoreRecord
	for rows.Next() {
		var rec model.ScoreRecord
		var level, skill, updatedAt string
		if err := rows.Scan(&level, &skill, &rec.Percent, &updatedAt); err != nil {
			return nil, err
		}
		rec.Key = model.ScoreKey{Level: model.Level(level), Skill: model.Skill(skill)}
		parsed, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, err
		}
		rec.UpdatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// InsertAttempt appends a scored submission to the history.
func (s *Store) InsertAttempt(ctx context.Context, attempt model.Attempt) (int64, error) {
	at := attempt.At
	if at.IsZero() {
		at = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (level, skill, percent, matches, total, input, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(attempt.Key.Level),
		string(attempt.Key.Skill),
		attempt.Result.Percent,
		attempt.Result.Matches,
		attempt.Result.Total,
		attempt.Input,
		at.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAttempts returns the most recent attempts for key in chronological order.
// A non-positive limit returns all attempts.
func (s *Store) ListAttempts(ctx context.Context, key model.ScoreKey, limit int) ([]model.Attempt, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, percent, matches, total, input, created_at FROM (
			SELECT id, percent, matches, total, input, created_at FROM attempts
			WHERE level = ? AND skill = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) ORDER BY created_at ASC, id ASC`,
		string(key.Level), string(key.Skill), limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var attempts []model.Attempt
	for rows.Next() {
		a := model.Attempt{Key: key}
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Result.Percent, &a.Result.Matches, &a.Result.Total, &a.Input, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		a.At = parsed
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}
