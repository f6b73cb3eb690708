// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/gym-check/attendance"
	"github.com/danielhkuo/gym-check/models"
)

// SQLStore implements attendance.RecordStore on PostgreSQL or SQLite
type SQLStore struct {
	db *sql.DB
}

var _ attendance.RecordStore = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, warning_count FROM users ORDER BY username, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.WarningCount); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, warning_count FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.WarningCount)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, attendance.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// ListLogsBetween returns the user's logs with from <= date <= to.
// Rows come back in no particular order.
func (s *SQLStore) ListLogsBetween(ctx context.Context, userID, from, to string) ([]models.ExerciseLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, date, image_url, thumb_url
		FROM exercise_logs
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []models.ExerciseLog
	for rows.Next() {
		var l models.ExerciseLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.ImageURL, &l.ThumbURL); err != nil {
			return nil, fmt.Errorf("failed to scan exercise log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercise logs: %w", err)
	}

	return logs, nil
}

func (s *SQLStore) HasLogOn(ctx context.Context, userID, date string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM exercise_logs
			WHERE user_id = $1 AND date = $2
		)
	`, userID, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check exercise log: %w", err)
	}
	return exists, nil
}

// InsertLog relies on UNIQUE (user_id, date) to reject a second row for
// the same day and reports that case as attendance.ErrDuplicateLog.
func (s *SQLStore) InsertLog(ctx context.Context, log models.ExerciseLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercise_logs (id, user_id, date, image_url, thumb_url)
		VALUES ($1, $2, $3, $4, $5)
	`, log.ID, log.UserID, log.Date, log.ImageURL, log.ThumbURL)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrDuplicateLog
		}
		return fmt.Errorf("failed to insert exercise log: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// primary code only when extended codes are off
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}
