// Package interviewsqlite persists interview sessions in a local SQLite
// database for single node deployments.
package interviewsqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

const schema = `
CREATE TABLE IF NOT EXISTS interview_sessions (
	id         TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

type Repository struct {
	db *sql.DB
}

var _ = interview.Repository(&Repository{})

// Open opens (and creates if needed) the database at path. Use ":memory:"
// for a throwaway database.
func Open(ctx context.Context, path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite has a single writer, and an in-memory database lives in one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Create(ctx context.Context, s interview.Session) error {
	state, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO interview_sessions (id, state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, s.ID, string(state), s.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return expectOneRow(res, serviceerr.ErrConflict)
}

func (r *Repository) Get(ctx context.Context, id string) (interview.Session, error) {
	var state string
	err := r.db.QueryRowContext(ctx, `SELECT state FROM interview_sessions WHERE id = ?`, id).Scan(&state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return interview.Session{}, serviceerr.ErrNotFound
		}
		return interview.Session{}, fmt.Errorf("query session: %w", err)
	}

	var s interview.Session
	if err := json.Unmarshal([]byte(state), &s); err != nil {
		return interview.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return s, nil
}

func (r *Repository) Update(ctx context.Context, s interview.Session) error {
	expected := s.Version
	s.Version++
	state, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE interview_sessions SET state = ?, updated_at = ?
		WHERE id = ? AND COALESCE(json_extract(state, '$.version'), 0) = ?
	`, string(state), s.UpdatedAt.UnixNano(), s.ID, expected)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM interview_sessions WHERE id = ?`, s.ID).Scan(&exists)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return serviceerr.ErrNotFound
	case err != nil:
		return fmt.Errorf("query session: %w", err)
	}

	return interview.ErrStaleSession
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM interview_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]interview.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT state FROM interview_sessions ORDER BY updated_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []interview.Session
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		var s interview.Session
		if err := json.Unmarshal([]byte(state), &s); err != nil {
			return nil, fmt.Errorf("unmarshal session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func expectOneRow(res sql.Result, noRowErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return noRowErr
	}

	return nil
}
