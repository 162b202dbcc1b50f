// Package report defines the archived record of a finished interview.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Turn struct {
	Asker string `json:"asker"`
	Text  string `json:"text"`
}

// Report is the immutable record of a completed interview. A session id
// may be reused after a reset, so several reports can share it.
type Report struct {
	ID          uuid.UUID `json:"id"`
	SessionID   string    `json:"session_id"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Rounds      int       `json:"rounds"`
	Questions   []string  `json:"questions"`
	Evaluations []string  `json:"evaluations"`
	Feedbacks   []string  `json:"feedbacks"`
	Summary     string    `json:"summary"`
	Transcript  []Turn    `json:"transcript"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// Repository archives reports. Latest returns an error matching
// serviceerr.ErrNotFound when no report exists for the session.
type Repository interface {
	Create(ctx context.Context, r Report) error
	Latest(ctx context.Context, sessionID string) (Report, error)
}
