package interview

import (
	"context"
	"fmt"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// CleanupIdleSessions deletes sessions that have not been touched for longer
// than the specified timeout. Sessions that cannot be deleted are skipped.
func (s *Service) CleanupIdleSessions(ctx context.Context, timeout time.Duration) error {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	deleted := 0
	for _, sess := range sessions {
		if s.now().Sub(sess.UpdatedAt) < timeout {
			continue
		}

		if err := s.deleteIfIdle(ctx, sess.ID, timeout); err != nil {
			slogctx.Warn(ctx, "Could not delete idle session", "session_id", sess.ID, "error", err)
			continue
		}
		deleted++
	}

	slogctx.Info(ctx, "Cleaned up idle sessions", "deleted", deleted, "total", len(sessions))
	return nil
}

// deleteIfIdle re-reads the session under its lock so that an answer
// processed since listing keeps the session alive.
func (s *Service) deleteIfIdle(ctx context.Context, id string, timeout time.Duration) error {
	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return err
	}
	if s.now().Sub(sess.UpdatedAt) < timeout {
		return nil
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	slogctx.Info(ctx, "Deleted idle session", "session_id", id)

	return nil
}
