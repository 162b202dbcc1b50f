package interviewsqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/interview"
	interviewsqlite "github.com/openkcm/interview-manager/internal/interview/sqlite"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

func openRepo(t *testing.T, path string) *interviewsqlite.Repository {
	t.Helper()

	repo, err := interviewsqlite.Open(t.Context(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newSession(id string, updated time.Time) interview.Session {
	s := interview.NewSession(id, 1, question.DifficultyHard, question.CategoryTechnical, updated)
	s.Phase = interview.PhaseAwaitingAnswer
	s.CurrentQuestion = "Explain the CAP theorem."
	s.UsedQuestions = []string{s.CurrentQuestion}
	return s
}

func TestRepository(t *testing.T) {
	ctx := t.Context()
	repo := openRepo(t, ":memory:")
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		run       func() error
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:      "create",
			run:       func() error { return repo.Create(ctx, newSession("s1", now)) },
			assertErr: assert.NoError,
		},
		{
			name:      "create duplicate",
			run:       func() error { return repo.Create(ctx, newSession("s1", now)) },
			assertErr: errorIs(serviceerr.ErrConflict),
		},
		{
			name:      "update unknown",
			run:       func() error { return repo.Update(ctx, newSession("s2", now)) },
			assertErr: errorIs(serviceerr.ErrNotFound),
		},
		{
			name:      "get unknown",
			run:       func() error { _, err := repo.Get(ctx, "s2"); return err },
			assertErr: errorIs(serviceerr.ErrNotFound),
		},
		{
			name:      "delete unknown",
			run:       func() error { return repo.Delete(ctx, "s2") },
			assertErr: assert.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assertErr(t, tt.run())
		})
	}

	updated := newSession("s1", now)
	updated.PendingAnswer = "It is about trade-offs."
	updated.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	want := updated
	want.Version = 1
	assert.Empty(t, cmp.Diff(want, got))

	stale := updated
	stale.PendingAnswer = "A second writer."
	require.ErrorIs(t, repo.Update(ctx, stale), interview.ErrStaleSession)

	got.PendingAnswer = "Written on top of the latest version."
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, "Written on top of the latest version.", got.PendingAnswer)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	require.ErrorIs(t, err, serviceerr.ErrNotFound)
}

func TestRepositoryListAndReopen(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "sessions.sqlite")
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	repo, err := interviewsqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, newSession("late", now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newSession("early", now)))
	require.NoError(t, repo.Close())

	repo = openRepo(t, path)
	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "early", sessions[0].ID)
	assert.Equal(t, "late", sessions[1].ID)
}

func errorIs(target error) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, msgAndArgs ...any) bool {
		return assert.ErrorIs(t, err, target, msgAndArgs...)
	}
}
