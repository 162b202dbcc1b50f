package interviewmemory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkcm/interview-manager/internal/interview"
	interviewmemory "github.com/openkcm/interview-manager/internal/interview/memory"
	"github.com/openkcm/interview-manager/internal/question"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

func newSession(id string) interview.Session {
	s := interview.NewSession(id, 2, question.DifficultyEasy, question.CategoryTechnical, time.Now())
	s.Phase = interview.PhaseAwaitingAnswer
	s.CurrentQuestion = "What is a goroutine?"
	s.UsedQuestions = []string{s.CurrentQuestion}
	return s
}

func TestRepository(t *testing.T) {
	ctx := t.Context()
	repo := interviewmemory.NewRepository(0)

	tests := []struct {
		name      string
		run       func() error
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:      "create",
			run:       func() error { return repo.Create(ctx, newSession("s1")) },
			assertErr: assert.NoError,
		},
		{
			name:      "create duplicate",
			run:       func() error { return repo.Create(ctx, newSession("s1")) },
			assertErr: errorIs(serviceerr.ErrConflict),
		},
		{
			name:      "update existing",
			run:       func() error { s := newSession("s1"); s.PendingAnswer = "x"; return repo.Update(ctx, s) },
			assertErr: assert.NoError,
		},
		{
			name:      "update from a stale version",
			run:       func() error { s := newSession("s1"); s.PendingAnswer = "y"; return repo.Update(ctx, s) },
			assertErr: errorIs(interview.ErrStaleSession),
		},
		{
			name:      "update unknown",
			run:       func() error { return repo.Update(ctx, newSession("s2")) },
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

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "x", got.PendingAnswer)
	assert.Equal(t, int64(1), got.Version)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	require.ErrorIs(t, err, serviceerr.ErrNotFound)
}

func TestRepositoryReturnsCopies(t *testing.T) {
	ctx := t.Context()
	repo := interviewmemory.NewRepository(0)

	s := newSession("s1")
	require.NoError(t, repo.Create(ctx, s))
	s.UsedQuestions[0] = "changed by caller"

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "What is a goroutine?", got.UsedQuestions[0])

	got.UsedQuestions[0] = "changed by reader"
	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "What is a goroutine?", again.UsedQuestions[0])
}

func TestRepositoryConcurrentCreate(t *testing.T) {
	ctx := t.Context()
	repo := interviewmemory.NewRepository(0)

	const callers = 10
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			errs[i] = repo.Create(ctx, newSession("same"))
		})
	}
	for i := range 20 {
		wg.Go(func() {
			_ = repo.Create(ctx, newSession(fmt.Sprintf("other-%d", i)))
		})
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		}
	}
	assert.Equal(t, 1, created)

	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 21)
}

func TestRepositoryIdleExpiry(t *testing.T) {
	ctx := t.Context()
	repo := interviewmemory.NewRepository(20 * time.Millisecond)

	require.NoError(t, repo.Create(ctx, newSession("s1")))
	require.Eventually(t, func() bool {
		_, err := repo.Get(ctx, "s1")
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func errorIs(target error) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, msgAndArgs ...any) bool {
		return assert.ErrorIs(t, err, target, msgAndArgs...)
	}
}

func TestRepositoryConcurrentUpdate(t *testing.T) {
	ctx := t.Context()
	repo := interviewmemory.NewRepository(0)
	require.NoError(t, repo.Create(ctx, newSession("same")))

	const callers = 10
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			s := newSession("same")
			s.PendingAnswer = fmt.Sprintf("answer %d", i)
			errs[i] = repo.Update(ctx, s)
		})
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, interview.ErrStaleSession)
	}
	assert.Equal(t, 1, succeeded)
}
