package interviewmock

import (
	"context"
	"sync"

	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

type RepositoryOption func(*Repository)

type Repository struct {
	mu       sync.Mutex
	sessions map[string]interview.Session

	createErr, getErr, updateErr, deleteErr, listErr error
}

func WithSession(s interview.Session) RepositoryOption {
	return func(r *Repository) { r.sessions[s.ID] = s.Clone() }
}
func WithCreateError(err error) RepositoryOption {
	return func(r *Repository) { r.createErr = err }
}
func WithGetError(err error) RepositoryOption {
	return func(r *Repository) { r.getErr = err }
}
func WithUpdateError(err error) RepositoryOption {
	return func(r *Repository) { r.updateErr = err }
}
func WithDeleteError(err error) RepositoryOption {
	return func(r *Repository) { r.deleteErr = err }
}
func WithListError(err error) RepositoryOption {
	return func(r *Repository) { r.listErr = err }
}

var _ = interview.Repository(&Repository{})

func NewInMemRepository(opts ...RepositoryOption) *Repository {
	r := &Repository{
		sessions: make(map[string]interview.Session),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Repository) Create(_ context.Context, s interview.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.sessions[s.ID]; ok {
		return serviceerr.ErrConflict
	}
	r.sessions[s.ID] = s.Clone()
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (interview.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return interview.Session{}, r.getErr
	}
	if s, ok := r.sessions[id]; ok {
		return s.Clone(), nil
	}
	return interview.Session{}, serviceerr.ErrNotFound
}

func (r *Repository) Update(_ context.Context, s interview.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.sessions[s.ID]
	if !ok {
		return serviceerr.ErrNotFound
	}
	if stored.Version != s.Version {
		return interview.ErrStaleSession
	}
	s = s.Clone()
	s.Version++
	r.sessions[s.ID] = s
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.sessions, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]interview.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	sessions := make([]interview.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s.Clone())
	}
	return sessions, nil
}
