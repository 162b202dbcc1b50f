// Package interviewmemory keeps interview sessions in process memory.
package interviewmemory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/openkcm/interview-manager/internal/interview"
	"github.com/openkcm/interview-manager/internal/serviceerr"
)

var ErrUnexpectedObject = errors.New("unexpected object in session cache")

// Repository stores session copies in a go-cache instance. Updates and
// deletes share a mutex so the version check and the write are atomic.
type Repository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

var _ = interview.Repository(&Repository{})

// NewRepository creates a repository. A positive idleTimeout evicts
// sessions that were not written for that long; zero keeps them forever.
func NewRepository(idleTimeout time.Duration) *Repository {
	expiration, cleanup := cache.NoExpiration, time.Duration(0)
	if idleTimeout > 0 {
		expiration, cleanup = idleTimeout, idleTimeout/2
	}

	return &Repository{
		cache: cache.New(expiration, cleanup),
	}
}

func (r *Repository) Create(_ context.Context, s interview.Session) error {
	if err := r.cache.Add(s.ID, s.Clone(), cache.DefaultExpiration); err != nil {
		return errors.Join(serviceerr.ErrConflict, err)
	}

	return nil
}

func (r *Repository) Get(_ context.Context, id string) (interview.Session, error) {
	obj, ok := r.cache.Get(id)
	if !ok {
		return interview.Session{}, serviceerr.ErrNotFound
	}

	s, ok := obj.(interview.Session)
	if !ok {
		return interview.Session{}, ErrUnexpectedObject
	}

	return s.Clone(), nil
}

func (r *Repository) Update(ctx context.Context, s interview.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.Get(ctx, s.ID)
	if err != nil {
		return err
	}
	if stored.Version != s.Version {
		return interview.ErrStaleSession
	}

	s = s.Clone()
	s.Version++
	if err := r.cache.Replace(s.ID, s, cache.DefaultExpiration); err != nil {
		return errors.Join(serviceerr.ErrNotFound, err)
	}

	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Delete(id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]interview.Session, error) {
	items := r.cache.Items()
	sessions := make([]interview.Session, 0, len(items))
	for _, item := range items {
		s, ok := item.Object.(interview.Session)
		if !ok {
			return nil, ErrUnexpectedObject
		}
		sessions = append(sessions, s.Clone())
	}

	return sessions, nil
}
