// Package interviewvalkey stores interview sessions in ValKey so that
// several API server replicas can share them. Updates are compare-and-set
// on the session version, so concurrent writers from different replicas
// cannot overwrite each other.
package interviewvalkey

import (
	"context"
	"errors"

	"github.com/valkey-io/valkey-go"

	"github.com/openkcm/interview-manager/internal/interview"
)

const objectTypeInterview = "interview"

var (
	ErrCreateSession = errors.New("creating session in store")
	ErrGetSession    = errors.New("getting session from store")
	ErrUpdateSession = errors.New("updating session in store")
	ErrDeleteSession = errors.New("deleting session from store")
	ErrListSessions  = errors.New("listing sessions from store")
)

type Repository struct {
	store *store
}

var _ = interview.Repository(&Repository{})

func NewRepository(valkeyClient valkey.Client, prefix string) *Repository {
	return &Repository{
		store: newStore(valkeyClient, prefix),
	}
}

func (r *Repository) Create(ctx context.Context, s interview.Session) error {
	if err := r.store.SetIfAbsent(ctx, objectTypeInterview, s.ID, s); err != nil {
		return errors.Join(ErrCreateSession, err)
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (interview.Session, error) {
	var s interview.Session
	if err := r.store.Get(ctx, objectTypeInterview, id, &s); err != nil {
		return interview.Session{}, errors.Join(ErrGetSession, err)
	}

	return s, nil
}

func (r *Repository) Update(ctx context.Context, s interview.Session) error {
	expected := s.Version
	s.Version++
	err := r.store.SetIfVersion(ctx, objectTypeInterview, s.ID, s, expected)
	switch {
	case errors.Is(err, errVersionMismatch):
		return errors.Join(ErrUpdateSession, interview.ErrStaleSession)
	case err != nil:
		return errors.Join(ErrUpdateSession, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Destroy(ctx, objectTypeInterview, id); err != nil {
		return errors.Join(ErrDeleteSession, err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]interview.Session, error) {
	sessions, err := getStoreObjects[interview.Session](ctx, r.store, objectTypeInterview, "*")
	if err != nil {
		return nil, errors.Join(ErrListSessions, err)
	}

	return sessions, nil
}
