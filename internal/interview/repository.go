package interview

import (
	"context"
	"errors"
)

// ErrStaleSession is returned by Update when the stored session changed
// since it was read.
var ErrStaleSession = errors.New("session was modified concurrently")

// Repository stores sessions by id. Implementations return errors matching
// serviceerr.ErrConflict for duplicate ids and serviceerr.ErrNotFound for
// unknown ids, and must be safe for concurrent use.
type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	// Update stores s with its Version incremented, but only while the
	// stored Version still equals s.Version. Otherwise it returns an error
	// matching ErrStaleSession.
	Update(ctx context.Context, s Session) error
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Session, error)
}
