package interview

import (
	"context"
	"fmt"
	"time"
)

// callWithTimeout runs fn with a deadline and returns once either fn or the
// deadline finishes. A callee that ignores ctx keeps running in the
// background but no longer holds the caller.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}

	done := make(chan result, 1)
	go func() {
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrGenerationTimeout, ctx.Err())
	}
}
