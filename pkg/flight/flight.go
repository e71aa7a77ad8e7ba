// Package flight collapses concurrent identical calls into one.
package flight

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Do runs fn once for all concurrent callers sharing key. fn receives a
// context detached from any single caller and bounded by timeout, so one
// caller going away does not fail the others. Each caller stops waiting
// when its own ctx is done.
func Do[T any](
	ctx context.Context,
	g *singleflight.Group,
	key string,
	timeout time.Duration,
	fn func(ctx context.Context) (T, error),
) (T, bool, error) {
	detached := context.WithoutCancel(ctx)

	ch := g.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(detached, timeout)
		defer cancel()
		return fn(callCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Shared, r.Err
		}
		return r.Val.(T), r.Shared, nil
	}
}
