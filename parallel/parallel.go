// Package parallel fans read-only work out over the fragments of a SplitVec.
//
// Fragments are disjoint and never move, so each one can be handed to its own
// goroutine without copying. The caller must guarantee that the SplitVec is not
// mutated until the call returns.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/splitvec"
)

// FragmentFunc processes the live elements of one fragment. offset is the
// global index of items[0].
type FragmentFunc[T any] func(ctx context.Context, fragment, offset int, items []T) error

// ForEachFragment calls fn for every non-empty fragment, running at most limit
// calls at once (limit <= 0 means no limit). It returns the first error from fn,
// or the context error if ctx was cancelled before all fragments were scheduled.
func ForEachFragment[T any](ctx context.Context, v *splitvec.SplitVec[T], limit int, fn FragmentFunc[T]) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	offset := 0
	for f := range v.FragmentCount() {
		items, err := v.Fragment(f)
		if err != nil {
			return err
		}
		start := offset
		offset += len(items)
		if len(items) == 0 {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, f, start, items)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Reduce maps every non-empty fragment with mapFn concurrently and folds the
// partial results in fragment order, starting from init. The fold runs on the
// calling goroutine, so combine needs no synchronization.
func Reduce[T, R any](
	ctx context.Context,
	v *splitvec.SplitVec[T],
	limit int,
	mapFn func(ctx context.Context, items []T) (R, error),
	combine func(acc, partial R) R,
	init R,
) (R, error) {
	partials := make([]R, v.FragmentCount())
	present := make([]bool, v.FragmentCount())

	err := ForEachFragment(ctx, v, limit, func(ctx context.Context, fragment, _ int, items []T) error {
		r, err := mapFn(ctx, items)
		if err != nil {
			return err
		}
		partials[fragment] = r
		present[fragment] = true
		return nil
	})
	if err != nil {
		return init, err
	}

	acc := init
	for f, r := range partials {
		if present[f] {
			acc = combine(acc, r)
		}
	}
	return acc, nil
}
