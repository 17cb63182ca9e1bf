package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two functions concurrently. The first error cancels the
// other function's context and is returned.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r1, err = fn1(ctx)
		return err
	})

	g.Go(func() (err error) {
		r2, err = fn2(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return r1, r2, nil
}

// PartialResult holds one function's value or error.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with at most limit in flight and collects
// every result in input order. A failure does not cancel the others.
// Functions not yet started when ctx ends report ctx.Err().
func ParallelPartialLimit[T any](
	ctx context.Context,
	limit int,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	if limit < 1 {
		limit = 1
	}

	results := make([]PartialResult[T], len(fns))
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup

	for i, fn := range fns {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[i] = PartialResult[T]{Err: ctx.Err()}
				return
			}

			defer func() { <-sem }()

			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}
		})
	}

	wg.Wait()

	return results
}
