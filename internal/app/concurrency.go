package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel3 executes three functions concurrently and returns all results or first error.
// The context passed to each function is canceled as soon as any of them fails.
//
// Example:
//
//	quotes, count, total, err := Parallel3(ctx,
//	    func(ctx context.Context) ([]domain.Quote, error) { return store.ListQuotes(ctx, f, w) },
//	    func(ctx context.Context) (int64, error) { return store.CountQuotes(ctx, f, &w) },
//	    func(ctx context.Context) (int64, error) { return store.CountQuotes(ctx, f, nil) },
//	)
func Parallel3[T1, T2, T3 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
	fn3 func(context.Context) (T3, error),
) (result1 T1, result2 T2, result3 T3, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var fnErr error

		result1, fnErr = fn1(ctx)

		return fnErr
	})

	g.Go(func() error {
		var fnErr error

		result2, fnErr = fn2(ctx)

		return fnErr
	})

	g.Go(func() error {
		var fnErr error

		result3, fnErr = fn3(ctx)

		return fnErr
	})

	err = g.Wait()
	if err != nil {
		var (
			zero1 T1
			zero2 T2
			zero3 T3
		)

		return zero1, zero2, zero3, fmt.Errorf("parallel execution failed: %w", err)
	}

	return result1, result2, result3, nil
}
