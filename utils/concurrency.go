package utils

import (
	"context"
	"sync"
)

// MapParallel runs fn over items with at most limit invocations in flight
// at once, used to stay under upstream API rate limits.
//
// Results and errors come back positionally: slot i always holds the
// outcome for items[i], regardless of completion order, and a failing
// item only marks its own slot. It is a concurrency limiter, not a retry
// or batching mechanism.
func MapParallel[T any, R any](
	ctx context.Context,
	limit int,
	items []T,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}
	if limit < 1 {
		limit = 1
	}

	semaphore := make(chan struct{}, limit)
	results := make([]R, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i], errs[i] = fn(ctx, i, items[i])
		}(i)
	}
	wg.Wait()

	return results, errs
}
