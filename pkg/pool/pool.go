package pool

import (
	"context"
	"sync"
)

// TaskFunc defines the function signature for a worker that processes an item
// and produces a result.
type TaskFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Map executes a worker pool over a slice of items. Results are returned in a
// slice parallel to items: results[i] holds the outcome for items[i], and is
// the zero value when that item failed or was skipped due to cancellation.
func Map[T, R any](ctx context.Context, items []T, numWorkers int, task TaskFunc[T, R]) ([]R, []error) {
	type job struct {
		index int
		item  T
	}

	var wg sync.WaitGroup
	taskChan := make(chan job, numWorkers)
	errChan := make(chan error, len(items))
	results := make([]R, len(items))

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range taskChan {
				select {
				case <-ctx.Done():
					return
				default:
					res, err := task(ctx, j.item)
					if err != nil {
						errChan <- err
						continue
					}
					results[j.index] = res
				}
			}
		}()
	}

OUT:
	for i, item := range items {
		select {
		case taskChan <- job{index: i, item: item}:
		case <-ctx.Done():
			// Stop feeding tasks if the context is cancelled
			break OUT
		}
	}
	close(taskChan)

	wg.Wait()
	close(errChan)

	var allErrors []error
	for err := range errChan {
		allErrors = append(allErrors, err)
	}
	return results, allErrors
}
