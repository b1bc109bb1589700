package pool_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastaem/kadmin/pkg/pool"
)

func TestPool_MapCollectsResultsInItemOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	var count atomic.Int64

	task := func(ctx context.Context, item int) (string, error) {
		count.Add(1)
		time.Sleep(10 * time.Millisecond) // Simulate work
		return fmt.Sprintf("result-%d", item), nil
	}

	results, errs := pool.Map(context.Background(), items, 3, task)

	assert.Empty(t, errs)
	assert.Equal(t, int64(len(items)), count.Load())
	require.Len(t, results, len(items))
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("result-%d", item), results[i])
	}
}

func TestPool_CollectsErrorsAndZeroesFailedResults(t *testing.T) {
	items := []int{1, 2, 3, 4}
	expectedErr := errors.New("worker failed")

	task := func(ctx context.Context, item int) (string, error) {
		if item%2 == 0 {
			return "", expectedErr
		}
		return "ok", nil
	}

	results, errs := pool.Map(context.Background(), items, 2, task)

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], expectedErr)
	assert.ErrorIs(t, errs[1], expectedErr)
	assert.Equal(t, "ok", results[0])
	assert.Empty(t, results[1])
	assert.Equal(t, "ok", results[2])
	assert.Empty(t, results[3])
}

func TestPool_ContextCancellation(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	var processedCount atomic.Int64

	ctx, cancel := context.WithCancel(context.Background())

	task := func(ctx context.Context, item int) (int, error) {
		processedCount.Add(1)
		// Cancel the context after the first item is processed
		if item == 0 {
			cancel()
		}
		// A realistic worker would check the context
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
		return item, nil
	}

	pool.Map(ctx, items, runtime.NumCPU(), task)

	// Due to the nature of concurrency, we can't assert an exact number.
	// But it should be much less than the total number of items.
	assert.Less(t, processedCount.Load(), int64(len(items)), "Pool should stop processing after context is cancelled")
}
