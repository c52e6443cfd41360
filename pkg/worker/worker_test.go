package worker_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/VladPetriv/currency_exchange/pkg/worker"
	"github.com/stretchr/testify/assert"
)

func TestPool_KeepsOrderForTheSameKey(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		handled = make(map[string][]int)
	)

	pool := worker.NewPool[[2]int](3, func(_ context.Context, _ string, data [2]int) error {
		mu.Lock()
		defer mu.Unlock()

		key := strconv.Itoa(data[0])
		handled[key] = append(handled[key], data[1])

		return nil
	})
	pool.Start(context.Background())

	const jobsPerKey = 50
	for i := range jobsPerKey {
		for key := range 4 {
			pool.AddJob(fmt.Sprintf("%d-%d", key, i), strconv.Itoa(key), [2]int{key, i})
		}
	}

	pool.Stop()

	assert.Len(t, handled, 4)
	for key, values := range handled {
		assert.Len(t, values, jobsPerKey, "key %s", key)
		for i, value := range values {
			assert.Equal(t, i, value, "key %s", key)
		}
	}
}

func TestPool_SkipsDuplicatedJobs(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		counter int
	)
	release := make(chan struct{})

	pool := worker.NewPool[struct{}](1, func(_ context.Context, _ string, _ struct{}) error {
		<-release

		mu.Lock()
		counter++
		mu.Unlock()

		return nil
	})
	pool.Start(context.Background())

	pool.AddJob("update-1", "chat-1", struct{}{})
	pool.AddJob("update-1", "chat-1", struct{}{})

	close(release)
	pool.Stop()

	assert.Equal(t, 1, counter)
}

func TestPool_ReportsJobErrors(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		failed []string
	)

	pool := worker.NewPool[struct{}](2, func(_ context.Context, id string, _ struct{}) error {
		return fmt.Errorf("job %s failed", id)
	})
	pool.SetErrorFunc(func(id string, err error) {
		mu.Lock()
		defer mu.Unlock()

		failed = append(failed, id)
	})
	pool.Start(context.Background())

	pool.AddJob("1", "chat-1", struct{}{})
	pool.AddJob("2", "chat-2", struct{}{})
	pool.Stop()

	assert.ElementsMatch(t, []string{"1", "2"}, failed)
}
