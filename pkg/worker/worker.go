package worker

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// ErrorFunc is called when a job handler returns an error.
type ErrorFunc func(id string, err error)

const queueSize = 64

// Pool is a worker pool.
//
// Jobs are partitioned by key: all jobs with the same key are handled by the same worker
// in the order they were added, jobs with different keys may run in parallel.
type Pool[T any] struct {
	workersCount int
	handlerFunc  Func[T]
	errorFunc    ErrorFunc
	queues       []chan job[T]
	wg           *sync.WaitGroup
	dedup        map[string]struct{}
	mu           *sync.Mutex
}

// NewPool creates a new worker pool.
func NewPool[T any](workersCount int, handlerFunc Func[T]) *Pool[T] {
	if workersCount < 1 {
		workersCount = 1
	}

	queues := make([]chan job[T], workersCount)
	for i := range queues {
		queues[i] = make(chan job[T], queueSize)
	}

	return &Pool[T]{
		workersCount: workersCount,
		handlerFunc:  handlerFunc,
		errorFunc: func(id string, err error) {
			fmt.Printf("handle job %s error: %v\n", id, err)
		},
		queues: queues,
		wg:     &sync.WaitGroup{},
		dedup:  make(map[string]struct{}),
		mu:     &sync.Mutex{},
	}
}

// SetErrorFunc overrides the default handler of job errors.
func (p *Pool[T]) SetErrorFunc(errorFunc ErrorFunc) {
	p.errorFunc = errorFunc
}

// Start starts the number of workers that were passed in constructor.
func (p *Pool[T]) Start(ctx context.Context) {
	for _, queue := range p.queues {
		p.wg.Add(1)
		go p.worker(ctx, queue)
	}
}

func (p *Pool[T]) worker(ctx context.Context, queue chan job[T]) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-queue:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				p.errorFunc(job.ID, err)
			}
			p.mu.Lock()
			delete(p.dedup, job.ID)
			p.mu.Unlock()
		}
	}
}

// Stop stops the worker pool. Jobs that were already added are handled before it returns.
func (p *Pool[T]) Stop() {
	for _, queue := range p.queues {
		close(queue)
	}
	p.wg.Wait()
}

// AddJob adds a new job to the worker pool.
// A job is skipped when a job with the same id is still waiting or being handled.
func (p *Pool[T]) AddJob(id, key string, data T) {
	p.mu.Lock()
	_, ok := p.dedup[id]
	if ok {
		p.mu.Unlock()
		return
	}
	p.dedup[id] = struct{}{}
	p.mu.Unlock()

	p.queues[p.partition(key)] <- job[T]{ID: id, Data: data}
}

func (p *Pool[T]) partition(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))

	return int(hash.Sum32() % uint32(p.workersCount))
}
