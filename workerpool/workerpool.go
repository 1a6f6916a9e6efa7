package workerpool

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrSkipped = errors.New("workerpool: job skipped after cancellation")

// Job is one unit of work. Jobs must be safe to run concurrently with each
// other.
type Job func(ctx context.Context) error

type WorkerPool struct {
	name        string
	workerCount int
	execTimeout time.Duration
	logger      zerolog.Logger
}

type Option func(*WorkerPool)

func New(opts ...Option) *WorkerPool {
	pool := &WorkerPool{
		name:        "worker-pool",
		workerCount: 1,
		execTimeout: 0,
		logger:      log.Logger,
	}

	for _, opt := range opts {
		opt(pool)
	}

	return pool
}

func WithWorkerCount(count int) Option {
	return func(pool *WorkerPool) {
		if count > 0 {
			pool.workerCount = count
		}
	}
}

// WithExecutionTimeout bounds each job separately.
func WithExecutionTimeout(timeout time.Duration) Option {
	return func(pool *WorkerPool) {
		if timeout > 0 {
			pool.execTimeout = timeout
		}
	}
}

func WithName(name string) Option {
	return func(pool *WorkerPool) {
		if name != "" {
			pool.name = name
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(pool *WorkerPool) {
		pool.logger = logger
	}
}

func (pool *WorkerPool) Name() string {
	return pool.name
}

// Run executes jobs on at most workerCount goroutines and returns one error
// slot per job, in job order. Once ctx is done, jobs that have not started
// report ErrSkipped.
func (pool *WorkerPool) Run(ctx context.Context, jobs []Job) []error {
	errs := make([]error, len(jobs))
	jobChan := make(chan int)

	workers := min(pool.workerCount, len(jobs))

	pool.logger.Debug().
		Str("pool", pool.name).
		Int("worker_count", workers).
		Int("job_count", len(jobs)).
		Dur("exec_timeout", pool.execTimeout).
		Msg("Worker pool is starting.")

	var wg sync.WaitGroup

	for workerID := range workers {
		wg.Go(func() {
			pool.worker(ctx, workerID, jobChan, jobs, errs)
		})
	}

	dispatched := 0

dispatch:
	for ; dispatched < len(jobs); dispatched++ {
		if ctx.Err() != nil {
			break
		}

		select {
		case <-ctx.Done():
			break dispatch
		case jobChan <- dispatched:
		}
	}

	close(jobChan)
	wg.Wait()

	for idx := dispatched; idx < len(jobs); idx++ {
		errs[idx] = errors.Join(ErrSkipped, ctx.Err())
	}

	pool.logger.Debug().
		Str("pool", pool.name).
		Int("dispatched", dispatched).
		Msg("Worker pool has stopped.")

	return errs
}

func (pool *WorkerPool) worker(ctx context.Context, id int, jobChan <-chan int, jobs []Job, errs []error) {
	for idx := range jobChan {
		errs[idx] = pool.executeWithTimeout(ctx, id, idx, jobs[idx])
	}
}

func (pool *WorkerPool) executeWithTimeout(ctx context.Context, workerID, jobIdx int, job Job) error {
	var execCtx context.Context

	var cancel context.CancelFunc

	if pool.execTimeout > 0 {
		execCtx, cancel = context.WithTimeout(ctx, pool.execTimeout)
	} else {
		execCtx, cancel = context.WithCancel(ctx)
	}

	defer cancel()

	err := job(execCtx)
	if err != nil {
		pool.logger.Warn().
			Err(err).
			Str("pool", pool.name).
			Int("worker_id", workerID).
			Int("job", jobIdx).
			Msg("Job failed.")
	}

	return err
}
