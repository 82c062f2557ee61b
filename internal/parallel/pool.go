// Package parallel provides a fixed-size worker pool for running
// independent sentence builds concurrently, each with its own Matcher
// state, against a frozen, read-only shared StringSet. Building the
// disjuncts and fast matcher for a single sentence stays single-threaded;
// this pool only overlaps independent sentence jobs, which is the
// concurrency boundary the core actually grants.
//
// This is a deliberately small adaptation of a much larger dynamic/
// work-stealing worker pool: the scaling monitor, deadlock detector, rate
// limiter, load balancer and stream merger that used to live alongside the
// static pool this is grounded on are not wired to anything a sentence
// builder needs, and are dropped rather than carried as dead weight (see
// DESIGN.md).
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned by Submit after the pool has been shut down.
var ErrPoolShutdown = errors.New("parallel: pool is shut down")

// Job is one unit of work for BuildPool.Run. BuildPool does not know about
// ldisjunct directly; callers supply Job.Run (BuildSentences wraps one
// sentence build in each) so this pool stays generic across arbitrary
// func() tasks.
type Job struct {
	// Run performs the job's work and returns its result, or an error.
	Run func() (any, error)
}

// Result pairs a submitted Job's outcome with its submission index, so
// BuildPool.Run can hand results back in the same order jobs were
// submitted even though they may complete out of order.
type Result struct {
	Index int
	Value any
	Err   error
}

// BuildPool bounds concurrent sentence-building work to a fixed number of
// slots via a counting semaphore, the same channel-as-semaphore idiom as
// Tangerg-lynx's pkg/sync.Limiter (Acquire sends into a buffered channel,
// Release receives from it), rather than pre-spawning worker goroutines
// that drain a shared task queue. A task only ever occupies a goroutine
// while it actually runs; there is no separate queue depth beyond the
// maxWorkers slots themselves.
type BuildPool struct {
	maxWorkers int
	sem        chan struct{}
	wg         sync.WaitGroup
	closed     chan struct{}
	once       sync.Once
}

// NewBuildPool creates a pool that allows at most maxWorkers tasks to run
// concurrently. maxWorkers <= 0 defaults to runtime.NumCPU().
func NewBuildPool(maxWorkers int) *BuildPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &BuildPool{
		maxWorkers: maxWorkers,
		sem:        make(chan struct{}, maxWorkers),
		closed:     make(chan struct{}),
	}
}

// Submit runs task on its own goroutine once a slot is free, blocking until
// one opens up, ctx is cancelled, or the pool is shut down.
func (p *BuildPool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.closed:
		return ErrPoolShutdown
	default:
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.closed:
		return ErrPoolShutdown
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() { <-p.sem }()
		task()
	}()
	return nil
}

// Shutdown stops accepting new work and waits for in-flight tasks to drain.
// Safe to call more than once.
func (p *BuildPool) Shutdown() {
	p.once.Do(func() {
		close(p.closed)
		p.wg.Wait()
	})
}

// Run submits every job in jobs, waits for all of them, and returns their
// results in submission order, the shape a sentence-batch caller
// (BuildSentences, a test harness comparing N sentences) actually needs,
// rather than making every caller hand-roll its own WaitGroup/slice
// bookkeeping around Submit.
func (p *BuildPool) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	for i, job := range jobs {
		i, job := i, job
		wg.Add(1)
		err := p.Submit(ctx, func() {
			defer wg.Done()
			value, err := job.Run()
			results[i] = Result{Index: i, Value: value, Err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Index: i, Err: err}
		}
	}
	wg.Wait()
	return results, nil
}

// WorkerCount returns the fixed number of concurrent slots the pool grants.
func (p *BuildPool) WorkerCount() int {
	return p.maxWorkers
}

// QueueDepth returns the number of slots currently occupied by running
// tasks (there is no separate buffered queue beyond the slots themselves).
func (p *BuildPool) QueueDepth() int {
	return len(p.sem)
}
