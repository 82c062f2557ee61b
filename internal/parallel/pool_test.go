package parallel

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildPoolRunOrdersResultsBySubmission(t *testing.T) {
	pool := NewBuildPool(4)
	defer pool.Shutdown()

	jobs := make([]Job, 10)
	for i := 0; i < 10; i++ {
		i := i
		jobs[i] = Job{Run: func() (any, error) {
			time.Sleep(time.Duration(10-i) * time.Millisecond)
			return i, nil
		}}
	}

	results, err := pool.Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index %d", i, r.Index)
		}
		if r.Value != i {
			t.Errorf("result %d has Value %v, want %d", i, r.Value, i)
		}
		if r.Err != nil {
			t.Errorf("result %d has unexpected error: %v", i, r.Err)
		}
	}
}

func TestBuildPoolRunPropagatesJobErrors(t *testing.T) {
	pool := NewBuildPool(2)
	defer pool.Shutdown()

	boom := errors.New("boom")
	jobs := []Job{
		{Run: func() (any, error) { return "ok", nil }},
		{Run: func() (any, error) { return nil, boom }},
	}

	results, err := pool.Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if results[0].Err != nil {
		t.Errorf("job 0 should not have errored, got %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, boom) {
		t.Errorf("job 1 error = %v, want %v", results[1].Err, boom)
	}
}

func TestBuildPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewBuildPool(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	if !errors.Is(err, ErrPoolShutdown) {
		t.Errorf("Submit after shutdown = %v, want ErrPoolShutdown", err)
	}
}

func TestBuildPoolSubmitRespectsContextCancellation(t *testing.T) {
	pool := NewBuildPool(1)
	defer pool.Shutdown()

	// Occupy the pool's single slot so the next Submit has nowhere to go.
	block := make(chan struct{})
	_ = pool.Submit(context.Background(), func() { <-block })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, func() {})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Submit with cancelled context = %v, want DeadlineExceeded", err)
	}
	close(block)
}

func TestBuildPoolWorkerCount(t *testing.T) {
	pool := NewBuildPool(3)
	defer pool.Shutdown()
	if got := pool.WorkerCount(); got != 3 {
		t.Errorf("WorkerCount() = %d, want 3", got)
	}
}
