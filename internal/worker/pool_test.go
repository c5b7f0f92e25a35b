package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int64
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 10; i++ {
		pool.Submit(&countJob{counter: &counter})
	}
	pool.Close()

	results := pool.Wait()
	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
	if atomic.LoadInt64(&counter) != 10 {
		t.Errorf("Expected 10 executions, got %d", counter)
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})
	pool.Close()
	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()
	// Submissions after shutdown are dropped, not deadlocked
	var counter int64
	pool.Submit(&countJob{counter: &counter})
	if atomic.LoadInt64(&counter) != 0 {
		t.Error("Expected no execution after shutdown")
	}
}
