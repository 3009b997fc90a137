// Package pool provides a bounded worker pool with future-style results.
package pool

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Submit after Shutdown.
var ErrClosed = errors.New("pool: closed")

// Task is a unit of work executed by the pool.
type Task func() (any, error)

// Future holds the eventual result of a submitted task.
type Future struct {
	done chan struct{}
	val  any
	err  error
}

// Done returns a channel closed when the task has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the task has finished and returns its value and error.
func (f *Future) Result() (any, error) {
	<-f.done
	return f.val, f.err
}

// Pool runs tasks on at most limit concurrent workers.
type Pool struct {
	limit int
	eg    *errgroup.Group

	mu       sync.Mutex
	inflight map[*Future]struct{}
	closed   bool
	canceled bool
}

// New creates a pool. A limit of zero or less means one worker per CPU.
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	eg := &errgroup.Group{}
	eg.SetLimit(limit)
	return &Pool{
		limit:    limit,
		eg:       eg,
		inflight: make(map[*Future]struct{}),
	}
}

// Limit returns the worker limit.
func (p *Pool) Limit() int {
	return p.limit
}

// Submit schedules task and returns its future. When all workers are busy
// Submit blocks until one frees up.
func (p *Pool) Submit(task Task) (*Future, error) {
	f := &Future{done: make(chan struct{})}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	p.inflight[f] = struct{}{}
	p.mu.Unlock()

	p.eg.Go(func() error {
		p.mu.Lock()
		canceled := p.canceled
		p.mu.Unlock()
		if canceled {
			f.err = ErrClosed
		} else {
			f.val, f.err = task()
		}
		close(f.done)
		p.mu.Lock()
		delete(p.inflight, f)
		p.mu.Unlock()
		return nil
	})
	return f, nil
}

// Join waits for all submitted tasks to finish or for ctx to be canceled.
func (p *Pool) Join(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		_ = p.eg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Completed returns a channel that yields the currently pending futures as
// each one finishes, then closes. Canceling ctx stops delivery early.
func (p *Pool) Completed(ctx context.Context) <-chan *Future {
	p.mu.Lock()
	pending := make([]*Future, 0, len(p.inflight))
	for f := range p.inflight {
		pending = append(pending, f)
	}
	p.mu.Unlock()

	agg := make(chan *Future, len(pending))
	for _, f := range pending {
		go func(f *Future) {
			select {
			case <-f.done:
				agg <- f
			case <-ctx.Done():
			}
		}(f)
	}

	out := make(chan *Future)
	go func() {
		defer close(out)
		for range pending {
			select {
			case f := <-agg:
				select {
				case out <- f:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Shutdown stops the pool from accepting new tasks. When wait is true it
// blocks until already-submitted tasks have finished. When cancelPending
// is true, futures whose task has not started yet (Submit blocked waiting
// for a worker slot) resolve with ErrClosed instead of running; tasks
// already executing always run to completion.
func (p *Pool) Shutdown(wait, cancelPending bool) {
	p.mu.Lock()
	p.closed = true
	if cancelPending {
		p.canceled = true
	}
	p.mu.Unlock()
	if wait {
		_ = p.eg.Wait()
	}
}
