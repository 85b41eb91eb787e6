// Package asyncrt is the cooperative task runtime the event loop and
// PTY reader tasks run on: a fixed-size worker pool plus the
// suspension primitives (yield, sleep, bounded channel) background
// tasks use to communicate with the single UI goroutine.
package asyncrt

import (
	"context"
	stdruntime "runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runtime is a fixed-size errgroup-backed worker pool. Spawn blocks
// once the pool is saturated, giving the pool a hard concurrency
// ceiling rather than an unbounded goroutine fan-out.
type Runtime struct {
	group *errgroup.Group
}

// New constructs a Runtime with the given worker pool size; size<=0
// defaults to the number of logical CPUs.
func New(size int) *Runtime {
	if size <= 0 {
		size = stdruntime.NumCPU()
	}
	g := &errgroup.Group{}
	g.SetLimit(size)
	return &Runtime{group: g}
}

// TaskHandle is a running or completed task spawned on a Runtime.
type TaskHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Spawn runs fn on the pool with a context derived from ctx. fn must
// observe ctx.Err() to react to Cancel cooperatively; the runtime does
// not forcibly interrupt it.
func (r *Runtime) Spawn(ctx context.Context, fn func(context.Context) error) *TaskHandle {
	taskCtx, cancel := context.WithCancel(ctx)
	h := &TaskHandle{cancel: cancel, done: make(chan struct{})}
	r.group.Go(func() error {
		defer close(h.done)
		h.err = fn(taskCtx)
		return h.err
	})
	return h
}

// Cancel cancels the task's derived context. The task observes this
// the next time it checks ctx.Err(); Cancel does not block.
func (h *TaskHandle) Cancel() {
	h.cancel()
}

// Wait blocks until the task completes and returns its error.
func (h *TaskHandle) Wait() error {
	<-h.done
	return h.err
}

// Wait blocks until every task spawned on r has completed, returning
// the first non-nil task error if any.
func (r *Runtime) Wait() error {
	return r.group.Wait()
}

// Yield is a cooperative yield point: it gives the scheduler a chance
// to run other goroutines without actually sleeping. PTY reader loops
// call this between poll attempts that returned WouldBlock.
func Yield() {
	stdruntime.Gosched()
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
