package scheduler

import (
	"context"
)

// Work is a single asynchronous unit of work. It runs to completion on a
// pool worker and must honor ctx cancellation at its blocking points.
type Work[T any] func(ctx context.Context) (T, error)

// Result carries exactly one of the two outcomes of a Work invocation.
type Result[T any] struct {
	Data T
	Err  error
}

// Future is the handle returned at dispatch time. The result channel is
// buffered so the worker never blocks on a caller that stopped listening.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

// C returns the channel the single result is delivered on.
func (f *Future[T]) C() chan T {
	return f.input
}

// Stop cancels the work's context. The work still delivers a result
// (normally ctx.Err) on C.
func (f *Future[T]) Stop() {
	f.cancel()
}
