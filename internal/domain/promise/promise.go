// Package promise provides a single-assignment future used to hand command
// results back to callers that issued them without blocking.
package promise

import (
	"context"
	"sync"
)

// Future is the read side of a Deferred. It settles exactly once.
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	settled   bool
	value     T
	err       error
	callbacks []func(T, error)
}

// Deferred is the write side of a Future.
type Deferred[T any] struct {
	future *Future[T]
}

func New[T any]() *Deferred[T] {
	return &Deferred[T]{future: &Future[T]{done: make(chan struct{})}}
}

func (d *Deferred[T]) Future() *Future[T] {
	return d.future
}

// Resolve fulfils the future. It reports false if the future had already
// settled.
func (d *Deferred[T]) Resolve(value T) bool {
	return d.future.settle(value, nil)
}

// Reject fails the future with err.
func (d *Deferred[T]) Reject(err error) bool {
	var zero T
	return d.future.settle(zero, err)
}

// Follow settles d with whatever other eventually settles with.
func (d *Deferred[T]) Follow(other *Future[T]) {
	other.OnSettle(func(v T, err error) {
		d.future.settle(v, err)
	})
}

func (f *Future[T]) settle(value T, err error) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	f.value = value
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(value, err)
	}
	return true
}

// OnSettle registers cb to run once the future settles. If it already has,
// cb runs immediately on the calling goroutine.
func (f *Future[T]) OnSettle(cb func(T, error)) {
	f.mu.Lock()
	if !f.settled {
		f.callbacks = append(f.callbacks, cb)
		f.mu.Unlock()
		return
	}
	value, err := f.value, f.err
	f.mu.Unlock()
	cb(value, err)
}

// Done is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result returns the settled value. Calling it before Done is closed
// returns the zero value and a nil error.
func (f *Future[T]) Result() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.err
}

// Await blocks until the future settles or ctx ends. Giving up on ctx does
// not affect the future itself.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
