package client

import (
	"context"
	"errors"
	"sync"
)

// State is the loading lifecycle state of a view
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
)

// ErrStale is returned by Refresh when a newer refresh was issued while this
// one was in flight; the late result is discarded.
var ErrStale = errors.New("stale response discarded")

// View manages the data lifecycle of one data-dependent view: idle ->
// loading -> idle on resolution. Each Refresh carries a monotonic
// generation token; only the latest issued refresh may commit its result,
// so out-of-order resolutions never overwrite newer data.
type View[T any] struct {
	mu    sync.Mutex
	gen   uint64
	state State
	data  T
	err   error
	load  func(context.Context) (T, error)
}

// NewView creates a view around a load function. There is no automatic
// refresh or polling; callers trigger loads explicitly.
func NewView[T any](load func(context.Context) (T, error)) *View[T] {
	return &View[T]{state: StateIdle, load: load}
}

// Refresh issues a new load and commits the result unless a newer Refresh
// was issued in the meantime, in which case it returns ErrStale and leaves
// the view's data untouched. On load failure the previous data is kept and
// the error stored.
func (v *View[T]) Refresh(ctx context.Context) (T, error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.state = StateLoading
	v.mu.Unlock()

	data, err := v.load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		var zero T
		return zero, ErrStale
	}

	v.state = StateIdle
	if err != nil {
		v.err = err
		var zero T
		return zero, err
	}

	v.data = data
	v.err = nil
	return data, nil
}

// State returns the current lifecycle state
func (v *View[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Data returns the last committed data and the last load error
func (v *View[T]) Data() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data, v.err
}
