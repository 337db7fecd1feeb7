package vmtest

import (
	"sync"

	"github.com/go-drift/viewmodel/pkg/viewmodel"
)

// Recorder is a pass-through view-model that records every Trigger input and
// every ForceUpdate state on its way to the wrapped implementation. Reads and
// subscriptions forward untouched, so wrapping a view-model in a Recorder
// does not change its observable behavior.
type Recorder[S, I any] struct {
	inner viewmodel.ViewModel[S, I]

	mu     sync.Mutex
	inputs []I
	forced []S
}

var _ viewmodel.ViewModel[any, any] = (*Recorder[any, any])(nil)

// Record wraps inner in a Recorder.
func Record[S, I any](inner viewmodel.ViewModel[S, I]) *Recorder[S, I] {
	if inner == nil {
		panic("vmtest: Record called with nil view-model")
	}
	return &Recorder[S, I]{inner: inner}
}

// State forwards to the wrapped view-model.
func (r *Recorder[S, I]) State() S { return r.inner.State() }

// AddListener forwards to the wrapped view-model.
func (r *Recorder[S, I]) AddListener(fn func()) func() { return r.inner.AddListener(fn) }

// Trigger records the input and forwards it.
func (r *Recorder[S, I]) Trigger(input I) {
	r.mu.Lock()
	r.inputs = append(r.inputs, input)
	r.mu.Unlock()
	r.inner.Trigger(input)
}

// ForceUpdate records the state and forwards it.
func (r *Recorder[S, I]) ForceUpdate(state S) {
	r.mu.Lock()
	r.forced = append(r.forced, state)
	r.mu.Unlock()
	r.inner.ForceUpdate(state)
}

// Inputs returns a copy of all recorded Trigger inputs, in dispatch order.
func (r *Recorder[S, I]) Inputs() []I {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]I(nil), r.inputs...)
}

// Forced returns a copy of all recorded ForceUpdate states, in call order.
func (r *Recorder[S, I]) Forced() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]S(nil), r.forced...)
}

// Reset discards everything recorded so far.
func (r *Recorder[S, I]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = nil
	r.forced = nil
}
