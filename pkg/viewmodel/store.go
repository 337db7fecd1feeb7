package viewmodel

import "sync"

// Store is a reducer-driven ViewModel: every input is applied to the current
// state by a pure function, and every Trigger or ForceUpdate emits one change
// signal. The state semantics live entirely in the apply function, so a Store
// is parameterized infrastructure rather than an application view-model.
//
// Store is internally synchronized and may be shared across goroutines.
type Store[S, I any] struct {
	Base

	mu    sync.RWMutex
	state S
	apply func(S, I) S
}

var _ ViewModel[any, any] = (*Store[any, any])(nil)

// NewStore creates a Store holding initial and interpreting inputs with
// apply. The apply function receives the current state and the input and
// returns the next state; it must be pure.
func NewStore[S, I any](initial S, apply func(S, I) S) *Store[S, I] {
	if apply == nil {
		panic("viewmodel: NewStore requires an apply function")
	}
	return &Store[S, I]{state: initial, apply: apply}
}

// State returns the current state snapshot.
func (s *Store[S, I]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Trigger applies the input to the current state and notifies listeners.
func (s *Store[S, I]) Trigger(input I) {
	s.mu.Lock()
	s.state = s.apply(s.state, input)
	s.mu.Unlock()
	s.MarkChanged()
}

// ForceUpdate replaces the state wholesale, bypassing the apply function, and
// notifies listeners.
func (s *Store[S, I]) ForceUpdate(state S) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.MarkChanged()
}
