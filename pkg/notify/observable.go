package notify

import (
	"sync"

	"go.uber.org/atomic"
)

// Observable holds a value of type T and notifies typed listeners when it
// changes. It is safe for concurrent use; see the package documentation for
// delivery semantics.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	eq        func(a, b T) bool
	listeners map[int64]func(T)
	nextID    atomic.Int64
}

// NewObservable creates an observable with the given initial value.
// Every Set notifies listeners, whether or not the value differs.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// NewObservableWithEquality creates an observable that skips notification
// when eq reports the new value as equal to the old one. The value itself is
// always stored.
func NewObservableWithEquality[T any](initial T, eq func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, eq: eq}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores a new value and notifies listeners, subject to the equality
// function when one was provided.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	old := o.value
	o.value = value
	o.mu.Unlock()

	if o.eq != nil && o.eq(old, value) {
		return
	}
	o.notify(value)
}

// Update applies a transformation to the current value, stores the result and
// notifies listeners under the same rules as Set.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	old := o.value
	o.value = transform(old)
	value := o.value
	o.mu.Unlock()

	if o.eq != nil && o.eq(old, value) {
		return
	}
	o.notify(value)
}

// AddListener registers a callback invoked with the new value on every
// change. It returns a function that removes the listener. A nil callback is
// ignored.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	id := o.nextID.Inc()
	o.mu.Lock()
	if o.listeners == nil {
		o.listeners = make(map[int64]func(T))
	}
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

func (o *Observable[T]) notify(value T) {
	o.mu.RLock()
	listeners := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	o.mu.RUnlock()

	for _, fn := range listeners {
		fn(value)
	}
}

// Signal adapts an observable to the Listenable interface, discarding the
// value carried by each notification.
func Signal[T any](o *Observable[T]) Listenable {
	return ListenableFunc(func(fn func()) func() {
		return o.AddListener(func(T) { fn() })
	})
}
