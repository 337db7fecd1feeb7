package notify

import (
	"sync"

	"go.uber.org/atomic"
)

// Listenable is anything that can be observed for change signals.
type Listenable interface {
	// AddListener registers a callback invoked on every signal and returns
	// a function that removes the registration. The returned function is
	// safe to call more than once.
	AddListener(fn func()) (remove func())
}

// ListenableFunc adapts a subscribe function to the Listenable interface.
type ListenableFunc func(fn func()) func()

// AddListener calls f.
func (f ListenableFunc) AddListener(fn func()) func() { return f(fn) }

// Notifier broadcasts unit signals to registered listeners.
// The zero value is ready to use.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[int64]func()
	nextID    atomic.Int64
}

// NewNotifier creates a new Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers a callback invoked on every Notify. It returns a
// function that removes the listener. A nil callback is ignored.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	id := n.nextID.Inc()
	n.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[int64]func())
	}
	n.listeners[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Notify invokes all registered listeners on the calling goroutine. The
// listener set is snapshotted first, so listeners may add or remove listeners
// without deadlocking; additions take effect from the next Notify.
func (n *Notifier) Notify() {
	n.mu.RLock()
	listeners := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		listeners = append(listeners, fn)
	}
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
