package vmtest

import (
	"time"

	"go.uber.org/atomic"

	"github.com/go-drift/viewmodel/pkg/notify"
)

// Signals counts change notifications from a Listenable. Tests use it to
// assert the at-least-one-signal-per-mutation property and to wait for
// notifications from view-models that mutate on other goroutines.
type Signals struct {
	count atomic.Int64
	wake  chan struct{}
	stop  func()
}

// Watch subscribes to l and starts counting.
func Watch(l notify.Listenable) *Signals {
	s := &Signals{wake: make(chan struct{}, 1)}
	s.stop = l.AddListener(func() {
		s.count.Inc()
		select {
		case s.wake <- struct{}{}:
		default:
		}
	})
	return s
}

// Count returns the number of notifications observed so far.
func (s *Signals) Count() int {
	return int(s.count.Load())
}

// Wait blocks until at least n notifications have been observed or the
// timeout elapses, and reports whether the count was reached.
func (s *Signals) Wait(n int, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		if s.Count() >= n {
			return true
		}
		select {
		case <-s.wake:
		case <-deadline.C:
			return s.Count() >= n
		}
	}
}

// Stop removes the subscription. The counter keeps its value.
func (s *Signals) Stop() {
	s.stop()
}
