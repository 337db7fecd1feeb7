package viewmodel

import "github.com/go-drift/viewmodel/pkg/notify"

// ViewModel is the contract every view-model satisfies. S is the observable
// state type, I the input type accepted by Trigger.
//
// State returns the current snapshot and must be cheap to call; callers treat
// the returned value as read-only. Trigger applies an input to internal
// state, synchronously or by enqueuing work, and at least one change signal
// follows any state change it causes. ForceUpdate replaces the state
// wholesale, bypassing input interpretation entirely; it exists for callers
// with direct state ownership, such as binding adapters and test harnesses,
// and must also notify.
//
// The embedded Listenable is the change stream: a payload-free signal emitted
// whenever state may have changed. Consumers re-read State after each signal.
// There is no ordering or batching guarantee beyond at least one signal per
// state-changing operation, and late subscribers never see earlier signals.
type ViewModel[S, I any] interface {
	notify.Listenable

	State() S
	Trigger(input I)
	ForceUpdate(state S)
}

// Keyed is implemented by state types that carry a stable identity. Wrappers
// delegate their own identity to the state's key; see Any.Key.
type Keyed interface {
	Key() any
}

// Base provides the notification half of the ViewModel contract. Embed it in
// a concrete view-model and call MarkChanged after every state mutation:
//
//	type todoModel struct {
//	    viewmodel.Base
//	    state TodoState
//	}
//
//	func (m *todoModel) State() TodoState { return m.state }
//
//	func (m *todoModel) Trigger(in TodoInput) {
//	    m.state = apply(m.state, in)
//	    m.MarkChanged()
//	}
//
//	func (m *todoModel) ForceUpdate(s TodoState) {
//	    m.state = s
//	    m.MarkChanged()
//	}
//
// Base deliberately implements only AddListener; State, Trigger and
// ForceUpdate must come from the embedding type. The zero value is ready to
// use.
type Base struct {
	changed notify.Notifier
}

// AddListener registers a change listener. Part of the ViewModel contract.
func (b *Base) AddListener(fn func()) func() {
	return b.changed.AddListener(fn)
}

// MarkChanged emits one change signal to all listeners.
func (b *Base) MarkChanged() {
	b.changed.Notify()
}

// Relay forwards every signal from l into this view-model's own change
// stream, for view-models whose observable output depends on an external
// listenable or observable. It returns a function that stops the forwarding.
func (b *Base) Relay(l notify.Listenable) (stop func()) {
	return l.AddListener(b.MarkChanged)
}
