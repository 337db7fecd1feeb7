// Package notify provides the change-notification primitives composed by the
// view-model layer.
//
// # Core Types
//
// Notifier broadcasts unit signals to registered listeners:
//
//	refresh := notify.NewNotifier()
//	remove := refresh.AddListener(func() { fmt.Println("changed") })
//	refresh.Notify()
//	remove()
//
// Observable holds a value and notifies typed listeners when it changes:
//
//	counter := notify.NewObservable(0)
//	remove := counter.AddListener(func(v int) { fmt.Println(v) })
//	counter.Set(5)
//
// # Delivery Semantics
//
// Notification delivery is synchronous fan-out on the calling goroutine,
// fire-and-forget. Listeners registered after a signal do not receive it;
// there is no buffering or replay. At least one notification follows any
// mutation, with no ordering or batching guarantee beyond that.
//
// # Thread Safety
//
// Notifier and Observable are safe for concurrent use. Listener callbacks run
// outside the internal lock, so a listener may itself add or remove
// listeners; listeners added during a notification are first invoked on the
// next one.
package notify
