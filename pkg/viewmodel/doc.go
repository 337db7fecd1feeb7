// Package viewmodel defines the contract for state-holding, input-driven
// view-models, a type-erased wrapper over arbitrary implementations, and
// field-level binding adapters that connect state to editable controls.
//
// # The Contract
//
// A view-model binds one State type and one Input type. It exposes the
// current state, accepts inputs through Trigger, can have its state replaced
// wholesale through ForceUpdate, and signals every possible state change
// through its change stream:
//
//	type ViewModel[S, I any] interface {
//	    notify.Listenable
//	    State() S
//	    Trigger(input I)
//	    ForceUpdate(state S)
//	}
//
// Concrete implementations embed Base for the notification plumbing and
// implement the remaining methods themselves. There is no default ForceUpdate
// to forget to override: a type that does not implement it does not satisfy
// the interface, so the omission is a compile error rather than a trap at
// runtime.
//
// # Type Erasure
//
// Wrap adapts any implementation into Any, a single concrete type per
// (State, Input) pair. Any forwards every operation through handlers captured
// from the wrapped instance at construction time and holds no state of its
// own, so its observable behavior is indistinguishable from the wrapped
// instance:
//
//	vm := viewmodel.Wrap[TodoState, TodoInput](newTodoModel())
//	unsub := vm.AddListener(onChange)
//	vm.Trigger(TodoInput{Add: "write docs"})
//
// # Bindings
//
// A Binding is an ephemeral get/set pair connecting one state field, or a
// derived value, to an editable control. Bind writes back directly through
// ForceUpdate; BindInput and BindDerived translate writes into inputs
// dispatched through Trigger:
//
//	draft := viewmodel.Bind(vm, viewmodel.Field[TodoState, string]{
//	    Get: func(s TodoState) string { return s.Draft },
//	    Set: func(s TodoState, v string) TodoState { s.Draft = v; return s },
//	})
//	draft.Set("buy milk")
//
// # Concurrency
//
// The contract itself imposes no locking discipline: a view-model instance is
// assumed to have a single logical owner, and implementations shared across
// goroutines are responsible for their own synchronization. Store, the
// reducer-driven implementation in this package, is internally synchronized.
// Change notification is fire-and-forget with no replay for late subscribers.
package viewmodel
