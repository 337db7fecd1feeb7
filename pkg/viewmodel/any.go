package viewmodel

// Any is the type-erased view-model wrapper: one concrete type per
// (State, Input) pair, hiding the implementation behind it. It owns no
// business state; it holds exactly four forwarding handlers captured from the
// wrapped instance by Wrap, so its observable behavior is indistinguishable
// from using the instance directly. Any itself satisfies ViewModel[S, I],
// which lets erased and concrete view-models be consumed uniformly.
//
// The wrapper shares the wrapped instance rather than owning it: the instance
// may outlive the wrapper and may be wrapped more than once. Whether a
// wrapper may be used from multiple goroutines is decided entirely by the
// wrapped implementation.
type Any[S, I any] struct {
	subscribe func(func()) func()
	read      func() S
	dispatch  func(I)
	force     func(S)
}

var _ ViewModel[any, any] = (*Any[any, any])(nil)

// Wrap erases the concrete type of vm, capturing its four capability
// handlers. The wrapper's State and Input types are fixed by vm's, so a
// mismatched consumer cannot compile.
func Wrap[S, I any](vm ViewModel[S, I]) *Any[S, I] {
	if vm == nil {
		panic("viewmodel: Wrap called with nil view-model")
	}
	return &Any[S, I]{
		subscribe: vm.AddListener,
		read:      vm.State,
		dispatch:  vm.Trigger,
		force:     vm.ForceUpdate,
	}
}

// State returns the wrapped instance's current state.
func (a *Any[S, I]) State() S { return a.read() }

// Trigger dispatches an input to the wrapped instance.
func (a *Any[S, I]) Trigger(input I) { a.dispatch(input) }

// ForceUpdate replaces the wrapped instance's state directly, bypassing
// Trigger. Field bindings write through here.
func (a *Any[S, I]) ForceUpdate(state S) { a.force(state) }

// AddListener subscribes to the wrapped instance's change stream.
func (a *Any[S, I]) AddListener(fn func()) func() { return a.subscribe(fn) }

// Key returns the current state's identity when the state type implements
// Keyed, and nil otherwise. Identity is delegated on every call, never
// stored, so it tracks state changes.
func (a *Any[S, I]) Key() any {
	if k, ok := any(a.read()).(Keyed); ok {
		return k.Key()
	}
	return nil
}

// Get reads one field, or any derived value, from the wrapper's current
// state. The accessor is the field path and may reach arbitrarily deep into
// the state value.
func Get[S, I, V any](vm *Any[S, I], read func(S) V) V {
	return read(vm.State())
}
