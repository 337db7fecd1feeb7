package viewmodel

// Field addresses one field within a state value: Get projects the field out,
// Set returns a copy of the state with the field replaced. Both functions
// must be pure; Set never mutates its argument.
type Field[S, V any] struct {
	Get func(S) V
	Set func(S, V) S
}

// Binding is an ephemeral get/set pair connecting one field of a view-model's
// state, or a value derived from it, to an editable control. Bindings are
// recreated on request and hold no cached value: Get always reflects the
// view-model's state at call time.
//
// What Set does is fixed by the constructor that produced the binding: a
// direct state write through ForceUpdate (Bind), a single Trigger dispatch
// (BindInput, BindDerived), or nothing when the input mapping declines the
// value. It never reads back the result.
type Binding[V any] struct {
	Get func() V
	Set func(V)
}

// Bind returns a direct two-way binding for one state field: Get reads the
// field from vm's current state, Set writes the new value into the state
// through ForceUpdate. Any value is accepted; validation belongs on the
// view-model's Trigger path.
func Bind[S, I, V any](vm *Any[S, I], field Field[S, V]) Binding[V] {
	if vm == nil {
		panic("viewmodel: Bind called with nil view-model")
	}
	if field.Get == nil || field.Set == nil {
		panic("viewmodel: Bind requires both Field.Get and Field.Set")
	}
	return Binding[V]{
		Get: func() V { return field.Get(vm.State()) },
		Set: func(value V) { vm.ForceUpdate(field.Set(vm.State(), value)) },
	}
}

// BindInput returns a binding whose writes go through the input path: Get
// reads the field as in Bind, Set hands the new value to toInput and
// dispatches the resulting input through Trigger. When toInput reports false
// the write is silently dropped: no dispatch, no state change, no
// notification. Only the field's Get side is used.
func BindInput[S, I, V any](vm *Any[S, I], field Field[S, V], toInput func(V) (I, bool)) Binding[V] {
	if vm == nil {
		panic("viewmodel: BindInput called with nil view-model")
	}
	if field.Get == nil {
		panic("viewmodel: BindInput requires Field.Get")
	}
	if toInput == nil {
		panic("viewmodel: BindInput requires a toInput function")
	}
	return BindDerived(vm, field.Get, toInput)
}

// BindDerived is BindInput for values that are not a single stored field: Get
// computes an arbitrary derived value from the full state through derive,
// writes are translated by toInput exactly as in BindInput.
func BindDerived[S, I, V any](vm *Any[S, I], derive func(S) V, toInput func(V) (I, bool)) Binding[V] {
	if vm == nil {
		panic("viewmodel: BindDerived called with nil view-model")
	}
	if derive == nil {
		panic("viewmodel: BindDerived requires a derive function")
	}
	if toInput == nil {
		panic("viewmodel: BindDerived requires a toInput function")
	}
	return Binding[V]{
		Get: func() V { return derive(vm.State()) },
		Set: func(value V) {
			if input, ok := toInput(value); ok {
				vm.Trigger(input)
			}
		},
	}
}
