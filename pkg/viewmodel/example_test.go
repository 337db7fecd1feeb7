package viewmodel_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/viewmodel/pkg/viewmodel"
)

type TodoState struct {
	Items []string
	Draft string
}

type TodoInput struct {
	Add   string
	Clear bool
}

func applyTodo(s TodoState, in TodoInput) TodoState {
	if in.Clear {
		return TodoState{}
	}
	if in.Add != "" {
		s.Items = append(append([]string(nil), s.Items...), in.Add)
		s.Draft = ""
	}
	return s
}

type Document struct {
	ID    string
	Title string
}

func (d Document) Key() any { return d.ID }

// This example shows how to erase a concrete view-model behind Any.
// Consumers see one concrete type per (State, Input) pair.
func ExampleWrap() {
	vm := viewmodel.Wrap[TodoState, TodoInput](viewmodel.NewStore(TodoState{}, applyTodo))

	// Subscribe to the change stream
	unsub := vm.AddListener(func() {
		fmt.Println("changed")
	})

	// Dispatch an input - the wrapper forwards it to the instance
	vm.Trigger(TodoInput{Add: "write docs"})
	fmt.Println(vm.State().Items[0])

	// Clean up
	unsub()

	// Output:
	// changed
	// write docs
}

// This example shows the reducer-driven Store, the simplest way to get a
// complete view-model from a single pure function.
func ExampleNewStore() {
	counter := viewmodel.NewStore(0, func(count, delta int) int {
		return count + delta
	})

	counter.Trigger(2)
	counter.Trigger(3)

	fmt.Println(counter.State())

	// Output:
	// 5
}

// This example shows a direct two-way binding on one state field.
// Writes go through ForceUpdate, bypassing the input path.
func ExampleBind() {
	vm := viewmodel.Wrap[TodoState, TodoInput](viewmodel.NewStore(TodoState{}, applyTodo))

	draft := viewmodel.Bind(vm, viewmodel.Field[TodoState, string]{
		Get: func(s TodoState) string { return s.Draft },
		Set: func(s TodoState, v string) TodoState { s.Draft = v; return s },
	})

	draft.Set("buy milk")
	fmt.Println(draft.Get())
	fmt.Println(vm.State().Draft)

	// Output:
	// buy milk
	// buy milk
}

// This example shows a binding whose writes are translated into inputs.
// Values the mapping declines are silently dropped.
func ExampleBindInput() {
	vm := viewmodel.Wrap[TodoState, TodoInput](viewmodel.NewStore(TodoState{}, applyTodo))

	add := viewmodel.BindInput(vm, viewmodel.Field[TodoState, string]{
		Get: func(s TodoState) string { return s.Draft },
	}, func(v string) (TodoInput, bool) {
		if strings.TrimSpace(v) == "" {
			return TodoInput{}, false
		}
		return TodoInput{Add: v}, true
	})

	add.Set("   ")      // dropped: no input, no state change
	add.Set("buy milk") // dispatched through Trigger

	fmt.Println(len(vm.State().Items))
	fmt.Println(vm.State().Items[0])

	// Output:
	// 1
	// buy milk
}

// This example shows a binding over a derived value rather than a stored
// field: Get computes a display string, Set parses one back into an input.
func ExampleBindDerived() {
	counter := viewmodel.Wrap[int, int](viewmodel.NewStore(0, func(count, delta int) int {
		return count + delta
	}))

	display := viewmodel.BindDerived(counter,
		func(count int) string { return fmt.Sprintf("count: %d", count) },
		func(v string) (int, bool) {
			var delta int
			if _, err := fmt.Sscanf(v, "+%d", &delta); err != nil {
				return 0, false
			}
			return delta, true
		},
	)

	display.Set("+10")
	fmt.Println(display.Get())

	display.Set("nonsense") // dropped
	fmt.Println(display.Get())

	// Output:
	// count: 10
	// count: 10
}

// This example shows how to build a concrete view-model on Base.
func ExampleBase() {
	// A concrete view-model embeds Base and implements the rest:
	//
	// type todoModel struct {
	//     viewmodel.Base
	//     state TodoState
	// }
	//
	// func (m *todoModel) State() TodoState { return m.state }
	//
	// func (m *todoModel) Trigger(in TodoInput) {
	//     m.state = apply(m.state, in)
	//     m.MarkChanged()
	// }
	//
	// func (m *todoModel) ForceUpdate(s TodoState) {
	//     m.state = s
	//     m.MarkChanged()
	// }
	//
	// Base provides AddListener and MarkChanged. A type missing State,
	// Trigger or ForceUpdate does not satisfy ViewModel and fails to
	// compile where one is required.

	var base viewmodel.Base
	unsub := base.AddListener(func() {
		fmt.Println("changed")
	})
	base.MarkChanged()
	unsub()

	// Output:
	// changed
}

// This example shows identity delegation: a wrapper's key is read from its
// current state whenever the state type implements Keyed.
func ExampleAny_Key() {
	vm := viewmodel.Wrap[Document, string](viewmodel.NewStore(
		Document{ID: "doc-7", Title: "Draft"},
		func(d Document, title string) Document { d.Title = title; return d },
	))

	fmt.Println(vm.Key())

	// Output:
	// doc-7
}

// This example shows the generic accessor for reading a single field or
// derived value from an erased view-model.
func ExampleGet() {
	vm := viewmodel.Wrap[TodoState, TodoInput](viewmodel.NewStore(TodoState{}, applyTodo))
	vm.Trigger(TodoInput{Add: "one"})
	vm.Trigger(TodoInput{Add: "two"})

	count := viewmodel.Get(vm, func(s TodoState) int { return len(s.Items) })
	fmt.Println(count)

	// Output:
	// 2
}
