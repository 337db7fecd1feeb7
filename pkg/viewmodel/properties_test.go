package viewmodel_test

import (
	"testing"
	"time"

	"github.com/go-drift/viewmodel/pkg/viewmodel"
	"github.com/go-drift/viewmodel/pkg/vmtest"
)

type formState struct {
	Name string
	Age  int
}

type formInput struct {
	SetName string
}

func applyForm(s formState, in formInput) formState {
	if in.SetName != "" {
		s.Name = in.SetName
	}
	return s
}

var formName = viewmodel.Field[formState, string]{
	Get: func(s formState) string { return s.Name },
	Set: func(s formState, v string) formState { s.Name = v; return s },
}

func newRecordedForm() (*vmtest.Recorder[formState, formInput], *viewmodel.Any[formState, formInput]) {
	rec := vmtest.Record[formState, formInput](viewmodel.NewStore(formState{}, applyForm))
	return rec, viewmodel.Wrap[formState, formInput](rec)
}

func TestDirectBindingBypassesInputPath(t *testing.T) {
	rec, vm := newRecordedForm()

	viewmodel.Bind(vm, formName).Set("Alice")

	if len(rec.Forced()) != 1 {
		t.Errorf("expected 1 forced state, got %d", len(rec.Forced()))
	}
	if len(rec.Inputs()) != 0 {
		t.Errorf("expected no inputs on the direct path, got %v", rec.Inputs())
	}
	vmtest.DiffState(t, formState{Name: "Alice"}, vm.State())
}

func TestInputBindingUsesInputPath(t *testing.T) {
	rec, vm := newRecordedForm()

	b := viewmodel.BindInput(vm, formName, func(v string) (formInput, bool) {
		if v == "" {
			return formInput{}, false
		}
		return formInput{SetName: v}, true
	})

	b.Set("Bob")
	b.Set("") // declined by the mapping

	if len(rec.Inputs()) != 1 {
		t.Errorf("expected exactly 1 dispatched input, got %v", rec.Inputs())
	}
	if len(rec.Forced()) != 0 {
		t.Errorf("expected no forced states on the input path, got %d", len(rec.Forced()))
	}
	vmtest.DiffState(t, formState{Name: "Bob"}, vm.State())
}

func TestEveryMutationSignals(t *testing.T) {
	_, vm := newRecordedForm()

	w := vmtest.Watch(vm)
	defer w.Stop()

	vm.Trigger(formInput{SetName: "Alice"})
	vm.ForceUpdate(formState{Name: "Bob", Age: 30})
	viewmodel.Bind(vm, formName).Set("Carol")

	if w.Count() < 3 {
		t.Errorf("expected at least one signal per mutation, got %d", w.Count())
	}
}

func TestWrapperMirrorsInstanceState(t *testing.T) {
	inner := viewmodel.NewStore(formState{}, applyForm)
	vm := viewmodel.Wrap[formState, formInput](inner)

	inner.Trigger(formInput{SetName: "Alice"})
	vm.Trigger(formInput{SetName: "Bob"})

	vmtest.DiffState(t, inner.State(), vm.State())
}

func TestSignalsFromAnotherGoroutine(t *testing.T) {
	_, vm := newRecordedForm()

	w := vmtest.Watch(vm)
	defer w.Stop()

	go vm.Trigger(formInput{SetName: "Alice"})

	if !w.Wait(1, time.Second) {
		t.Fatal("expected a signal from the concurrent trigger")
	}
	if got := viewmodel.Get(vm, func(s formState) string { return s.Name }); got != "Alice" {
		t.Errorf("expected %q, got %q", "Alice", got)
	}
}
