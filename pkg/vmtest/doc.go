// Package vmtest provides test support for view-model implementations and
// consumers: a recording pass-through view-model, a notification counter, a
// go-cmp based state differ, and a YAML script runner that drives a
// view-model through a sequence of inputs.
//
// # Recording
//
// Recorder wraps any view-model and records what flows through it without
// perturbing it, so a test can assert which path an operation took:
//
//	rec := vmtest.Record[CounterState, CounterInput](inner)
//	vm := viewmodel.Wrap[CounterState, CounterInput](rec)
//	vm.Trigger(CounterInput{Delta: 1})
//	// rec.Inputs() now holds one input, rec.Forced() none.
//
// # Scripts
//
// A script is a YAML file of steps, each dispatching one input and optionally
// comparing a caller-defined projection of the state afterwards:
//
//	name: counter
//	steps:
//	  - input: {kind: add, amount: 2}
//	    expect: {count: 2}
//	  - note: reset clears the count
//	    input: {kind: reset}
//	    expect: {count: 0}
//
// Input decoding stays with the caller, so the input type remains opaque to
// this package. Run the tests with VIEWMODEL_UPDATE_SCRIPTS=1 to rewrite the
// expect blocks from observed state.
package vmtest
