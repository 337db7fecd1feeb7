// Package teavm adapts view-models to the Bubble Tea runtime, so programs
// built on github.com/charmbracelet/bubbletea can consume a view-model
// without knowing its concrete type.
//
// The adapter owns no presentation: the caller supplies the render function
// and, optionally, a translate function mapping terminal messages to
// view-model inputs. Change notifications from the view-model are coalesced
// into ChangedMsg deliveries, after each of which the program re-renders from
// fresh state:
//
//	vm := viewmodel.Wrap[CounterState, CounterInput](newCounterModel())
//	m := teavm.New(vm, translateKeys, renderCounter)
//	defer m.Close()
//	p := tea.NewProgram(m)
//	if _, err := p.Run(); err != nil {
//	    ...
//	}
package teavm

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/viewmodel/pkg/viewmodel"
)

// ChangedMsg reports that the underlying view-model may have changed state.
// It is exported so composing models can observe redraw traffic.
type ChangedMsg struct{}

// Model adapts a type-erased view-model to the tea.Model interface.
//
// Init arms a watcher command that turns change notifications into ChangedMsg
// deliveries. Notifications are coalesced: a burst between two deliveries
// collapses into one ChangedMsg, and the view is always rendered from current
// state, so no update is lost. Call Close when the program is done with the
// model to remove its change listener.
type Model[S, I any] struct {
	vm        *viewmodel.Any[S, I]
	translate func(tea.Msg) (I, bool)
	render    func(S) string

	changes   chan struct{}
	done      chan struct{}
	stop      func()
	closeOnce sync.Once
}

// New adapts vm for use as a tea.Model. render produces the program's view
// from a state snapshot. translate maps incoming terminal messages to inputs
// and reports false for messages with no input meaning, which are ignored; it
// may be nil for a display-only model.
func New[S, I any](vm *viewmodel.Any[S, I], translate func(tea.Msg) (I, bool), render func(S) string) *Model[S, I] {
	if vm == nil {
		panic("teavm: New called with nil view-model")
	}
	if render == nil {
		panic("teavm: New requires a render function")
	}

	m := &Model[S, I]{
		vm:        vm,
		translate: translate,
		render:    render,
		changes:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	m.stop = vm.AddListener(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	return m
}

// Init arms the change watcher.
func (m *Model[S, I]) Init() tea.Cmd {
	return m.watch
}

// Update handles one message: ChangedMsg re-arms the watcher, any other
// message is translated into an input (when a translation exists) and
// dispatched. State changes caused by the dispatch come back asynchronously
// as ChangedMsg through the watcher.
func (m *Model[S, I]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case ChangedMsg:
		return m, m.watch
	default:
		if m.translate != nil {
			if input, ok := m.translate(msg); ok {
				m.vm.Trigger(input)
			}
		}
		return m, nil
	}
}

// View renders the current state.
func (m *Model[S, I]) View() string {
	return m.render(m.vm.State())
}

// Close removes the change listener and releases any watcher still in
// flight. It is safe to call more than once.
func (m *Model[S, I]) Close() {
	m.stop()
	m.closeOnce.Do(func() { close(m.done) })
}

// watch blocks until the next coalesced change signal. After Close it
// delivers nothing, even when a signal was still pending; the done check
// comes first so a pending signal cannot win the select.
func (m *Model[S, I]) watch() tea.Msg {
	select {
	case <-m.done:
		return nil
	default:
	}
	select {
	case <-m.done:
		return nil
	case <-m.changes:
		return ChangedMsg{}
	}
}
