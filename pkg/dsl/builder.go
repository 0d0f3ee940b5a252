package dsl

import (
	"errors"
	"fmt"

	callfsm "github.com/myg844/call-fsm"
)

// Builder assembles a machine through chained calls. Registration errors are
// collected and reported by Build, so callers do not check errors per step.
type Builder[T any] struct {
	machine *callfsm.Machine[T]
	start   *StateHandle[T]
	err     error
}

// New creates a builder for a machine that owns data and can hold up to
// capacity states.
func New[T any](data T, capacity int, opts ...callfsm.Option) *Builder[T] {
	return &Builder[T]{machine: callfsm.New(data, capacity, opts...)}
}

// State registers a state and returns a handle bound to its slot.
func (b *Builder[T]) State(name string, init, exec callfsm.StateHook[T]) *StateHandle[T] {
	handle := &StateHandle[T]{builder: b, name: name}
	if b.err != nil {
		return handle
	}
	index, err := b.machine.AddState(callfsm.NewState(name, init, exec))
	if err != nil {
		b.fail(fmt.Errorf("add state %q: %w", name, err))
		return handle
	}
	handle.index = index
	handle.valid = true
	return handle
}

// Transition wires src to dst, naming the transition after its endpoints as
// "src__dst".
func (b *Builder[T]) Transition(src, dst *StateHandle[T], check callfsm.CheckHook[T], done callfsm.DoneHook[T]) *Builder[T] {
	if src == nil || dst == nil {
		b.fail(errors.New("transition endpoints must not be nil"))
		return b
	}
	return b.NamedTransition(src.name+"__"+dst.name, src, dst, check, done)
}

// NamedTransition wires src to dst under an explicit name.
func (b *Builder[T]) NamedTransition(name string, src, dst *StateHandle[T], check callfsm.CheckHook[T], done callfsm.DoneHook[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	srcIndex, err := b.resolve(src)
	if err != nil {
		b.fail(fmt.Errorf("transition %q: %w", name, err))
		return b
	}
	dstIndex, err := b.resolve(dst)
	if err != nil {
		b.fail(fmt.Errorf("transition %q: %w", name, err))
		return b
	}
	t := callfsm.NewTransition(name, srcIndex, dstIndex, check, done)
	if err := b.machine.AddTransition(t, srcIndex, dstIndex); err != nil {
		b.fail(fmt.Errorf("add transition %q: %w", name, err))
	}
	return b
}

// Start marks the state the machine activates when built.
func (b *Builder[T]) Start(h *StateHandle[T]) *Builder[T] {
	if b.err != nil {
		return b
	}
	if _, err := b.resolve(h); err != nil {
		b.fail(fmt.Errorf("start state: %w", err))
		return b
	}
	b.start = h
	return b
}

// OnError installs the machine's error recovery pair.
func (b *Builder[T]) OnError(onInit, onExec callfsm.ErrorHook[T]) *Builder[T] {
	b.machine.SetErrorCallbacks(onInit, onExec)
	return b
}

// Build returns the assembled machine, or the first error hit while
// assembling it. When a start state was set, the machine is already active.
func (b *Builder[T]) Build() (*callfsm.Machine[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.start != nil {
		if err := b.machine.SetActiveState(b.start.index); err != nil {
			return nil, fmt.Errorf("start state %q: %w", b.start.name, err)
		}
	}
	return b.machine, nil
}

func (b *Builder[T]) resolve(h *StateHandle[T]) (int, error) {
	switch {
	case h == nil:
		return 0, errors.New("nil state handle")
	case h.builder != b:
		return 0, errors.New("state handle belongs to another builder")
	case !h.valid:
		return 0, errors.New("state handle is not registered")
	}
	return h.index, nil
}

func (b *Builder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
