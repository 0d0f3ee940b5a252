// Package registry maps hook names to Go functions so machine definitions
// loaded from files can refer to behavior by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/mitchellh/mapstructure"

	callfsm "github.com/myg844/call-fsm"
)

// CheckFactory builds a parameterized check hook from definition arguments.
type CheckFactory[T any] func(args map[string]any) (callfsm.CheckHook[T], error)

// DoneFactory builds a parameterized done hook from definition arguments.
type DoneFactory[T any] func(args map[string]any) (callfsm.DoneHook[T], error)

// Registry manages named hooks for machines over the data type T. State
// hooks share one namespace and serve as both init and exec hooks, mirroring
// their common signature.
type Registry[T any] struct {
	mu             sync.RWMutex
	states         map[string]callfsm.StateHook[T]
	checks         map[string]callfsm.CheckHook[T]
	checkFactories map[string]CheckFactory[T]
	dones          map[string]callfsm.DoneHook[T]
	doneFactories  map[string]DoneFactory[T]
	errorHooks     map[string]callfsm.ErrorHook[T]
}

// NewRegistry creates a new empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		states:         make(map[string]callfsm.StateHook[T]),
		checks:         make(map[string]callfsm.CheckHook[T]),
		checkFactories: make(map[string]CheckFactory[T]),
		dones:          make(map[string]callfsm.DoneHook[T]),
		doneFactories:  make(map[string]DoneFactory[T]),
		errorHooks:     make(map[string]callfsm.ErrorHook[T]),
	}
}

// RegisterStateHook adds a state hook under name. An existing hook with the
// same name is overwritten.
func (r *Registry[T]) RegisterStateHook(name string, hook callfsm.StateHook[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[name] = hook
}

// RegisterCheck adds a check hook under name.
func (r *Registry[T]) RegisterCheck(name string, hook callfsm.CheckHook[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = hook
}

// RegisterCheckFactory adds a parameterized check hook under name.
func (r *Registry[T]) RegisterCheckFactory(name string, factory CheckFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkFactories[name] = factory
}

// RegisterDone adds a done hook under name.
func (r *Registry[T]) RegisterDone(name string, hook callfsm.DoneHook[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dones[name] = hook
}

// RegisterDoneFactory adds a parameterized done hook under name.
func (r *Registry[T]) RegisterDoneFactory(name string, factory DoneFactory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doneFactories[name] = factory
}

// RegisterErrorHook adds an error hook under name.
func (r *Registry[T]) RegisterErrorHook(name string, hook callfsm.ErrorHook[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorHooks[name] = hook
}

// StateHook looks up a state hook by name.
func (r *Registry[T]) StateHook(name string) (callfsm.StateHook[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hook, ok := r.states[name]
	if !ok {
		return nil, fmt.Errorf("state hook not found: %s", name)
	}
	return hook, nil
}

// ResolveCheck returns the check hook registered under name. When a factory
// is registered, it is built with args; plain hooks reject arguments.
func (r *Registry[T]) ResolveCheck(name string, args map[string]any) (callfsm.CheckHook[T], error) {
	r.mu.RLock()
	factory, isFactory := r.checkFactories[name]
	hook, isHook := r.checks[name]
	r.mu.RUnlock()

	switch {
	case isFactory:
		built, err := factory(args)
		if err != nil {
			return nil, fmt.Errorf("build check %q: %w", name, err)
		}
		return built, nil
	case !isHook:
		return nil, fmt.Errorf("check hook not found: %s", name)
	case len(args) > 0:
		return nil, fmt.Errorf("check %q takes no arguments", name)
	}
	return hook, nil
}

// ResolveDone returns the done hook registered under name. When a factory is
// registered, it is built with args; plain hooks reject arguments.
func (r *Registry[T]) ResolveDone(name string, args map[string]any) (callfsm.DoneHook[T], error) {
	r.mu.RLock()
	factory, isFactory := r.doneFactories[name]
	hook, isHook := r.dones[name]
	r.mu.RUnlock()

	switch {
	case isFactory:
		built, err := factory(args)
		if err != nil {
			return nil, fmt.Errorf("build done %q: %w", name, err)
		}
		return built, nil
	case !isHook:
		return nil, fmt.Errorf("done hook not found: %s", name)
	case len(args) > 0:
		return nil, fmt.Errorf("done %q takes no arguments", name)
	}
	return hook, nil
}

// ErrorHook looks up an error hook by name.
func (r *Registry[T]) ErrorHook(name string) (callfsm.ErrorHook[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	hook, ok := r.errorHooks[name]
	if !ok {
		return nil, fmt.Errorf("error hook not found: %s", name)
	}
	return hook, nil
}

// DecodeArgs decodes loosely typed definition arguments into a factory's
// typed parameter struct.
func DecodeArgs(args map[string]any, out any) error {
	if err := mapstructure.Decode(args, out); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}
