package definition

import (
	"fmt"

	callfsm "github.com/myg844/call-fsm"
	"github.com/myg844/call-fsm/pkg/registry"
)

// Build validates the definition and assembles a machine from it, resolving
// every named hook through reg. The machine owns data; opts are applied on
// top of the definition's name.
func Build[T any](d *Definition, data T, reg *registry.Registry[T], opts ...callfsm.Option) (*callfsm.Machine[T], error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	if reg == nil {
		reg = registry.NewRegistry[T]()
	}

	if d.Name != "" {
		opts = append([]callfsm.Option{callfsm.WithName(d.Name)}, opts...)
	}
	m := callfsm.New(data, d.EffectiveCapacity(), opts...)

	slots := make(map[string]int, len(d.States))
	for _, s := range d.States {
		var init, exec callfsm.StateHook[T]
		var err error
		if s.Init != "" {
			if init, err = reg.StateHook(s.Init); err != nil {
				return nil, fmt.Errorf("state %q: %w", s.Name, err)
			}
		}
		if s.Exec != "" {
			if exec, err = reg.StateHook(s.Exec); err != nil {
				return nil, fmt.Errorf("state %q: %w", s.Name, err)
			}
		}
		index, err := m.AddState(callfsm.NewState(s.Name, init, exec))
		if err != nil {
			return nil, fmt.Errorf("add state %q: %w", s.Name, err)
		}
		slots[s.Name] = index
	}

	for _, t := range d.Transitions {
		var check callfsm.CheckHook[T]
		var done callfsm.DoneHook[T]
		var err error
		if t.Check != "" {
			if check, err = reg.ResolveCheck(t.Check, t.CheckArgs); err != nil {
				return nil, fmt.Errorf("transition %q: %w", t.DisplayName(), err)
			}
		}
		if t.Done != "" {
			if done, err = reg.ResolveDone(t.Done, t.DoneArgs); err != nil {
				return nil, fmt.Errorf("transition %q: %w", t.DisplayName(), err)
			}
		}
		src, dst := slots[t.From], slots[t.To]
		tr := callfsm.NewTransition(t.DisplayName(), src, dst, check, done)
		if err := m.AddTransition(tr, src, dst); err != nil {
			return nil, fmt.Errorf("add transition %q: %w", t.DisplayName(), err)
		}
	}

	if d.OnError != nil {
		var onInit, onExec callfsm.ErrorHook[T]
		var err error
		if d.OnError.Init != "" {
			if onInit, err = reg.ErrorHook(d.OnError.Init); err != nil {
				return nil, fmt.Errorf("on_error: %w", err)
			}
		}
		if d.OnError.Exec != "" {
			if onExec, err = reg.ErrorHook(d.OnError.Exec); err != nil {
				return nil, fmt.Errorf("on_error: %w", err)
			}
		}
		m.SetErrorCallbacks(onInit, onExec)
	}

	if d.Initial != "" {
		if err := m.SetActiveState(slots[d.Initial]); err != nil {
			return nil, fmt.Errorf("initial state %q: %w", d.Initial, err)
		}
	}
	return m, nil
}
