package definition

import (
	"fmt"

	callfsm "github.com/myg844/call-fsm"
)

// Validate checks the definition's topology without building a machine:
// state names must be present and unique, transitions must connect two
// distinct known states, at most one transition may occupy each state pair,
// the capacity must hold every state, and the initial state must exist.
func (d *Definition) Validate() error {
	if len(d.States) == 0 {
		return fmt.Errorf("definition %q has no states", d.Name)
	}

	names := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		if s.Name == "" {
			return fmt.Errorf("state %d has no name", i)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate state name: %s", s.Name)
		}
		names[s.Name] = true
	}

	if d.EffectiveCapacity() < len(d.States) {
		return fmt.Errorf("capacity %d cannot hold %d states: %w",
			d.EffectiveCapacity(), len(d.States), callfsm.ErrMaxNumberOfStatesExceeded)
	}

	cells := make(map[[2]string]bool, len(d.Transitions))
	for _, t := range d.Transitions {
		if !names[t.From] {
			return fmt.Errorf("transition %q: unknown source state %q", t.DisplayName(), t.From)
		}
		if !names[t.To] {
			return fmt.Errorf("transition %q: unknown destination state %q", t.DisplayName(), t.To)
		}
		if t.From == t.To {
			return fmt.Errorf("transition %q: %w", t.DisplayName(), callfsm.ErrAddTransitionSrcDstStatesEqual)
		}
		cell := [2]string{t.From, t.To}
		if cells[cell] {
			return fmt.Errorf("duplicate transition from %q to %q", t.From, t.To)
		}
		cells[cell] = true
	}

	if d.Initial != "" && !names[d.Initial] {
		return fmt.Errorf("unknown initial state: %q", d.Initial)
	}
	return nil
}
