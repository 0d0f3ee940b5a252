/*
Package callfsm is an embeddable, tick-driven finite state machine engine for
host applications that already own a loop, such as control systems, game
update cycles, device supervisors, and simulation steppers.

It implements a polling design: nothing happens between calls to Run. Each
Run call advances the machine by exactly one tick against the data value the
machine owns, and the host decides the cadence. The engine never sleeps,
never spawns goroutines, and never takes locks.

# Concept

A machine is built from a fixed-capacity slot array of states and a matrix of
transitions between slots. States carry an init hook, run once on activation,
and an exec hook, run every tick. Transitions carry a check hook that guards
them and a done hook that runs once when they fire. A tick executes the
active state and then follows the first outgoing transition, scanned in
ascending destination order, whose check passes.

Hook failures never propagate out of Run. They are logged and routed to an
optional error recovery pair, which may redirect the machine to another
state; otherwise the machine stays put and the next tick retries the failed
hook.

# Usage

	package main

	import (
		"time"

		callfsm "github.com/myg844/call-fsm"
	)

	type Counters struct {
		Ticks int
	}

	func main() {
		m := callfsm.New(Counters{}, 2, callfsm.WithName("demo"))

		idle, _ := m.AddState(callfsm.NewState("idle", nil,
			func(s *callfsm.State[Counters], d *Counters) error {
				d.Ticks++
				return nil
			}))
		busy, _ := m.AddState(callfsm.NewState("busy", nil, nil))

		t := callfsm.NewTransition("idle__busy", idle, busy,
			func(t *callfsm.Transition[Counters], d *Counters) bool {
				return d.Ticks >= 3
			}, nil)
		_ = m.AddTransition(t, idle, busy)

		_ = m.SetActiveState(idle)

		// The host owns the loop and the cadence.
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			m.Run()
		}
	}

The dsl package offers a fluent builder over the same operations, and the
definition package loads machine topology from YAML or TOML files with hooks
resolved from a registry.
*/
package callfsm
