/*
Package dsl provides a fluent builder for constructing machines in Go code.

It wraps the core registration operations with a type-safe, chainable API, so
flows can be declared without threading indices and error checks through every
step. This is particularly useful for unit tests, embedded machines, and
leveraging IDE autocompletion instead of external definition files.

Example usage:

	package main

	import (
		callfsm "github.com/myg844/call-fsm"
		"github.com/myg844/call-fsm/pkg/dsl"
	)

	type lamp struct {
		Presses int
	}

	func main() {
		b := dsl.New(lamp{}, 2)

		off := b.State("off", nil, countPress)
		on := b.State("on", nil, countPress)

		b.Transition(off, on, pressed, nil).
			Transition(on, off, pressed, nil).
			Start(off)

		m, err := b.Build()
		if err != nil {
			panic(err)
		}

		for i := 0; i < 10; i++ {
			m.Run()
		}
	}

	func countPress(s *callfsm.State[lamp], d *lamp) error {
		d.Presses++
		return nil
	}

	func pressed(t *callfsm.Transition[lamp], d *lamp) bool {
		return d.Presses%2 == 0
	}
*/
package dsl
