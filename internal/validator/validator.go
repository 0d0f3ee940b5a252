// Package validator runs structural lints that go beyond per-field
// definition validation.
package validator

import (
	"fmt"
	"strings"

	"github.com/myg844/call-fsm/pkg/definition"
)

// CheckReachability crawls the transition graph from the initial state and
// reports every state the machine can never reach. Definitions without an
// initial state are skipped, their activation order belongs to the host.
func CheckReachability(def *definition.Definition) error {
	if def.Initial == "" {
		return nil
	}

	// Adjacency by state name
	next := make(map[string][]string, len(def.States))
	for _, t := range def.Transitions {
		next[t.From] = append(next[t.From], t.To)
	}

	visited := make(map[string]bool, len(def.States))
	queue := []string{def.Initial}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next[current] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	var unreachable []string
	for _, s := range def.States {
		if !visited[s.Name] {
			unreachable = append(unreachable, s.Name)
		}
	}

	if len(unreachable) > 0 {
		return fmt.Errorf("found %d unreachable states:\n- %s", len(unreachable), strings.Join(unreachable, "\n- "))
	}

	return nil
}
