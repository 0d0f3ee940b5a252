package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	callfsm "github.com/myg844/call-fsm"
	"github.com/myg844/call-fsm/pkg/definition"
)

func twoStates(transitions ...definition.Transition) *definition.Definition {
	return &definition.Definition{
		Name: "test",
		States: []definition.State{
			{Name: "a"},
			{Name: "b"},
		},
		Transitions: transitions,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     *definition.Definition
		wantErr string
		wantIs  error
	}{
		{
			name: "valid",
			def:  twoStates(definition.Transition{From: "a", To: "b"}),
		},
		{
			name:    "no states",
			def:     &definition.Definition{Name: "empty"},
			wantErr: "has no states",
		},
		{
			name: "unnamed state",
			def: &definition.Definition{States: []definition.State{
				{Name: "a"}, {},
			}},
			wantErr: "state 1 has no name",
		},
		{
			name: "duplicate state name",
			def: &definition.Definition{States: []definition.State{
				{Name: "a"}, {Name: "a"},
			}},
			wantErr: "duplicate state name: a",
		},
		{
			name: "capacity too small",
			def: &definition.Definition{
				Capacity: 1,
				States:   []definition.State{{Name: "a"}, {Name: "b"}},
			},
			wantIs: callfsm.ErrMaxNumberOfStatesExceeded,
		},
		{
			name:    "unknown source",
			def:     twoStates(definition.Transition{From: "x", To: "b"}),
			wantErr: `unknown source state "x"`,
		},
		{
			name:    "unknown destination",
			def:     twoStates(definition.Transition{From: "a", To: "x"}),
			wantErr: `unknown destination state "x"`,
		},
		{
			name:   "self loop",
			def:    twoStates(definition.Transition{From: "a", To: "a"}),
			wantIs: callfsm.ErrAddTransitionSrcDstStatesEqual,
		},
		{
			name: "duplicate cell",
			def: twoStates(
				definition.Transition{From: "a", To: "b"},
				definition.Transition{Name: "again", From: "a", To: "b"},
			),
			wantErr: `duplicate transition from "a" to "b"`,
		},
		{
			name: "unknown initial",
			def: &definition.Definition{
				Initial: "x",
				States:  []definition.State{{Name: "a"}},
			},
			wantErr: `unknown initial state: "x"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Validate()
			switch {
			case tc.wantIs != nil:
				assert.ErrorIs(t, err, tc.wantIs)
			case tc.wantErr != "":
				assert.ErrorContains(t, err, tc.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
