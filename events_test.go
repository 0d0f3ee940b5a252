package callfsm_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	callfsm "github.com/myg844/call-fsm"
)

func captureHooks(entries *[]string) callfsm.LifecycleHooks {
	return callfsm.LifecycleHooks{
		OnStateEnter: func(e *callfsm.StateEvent) {
			*entries = append(*entries, "enter "+e.State)
		},
		OnStateExit: func(e *callfsm.StateEvent) {
			*entries = append(*entries, "exit "+e.State)
		},
		OnTransition: func(e *callfsm.TransitionEvent) {
			*entries = append(*entries, fmt.Sprintf("fire %s %d->%d", e.Transition, e.Src, e.Dst))
		},
		OnHookError: func(e *callfsm.ErrorEvent) {
			*entries = append(*entries, fmt.Sprintf("error %s %s", e.Stage, e.State))
		},
	}
}

func TestLifecycleHooks_TransitionSequence(t *testing.T) {
	var entries []string
	m := callfsm.New(testData{}, 2, quiet(),
		callfsm.WithName("lift"),
		callfsm.WithLifecycleHooks(captureHooks(&entries)))
	_, err := m.AddState(callfsm.NewState[testData]("down", nil, nil))
	require.NoError(t, err)
	_, err = m.AddState(callfsm.NewState[testData]("up", nil, nil))
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(callfsm.NewTransition[testData]("raise", 0, 1, nil, nil), 0, 1))

	require.NoError(t, m.SetActiveState(0))
	m.Run()

	assert.Equal(t, []string{
		"enter down",
		"exit down",
		"fire raise 0->1",
		"enter up",
	}, entries)
}

func TestLifecycleHooks_EventFields(t *testing.T) {
	var got *callfsm.TransitionEvent
	hooks := callfsm.LifecycleHooks{
		OnTransition: func(e *callfsm.TransitionEvent) { got = e },
	}
	m := callfsm.New(testData{}, 2, quiet(),
		callfsm.WithName("lift"),
		callfsm.WithLifecycleHooks(hooks))
	_, err := m.AddState(callfsm.NewState[testData]("down", nil, nil))
	require.NoError(t, err)
	_, err = m.AddState(callfsm.NewState[testData]("up", nil, nil))
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(callfsm.NewTransition[testData]("raise", 0, 1, nil, nil), 0, 1))
	require.NoError(t, m.SetActiveState(0))

	m.Run()

	require.NotNil(t, got)
	assert.Equal(t, callfsm.EventTransition, got.Type)
	assert.Equal(t, "lift", got.Machine)
	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "raise", got.Transition)
}

func TestLifecycleHooks_HookError(t *testing.T) {
	var got *callfsm.ErrorEvent
	hooks := callfsm.LifecycleHooks{
		OnHookError: func(e *callfsm.ErrorEvent) { got = e },
	}
	m := callfsm.New(testData{}, 1, quiet(), callfsm.WithLifecycleHooks(hooks))
	_, err := m.AddState(callfsm.NewState[testData]("broken", nil,
		func(s *callfsm.State[testData], d *testData) error { return errHook }))
	require.NoError(t, err)
	require.NoError(t, m.SetActiveState(0))

	m.Run()

	require.NotNil(t, got)
	assert.Equal(t, callfsm.StageExec, got.Stage)
	assert.Equal(t, "broken", got.State)
	assert.ErrorIs(t, got.Err, errHook)
}

func TestLifecycleHooks_NilHooksAreSafe(t *testing.T) {
	m := callfsm.New(testData{}, 2, quiet())
	_, err := m.AddState(callfsm.NewState[testData]("a", nil, nil))
	require.NoError(t, err)
	_, err = m.AddState(callfsm.NewState[testData]("b", nil, nil))
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(callfsm.NewTransition[testData]("a__b", 0, 1, nil, nil), 0, 1))
	require.NoError(t, m.SetActiveState(0))

	assert.NotPanics(t, func() { m.Run() })
}

func TestLifecycleHooks_Join(t *testing.T) {
	var first, second []string
	joined := captureHooks(&first).Join(captureHooks(&second))

	m := callfsm.New(testData{}, 2, quiet(), callfsm.WithLifecycleHooks(joined))
	_, err := m.AddState(callfsm.NewState[testData]("a", nil, nil))
	require.NoError(t, err)
	_, err = m.AddState(callfsm.NewState[testData]("b", nil, nil))
	require.NoError(t, err)
	require.NoError(t, m.AddTransition(callfsm.NewTransition[testData]("a__b", 0, 1, nil, nil), 0, 1))
	require.NoError(t, m.SetActiveState(0))

	m.Run()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestLifecycleHooks_JoinWithPartialSets(t *testing.T) {
	var entries []string
	partial := callfsm.LifecycleHooks{
		OnStateEnter: func(e *callfsm.StateEvent) {
			entries = append(entries, "partial enter")
		},
	}
	joined := partial.Join(callfsm.LifecycleHooks{})

	m := callfsm.New(testData{}, 1, quiet(), callfsm.WithLifecycleHooks(joined))
	_, err := m.AddState(callfsm.NewState[testData]("a", nil, nil))
	require.NoError(t, err)
	require.NoError(t, m.SetActiveState(0))

	assert.Equal(t, []string{"partial enter"}, entries)
}
