package dsl_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	callfsm "github.com/myg844/call-fsm"
	"github.com/myg844/call-fsm/pkg/dsl"
)

type lamp struct {
	Ticks int
}

func tick(s *callfsm.State[lamp], d *lamp) error {
	d.Ticks++
	return nil
}

func always(t *callfsm.Transition[lamp], d *lamp) bool { return true }

func TestBuilder_SimpleFlow(t *testing.T) {
	b := dsl.New(lamp{}, 3)

	red := b.State("red", nil, tick)
	green := b.State("green", nil, tick)
	yellow := b.State("yellow", nil, tick)

	b.Transition(red, green, always, nil).
		Transition(green, yellow, always, nil).
		Transition(yellow, red, always, nil).
		Start(red)

	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 0, red.Index())
	assert.Equal(t, "green", green.Name())

	index, ok := m.ActiveState()
	require.True(t, ok)
	assert.Equal(t, red.Index(), index)

	m.Run()
	index, _ = m.ActiveState()
	assert.Equal(t, green.Index(), index)
}

func TestBuilder_AutoNamesTransitions(t *testing.T) {
	b := dsl.New(lamp{}, 2)
	off := b.State("off", nil, nil)
	on := b.State("on", nil, nil)
	b.Transition(off, on, nil, nil)

	m, err := b.Build()
	require.NoError(t, err)

	tr, err := m.Transition(off.Index(), on.Index())
	require.NoError(t, err)
	assert.Equal(t, "off__on", tr.Name)
}

func TestBuilder_NamedTransition(t *testing.T) {
	b := dsl.New(lamp{}, 2)
	off := b.State("off", nil, nil)
	on := b.State("on", nil, nil)
	b.NamedTransition("power", off, on, nil, nil)

	m, err := b.Build()
	require.NoError(t, err)

	tr, err := m.Transition(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "power", tr.Name)
}

func TestBuilder_CapacityExceeded(t *testing.T) {
	b := dsl.New(lamp{}, 1)
	first := b.State("first", nil, nil)
	second := b.State("second", nil, nil)

	// The chain stays usable after the failure.
	b.Transition(first, second, nil, nil).Start(first)

	_, err := b.Build()
	assert.ErrorIs(t, err, callfsm.ErrMaxNumberOfStatesExceeded)
	assert.ErrorContains(t, err, `"second"`)
}

func TestBuilder_SelfLoopRejected(t *testing.T) {
	b := dsl.New(lamp{}, 2)
	only := b.State("only", nil, nil)
	b.Transition(only, only, nil, nil)

	_, err := b.Build()
	assert.ErrorIs(t, err, callfsm.ErrAddTransitionSrcDstStatesEqual)
}

func TestBuilder_NilHandle(t *testing.T) {
	b := dsl.New(lamp{}, 2)
	off := b.State("off", nil, nil)
	b.Transition(off, nil, nil, nil)

	_, err := b.Build()
	assert.ErrorContains(t, err, "nil")
}

func TestBuilder_ForeignHandle(t *testing.T) {
	b := dsl.New(lamp{}, 2)
	other := dsl.New(lamp{}, 2)

	off := b.State("off", nil, nil)
	stray := other.State("stray", nil, nil)
	b.Transition(off, stray, nil, nil)

	_, err := b.Build()
	assert.ErrorContains(t, err, "another builder")
}

func TestBuilder_ReportsFirstError(t *testing.T) {
	b := dsl.New(lamp{}, 1)
	first := b.State("first", nil, nil)
	b.State("second", nil, nil)
	b.Transition(first, first, nil, nil)

	_, err := b.Build()
	assert.ErrorIs(t, err, callfsm.ErrMaxNumberOfStatesExceeded)
	assert.NotErrorIs(t, err, callfsm.ErrAddTransitionSrcDstStatesEqual)
}

func TestBuilder_NoStartLeavesMachineInactive(t *testing.T) {
	b := dsl.New(lamp{}, 1)
	b.State("only", nil, nil)

	m, err := b.Build()
	require.NoError(t, err)

	_, ok := m.ActiveState()
	assert.False(t, ok)
}

func TestBuilder_OnError(t *testing.T) {
	b := dsl.New(lamp{}, 2, callfsm.WithLogger(slog.New(slog.DiscardHandler)))
	flaky := b.State("flaky", nil, func(s *callfsm.State[lamp], d *lamp) error {
		return assert.AnError
	})
	safe := b.State("safe", nil, nil)

	b.OnError(nil, func(err error, d *lamp) *callfsm.Destination {
		return callfsm.DestinationIndex(safe.Index())
	}).Start(flaky)

	m, err := b.Build()
	require.NoError(t, err)

	m.Run()

	index, _ := m.ActiveState()
	assert.Equal(t, safe.Index(), index)
}
