package callfsm

import (
	"log/slog"
	"time"
)

// Machine is a fixed-capacity, tick-driven finite state machine. It owns a
// value of the data type T, a slot array of states, and a capacity by
// capacity matrix of transitions between slots.
//
// The machine never runs on its own. The host calls Run to advance it by
// exactly one tick, at whatever cadence the host chooses. All methods must be
// called from a single goroutine; the machine performs no locking.
type Machine[T any] struct {
	name   string
	logger *slog.Logger
	hooks  LifecycleHooks

	data T

	states    []*State[T]
	numStates int

	// transitions[src][dst] holds the outgoing edge from slot src to slot
	// dst, or nil. The diagonal is always nil.
	transitions [][]*Transition[T]

	// active is the current slot, or -1 before SetActiveState is called.
	// initialized reports whether the active state's init hook has run.
	active      int
	initialized bool

	recovery *errorCallbacks[T]
}

// ErrorHook inspects an error raised by a state or transition hook and may
// return a redirect destination. A nil return leaves the machine where it is.
type ErrorHook[T any] func(err error, data *T) *Destination

type errorCallbacks[T any] struct {
	onInit ErrorHook[T]
	onExec ErrorHook[T]
}

// New creates a machine that owns data and can hold up to capacity states.
// Capacity is fixed for the machine's lifetime.
func New[T any](data T, capacity int, opts ...Option) *Machine[T] {
	if capacity < 0 {
		capacity = 0
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.With("machine", o.name)
	}

	transitions := make([][]*Transition[T], capacity)
	for i := range transitions {
		transitions[i] = make([]*Transition[T], capacity)
	}

	return &Machine[T]{
		name:        o.name,
		logger:      logger,
		hooks:       o.hooks,
		data:        data,
		states:      make([]*State[T], capacity),
		transitions: transitions,
		active:      -1,
	}
}

// Name returns the label set with WithName, or the empty string.
func (m *Machine[T]) Name() string { return m.name }

// Len returns the number of registered states.
func (m *Machine[T]) Len() int { return m.numStates }

// Cap returns the machine's state capacity.
func (m *Machine[T]) Cap() int { return len(m.states) }

// AddState registers s in the next free slot and returns its index. Slots
// fill in registration order and are never freed.
func (m *Machine[T]) AddState(s *State[T]) (int, error) {
	if s == nil {
		return 0, ErrStateIsEmpty
	}
	if m.numStates >= len(m.states) {
		return 0, ErrMaxNumberOfStatesExceeded
	}
	index := m.numStates
	m.states[index] = s
	m.numStates++
	return index, nil
}

// AddTransition registers t as the outgoing edge from slot src to slot dst,
// replacing any transition already in that cell. Both endpoints must refer to
// registered states and must differ.
//
// The cell position decides when t is evaluated during a tick; t's own Dst
// field decides where the machine moves when t fires.
func (m *Machine[T]) AddTransition(t *Transition[T], src, dst int) error {
	if t == nil {
		return ErrTransitionIsEmpty
	}
	if src < 0 || src >= m.numStates || dst < 0 || dst >= m.numStates {
		return ErrTransitionIndexOutOfBounds
	}
	if src == dst {
		return ErrAddTransitionSrcDstStatesEqual
	}
	m.transitions[src][dst] = t
	return nil
}

// State returns the state registered at index.
func (m *Machine[T]) State(index int) (*State[T], error) {
	if index < 0 || index >= m.numStates {
		return nil, ErrStateIndexOutOfBounds
	}
	if m.states[index] == nil {
		return nil, ErrStateIsEmpty
	}
	return m.states[index], nil
}

// StateByName scans the slots in index order and returns the first state
// whose name matches. Names are not required to be unique.
func (m *Machine[T]) StateByName(name string) (int, bool) {
	for i, s := range m.states {
		if s != nil && s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Transition returns the transition registered in cell (src, dst).
func (m *Machine[T]) Transition(src, dst int) (*Transition[T], error) {
	if src < 0 || src >= m.numStates || dst < 0 || dst >= m.numStates {
		return nil, ErrTransitionIndexOutOfBounds
	}
	if m.transitions[src][dst] == nil {
		return nil, ErrTransitionIsEmpty
	}
	return m.transitions[src][dst], nil
}

// ActiveTransitions returns the full outgoing row of slot src, including nil
// cells, in destination order. The slice is the machine's own row; treat it
// as read only.
func (m *Machine[T]) ActiveTransitions(src int) ([]*Transition[T], error) {
	if src < 0 || src >= m.numStates {
		return nil, ErrTransitionIndexOutOfBounds
	}
	return m.transitions[src], nil
}

// ActiveState returns the active slot index, and false if no state has been
// activated yet.
func (m *Machine[T]) ActiveState() (int, bool) {
	return m.active, m.active >= 0
}

// SetActiveState moves the active pointer to slot index. It does not touch
// the initialization flag: activating a slot while the previous state was
// initialized skips the new state's init hook on the next tick. Hosts that
// want init to run again must do so before the first Run call, while the flag
// is still clear.
func (m *Machine[T]) SetActiveState(index int) error {
	if _, err := m.State(index); err != nil {
		return err
	}
	if m.active != index {
		m.emitStateExit(m.active)
	}
	m.active = index
	m.emitStateEnter(index)
	return nil
}

// SetErrorCallbacks installs the error recovery pair. Both hooks run, in
// order, every time a state or transition hook fails. The first hook's
// return value is ignored; the second may return a redirect destination.
// Either hook may be nil.
func (m *Machine[T]) SetErrorCallbacks(onInit, onExec ErrorHook[T]) {
	m.recovery = &errorCallbacks[T]{onInit: onInit, onExec: onExec}
}

func (m *Machine[T]) stateName(index int) string {
	if index < 0 || index >= m.numStates || m.states[index] == nil {
		return ""
	}
	return m.states[index].Name
}

func (m *Machine[T]) eventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, Machine: m.name}
}

func (m *Machine[T]) emitStateEnter(index int) {
	if m.hooks.OnStateEnter == nil || index < 0 {
		return
	}
	m.hooks.OnStateEnter(&StateEvent{
		EventBase: m.eventBase(EventStateEnter),
		Index:     index,
		State:     m.stateName(index),
	})
}

func (m *Machine[T]) emitStateExit(index int) {
	if m.hooks.OnStateExit == nil || index < 0 {
		return
	}
	m.hooks.OnStateExit(&StateEvent{
		EventBase: m.eventBase(EventStateExit),
		Index:     index,
		State:     m.stateName(index),
	})
}

func (m *Machine[T]) emitTransition(t *Transition[T], src, dst int) {
	if m.hooks.OnTransition == nil {
		return
	}
	m.hooks.OnTransition(&TransitionEvent{
		EventBase:  m.eventBase(EventTransition),
		Transition: t.Name,
		Src:        src,
		Dst:        dst,
	})
}

func (m *Machine[T]) emitHookError(stage Stage, index int, err error) {
	if m.hooks.OnHookError == nil {
		return
	}
	m.hooks.OnHookError(&ErrorEvent{
		EventBase: m.eventBase(EventHookError),
		Stage:     stage,
		Index:     index,
		State:     m.stateName(index),
		Err:       err,
	})
}
