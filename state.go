package callfsm

// StateHook runs on behalf of a state, either to initialize it after it
// becomes active or to execute one unit of its work per tick. Hooks receive
// the owning state and the machine's data and may mutate the data freely.
type StateHook[T any] func(s *State[T], data *T) error

// State is a named vertex of the machine. Init runs once each time the state
// becomes active, Exec runs on every tick while it stays active. Either hook
// may be nil, in which case it is a successful no-op.
type State[T any] struct {
	Name string
	Init StateHook[T]
	Exec StateHook[T]
}

// NewState builds a state with the given name and hooks.
func NewState[T any](name string, init, exec StateHook[T]) *State[T] {
	return &State[T]{Name: name, Init: init, Exec: exec}
}

// DoInit invokes the init hook against data.
func (s *State[T]) DoInit(data *T) error {
	if s.Init == nil {
		return nil
	}
	return s.Init(s, data)
}

// DoExec invokes the exec hook against data.
func (s *State[T]) DoExec(data *T) error {
	if s.Exec == nil {
		return nil
	}
	return s.Exec(s, data)
}
