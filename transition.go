package callfsm

// CheckHook guards a transition. It runs on every tick while the source state
// is active and must report whether the transition should fire. Check hooks
// observe the data; mutation belongs to state and done hooks.
type CheckHook[T any] func(t *Transition[T], data *T) bool

// DoneHook runs exactly once when its transition fires, before the machine
// moves to the destination state.
type DoneHook[T any] func(t *Transition[T], data *T) error

// Transition is a named directed edge between two state slots. Src and Dst
// record the endpoints the transition was built for; the machine follows Dst
// when the transition fires, regardless of the matrix cell it occupies.
//
// A nil Check fires unconditionally. A nil Done is a successful no-op.
type Transition[T any] struct {
	Name  string
	Src   int
	Dst   int
	Check CheckHook[T]
	Done  DoneHook[T]
}

// NewTransition builds a transition from slot src to slot dst.
func NewTransition[T any](name string, src, dst int, check CheckHook[T], done DoneHook[T]) *Transition[T] {
	return &Transition[T]{Name: name, Src: src, Dst: dst, Check: check, Done: done}
}

// DoCheck invokes the check hook against data.
func (t *Transition[T]) DoCheck(data *T) bool {
	if t.Check == nil {
		return true
	}
	return t.Check(t, data)
}

// DoDone invokes the done hook against data.
func (t *Transition[T]) DoDone(data *T) error {
	if t.Done == nil {
		return nil
	}
	return t.Done(t, data)
}
