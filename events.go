package callfsm

import "time"

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventStateEnter EventType = "state_enter"
	EventStateExit  EventType = "state_exit"
	EventTransition EventType = "transition"
	EventHookError  EventType = "hook_error"
)

// Stage identifies which hook produced an error.
type Stage string

const (
	StageInit Stage = "init"
	StageExec Stage = "exec"
	StageDone Stage = "done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine,omitempty"`
}

// StateEvent reports the active slot entering or leaving a state.
type StateEvent struct {
	EventBase
	Index int    `json:"index"`
	State string `json:"state"`
}

// TransitionEvent reports a fired transition.
type TransitionEvent struct {
	EventBase
	Transition string `json:"transition"`
	Src        int    `json:"src"`
	Dst        int    `json:"dst"`
}

// ErrorEvent reports a hook failure handed to error dispatch.
type ErrorEvent struct {
	EventBase
	Stage Stage  `json:"stage"`
	Index int    `json:"index"`
	State string `json:"state"`
	Err   error  `json:"-"`
}

// LifecycleHooks defines callbacks for machine observability. Hooks observe
// ticks; they cannot alter them. Any field may be nil.
type LifecycleHooks struct {
	OnStateEnter func(*StateEvent)
	OnStateExit  func(*StateEvent)
	OnTransition func(*TransitionEvent)
	OnHookError  func(*ErrorEvent)
}

// Join fans every event out to h first and then to next. It lets independent
// observers, such as logging and metrics, share one machine.
func (h LifecycleHooks) Join(next LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStateEnter: joinHook(h.OnStateEnter, next.OnStateEnter),
		OnStateExit:  joinHook(h.OnStateExit, next.OnStateExit),
		OnTransition: joinHook(h.OnTransition, next.OnTransition),
		OnHookError:  joinHook(h.OnHookError, next.OnHookError),
	}
}

func joinHook[E any](first, second func(*E)) func(*E) {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return func(ev *E) {
		first(ev)
		second(ev)
	}
}
