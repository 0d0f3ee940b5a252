package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	callfsm "github.com/myg844/call-fsm"
)

// Metrics exposes a machine's lifecycle as Prometheus series. One Metrics
// value tracks one machine; the machine label distinguishes them on a shared
// registry.
type Metrics struct {
	machine string

	stateActivations *prometheus.CounterVec
	transitionsFired *prometheus.CounterVec
	hookErrors       *prometheus.CounterVec
	activeState      *prometheus.GaugeVec
}

// NewMetrics creates and registers the metric vectors on reg. A nil reg
// falls back to the default registerer. The machine string labels every
// series.
func NewMetrics(reg prometheus.Registerer, machine string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		machine: machine,
		stateActivations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "callfsm_state_activations_total",
				Help: "Total number of state activations.",
			},
			[]string{"machine", "state"},
		),
		transitionsFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "callfsm_transitions_fired_total",
				Help: "Total number of fired transitions.",
			},
			[]string{"machine", "transition"},
		),
		hookErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "callfsm_hook_errors_total",
				Help: "Total number of hook failures routed to error dispatch.",
			},
			[]string{"machine", "stage"},
		),
		activeState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "callfsm_active_state",
				Help: "1 for the state the machine currently occupies, 0 otherwise.",
			},
			[]string{"machine", "state"},
		),
	}
	reg.MustRegister(m.stateActivations, m.transitionsFired, m.hookErrors, m.activeState)
	return m
}

// Hooks returns lifecycle hooks that feed the metrics. Compose them with
// other observers via LifecycleHooks.Join.
func (m *Metrics) Hooks() callfsm.LifecycleHooks {
	return callfsm.LifecycleHooks{
		OnStateEnter: func(e *callfsm.StateEvent) {
			m.stateActivations.WithLabelValues(m.machine, e.State).Inc()
			m.activeState.WithLabelValues(m.machine, e.State).Set(1)
		},
		OnStateExit: func(e *callfsm.StateEvent) {
			m.activeState.WithLabelValues(m.machine, e.State).Set(0)
		},
		OnTransition: func(e *callfsm.TransitionEvent) {
			m.transitionsFired.WithLabelValues(m.machine, e.Transition).Inc()
		},
		OnHookError: func(e *callfsm.ErrorEvent) {
			m.hookErrors.WithLabelValues(m.machine, string(e.Stage)).Inc()
		},
	}
}
