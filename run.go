package callfsm

// Run advances the machine by exactly one tick. A tick initializes the active
// state if needed, executes it, then scans its outgoing transitions in
// ascending destination order and follows the first one whose check passes.
//
// Run never blocks, sleeps, or spawns goroutines. If no state is active, or
// no transition fires, the call is a no-op apart from the hooks it ran.
// Hook failures are routed to the error recovery pair; see SetErrorCallbacks.
func (m *Machine[T]) Run() {
	if m.active < 0 {
		return
	}

	src := m.active
	state := m.states[src]

	if !m.initialized {
		if err := state.DoInit(&m.data); err != nil {
			m.dispatchError(StageInit, err)
			return
		}
	}
	m.initialized = true

	if err := state.DoExec(&m.data); err != nil {
		m.dispatchError(StageExec, err)
		return
	}

	for _, t := range m.transitions[src] {
		if t == nil || !t.DoCheck(&m.data) {
			continue
		}
		if err := t.DoDone(&m.data); err != nil {
			m.dispatchError(StageDone, err)
			return
		}

		// The transition's own Dst decides where we go, not the cell it
		// was scanned from.
		m.emitStateExit(src)
		m.active = t.Dst
		m.initialized = false
		m.emitTransition(t, src, t.Dst)
		m.emitStateEnter(t.Dst)
		m.logger.Debug("transition fired",
			"transition", t.Name,
			"from", m.stateName(src),
			"to", m.stateName(t.Dst),
		)
		return
	}
}

// dispatchError routes a hook failure through the recovery pair. The failure
// never propagates to the Run caller: without an installed pair, or when the
// pair resolves no valid destination, the machine is left untouched and the
// next tick retries the failed hook.
func (m *Machine[T]) dispatchError(stage Stage, err error) {
	m.logger.Error("hook failed",
		"stage", stage,
		"state", m.stateName(m.active),
		"index", m.active,
		"err", err,
	)
	m.emitHookError(stage, m.active, err)

	if m.recovery == nil {
		return
	}
	if m.recovery.onInit != nil {
		m.recovery.onInit(err, &m.data)
	}
	if m.recovery.onExec == nil {
		return
	}
	dest := m.recovery.onExec(err, &m.data)
	if dest == nil {
		return
	}

	next, ok := m.resolveDestination(dest)
	if !ok {
		m.logger.Debug("recovery destination not resolved", "destination", dest)
		return
	}
	m.emitStateExit(m.active)
	m.active = next
	m.initialized = false
	m.emitStateEnter(next)
	m.logger.Debug("recovered", "destination", dest, "state", m.stateName(next))
}

func (m *Machine[T]) resolveDestination(d *Destination) (int, bool) {
	if d.kind == destinationName {
		return m.StateByName(d.name)
	}
	if d.index < 0 || d.index >= m.numStates {
		return 0, false
	}
	return d.index, true
}
