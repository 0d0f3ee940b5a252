package dsl

// StateHandle identifies a state registered through a Builder. Handles are
// only meaningful on the builder that created them.
type StateHandle[T any] struct {
	builder *Builder[T]
	index   int
	name    string
	valid   bool
}

// Index returns the slot the state occupies in the built machine.
func (h *StateHandle[T]) Index() int { return h.index }

// Name returns the state's name.
func (h *StateHandle[T]) Name() string { return h.name }
