package callfsm

import "errors"

// ErrStateIndexOutOfBounds is returned when a state index does not refer to a
// registered state slot.
var ErrStateIndexOutOfBounds = errors.New("state index out of bounds")

// ErrTransitionIndexOutOfBounds is returned when a transition endpoint does
// not refer to a registered state slot.
var ErrTransitionIndexOutOfBounds = errors.New("transition index out of bounds")

// ErrMaxNumberOfStatesExceeded is returned when adding a state to a machine
// whose capacity is already full.
var ErrMaxNumberOfStatesExceeded = errors.New("max number of states exceeded")

// ErrAddTransitionSrcDstStatesEqual is returned when adding a transition whose
// source and destination are the same slot. Self loops are implicit: a state
// with no passing transition stays active.
var ErrAddTransitionSrcDstStatesEqual = errors.New("transition source and destination states are equal")

// ErrStateIsEmpty is returned when a lookup hits a slot that holds no state,
// or when a nil state is registered.
var ErrStateIsEmpty = errors.New("state is empty")

// ErrTransitionIsEmpty is returned when a lookup hits a matrix cell that holds
// no transition, or when a nil transition is registered.
var ErrTransitionIsEmpty = errors.New("transition is empty")
