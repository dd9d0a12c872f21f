package domain

import "errors"

// ErrDuplicateRegistration is returned when a second run callback is registered.
var ErrDuplicateRegistration = errors.New("run callback already registered")

// ErrNilCallback is returned when a nil body is registered.
var ErrNilCallback = errors.New("nil callback")

// ErrCasePairing reports a case-ended event that does not match the active case.
var ErrCasePairing = errors.New("case ended without matching case start")

// ErrLifecycleOrder reports a lifecycle event that is not valid in the current state.
var ErrLifecycleOrder = errors.New("lifecycle event out of order")
