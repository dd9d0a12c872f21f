package domain

import "time"

// Phase tells whether a callback was invoked for setup or teardown.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseEnd   Phase = "end"
)

// PhaseOf maps the started flag passed to callbacks onto a Phase.
func PhaseOf(started bool) Phase {
	if started {
		return PhaseStart
	}
	return PhaseEnd
}

// CallbackEvent describes one label callback invocation.
type CallbackEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Phase     Phase         `json:"phase"`
	Handle    Handle        `json:"handle"`
	Label     string        `json:"label"`
	Case      string        `json:"case,omitempty"`
	Shared    bool          `json:"shared"`
	Duration  time.Duration `json:"duration"`
}

// RunEvent describes a run-wide transition.
type RunEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Phase     Phase     `json:"phase"`

	// HasCallback is false when no run callback was registered.
	HasCallback bool `json:"has_callback"`
}

// Observer defines optional hooks for dispatcher observability.
// Nil fields are skipped.
type Observer struct {
	OnRun      func(*RunEvent)
	OnCallback func(*CallbackEvent)
}
