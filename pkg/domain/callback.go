package domain

// Handle identifies one registered label callback.
// Handles are issued from 0 in registration order and are never reused.
type Handle int

// RunCallback is invoked once when the whole test run starts (started=true)
// and once when it ends (started=false).
type RunCallback func(started bool)

// LabelCallback is invoked when a test case carrying one of its labels starts
// (started=true) and again when its teardown is due (started=false). label is
// the canonical label through which the callback was reached.
type LabelCallback func(started bool, label string)

// Record is a registered label callback.
type Record struct {
	Body LabelCallback

	// Shared callbacks start at most once per run and end only at run end.
	Shared bool

	// Expr is the raw label expression given at registration.
	Expr string
}

// Invocation remembers a started callback together with the label it was
// started under, so the end call receives the same label.
type Invocation struct {
	Handle Handle
	Label  string
}

// Scope returns "shared" or "case" depending on the lifetime policy.
func (r Record) Scope() string {
	if r.Shared {
		return ScopeShared
	}
	return ScopeCase
}

const (
	ScopeShared = "shared"
	ScopeCase   = "case"
)
