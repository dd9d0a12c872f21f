package runtime

// State is the lifecycle position of a Dispatcher.
type State int

const (
	StateIdle State = iota
	StateRunActive
	StateCaseActive
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunActive:
		return "run_active"
	case StateCaseActive:
		return "case_active"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}
