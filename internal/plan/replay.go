package plan

import (
	"fmt"

	"github.com/aretw0/testhooks"
	"github.com/aretw0/testhooks/pkg/domain"
)

// RunCallbackName is the callback name used for the run callback in a Trace.
const RunCallbackName = "run"

// Step is one callback invocation observed during a replay.
type Step struct {
	// Case is the active case, or "" during run start and run end.
	Case     string
	Callback string
	Label    string
	Phase    domain.Phase
	Shared   bool
}

func (s Step) String() string {
	arrow := ">>"
	if s.Phase == domain.PhaseEnd {
		arrow = "<<"
	}
	if s.Label == "" {
		return s.Callback + arrow
	}
	return fmt.Sprintf("%s%s%s", s.Callback, arrow, s.Label)
}

// Trace is the ordered list of steps produced by Replay.
type Trace []Step

// Lines renders each step with Step.String.
func (t Trace) Lines() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.String()
	}
	return out
}

// ForCase returns the steps that happened while the named case was active.
func (t Trace) ForCase(name string) Trace {
	var out Trace
	for _, s := range t {
		if s.Case == name {
			out = append(out, s)
		}
	}
	return out
}

// Replay registers a recording callback for every plan entry, drives a full
// run through the dispatcher and returns what fired. opts are passed to
// testhooks.New, so observers and loggers see the replay too.
func Replay(p *Plan, opts ...testhooks.Option) (Trace, error) {
	var trace Trace
	active := ""

	hooks := testhooks.New(opts...)

	if p.RunCallback {
		err := hooks.RegisterRun(func(started bool) {
			trace = append(trace, Step{Callback: RunCallbackName, Phase: domain.PhaseOf(started)})
		})
		if err != nil {
			return nil, err
		}
	}

	for _, cb := range p.Callbacks {
		_, err := hooks.RegisterLabel(cb.Labels, cb.Shared, func(started bool, label string) {
			trace = append(trace, Step{
				Case:     active,
				Callback: cb.Name,
				Label:    label,
				Phase:    domain.PhaseOf(started),
				Shared:   cb.Shared,
			})
		})
		if err != nil {
			return nil, fmt.Errorf("callback %q: %w", cb.Name, err)
		}
	}

	l := hooks.Listener()
	l.RunStarting()
	for _, c := range p.Cases {
		active = c.Name
		l.CaseStarting(c.Name, c.Labels)
		l.CaseEnded(c.Name)
		active = ""
	}
	l.RunEnded()

	return trace, nil
}
