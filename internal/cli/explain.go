package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/internal/presentation/graph"
	"github.com/aretw0/testhooks/internal/presentation/tui"
)

// RunExplain prints a markdown report of a replayed plan. The report is
// rendered with glamour unless raw is set or out is not a terminal.
func RunExplain(out io.Writer, planPath string, raw bool) error {
	p, trace, err := loadAndReplay(planPath)
	if err != nil {
		return err
	}

	md := plan.Markdown(p, trace)
	if raw || !isTerminal(out) {
		_, err = io.WriteString(out, md)
		return err
	}

	render, err := tui.NewRenderer(0)
	if err != nil {
		return err
	}
	rendered, err := render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// RunGraph prints the Mermaid diagram of a plan. With overlay set, callbacks
// that never fired during a replay are styled as unreached.
func RunGraph(out io.Writer, planPath string, overlay bool) error {
	p, trace, err := loadAndReplay(planPath)
	if err != nil {
		return err
	}

	var ov *graph.GraphOverlay
	if overlay {
		ov = &graph.GraphOverlay{Fired: firedCallbacks(trace)}
	}
	_, err = io.WriteString(out, graph.GenerateMermaid(p, ov))
	return err
}

func loadAndReplay(planPath string) (*plan.Plan, plan.Trace, error) {
	p, err := plan.Load(planPath)
	if err != nil {
		return nil, nil, err
	}
	trace, err := plan.Replay(p)
	if err != nil {
		return nil, nil, fmt.Errorf("replay %s: %w", planPath, err)
	}
	return p, trace, nil
}

func firedCallbacks(trace plan.Trace) []string {
	seen := make(map[string]bool)
	var fired []string
	for _, s := range trace {
		if s.Callback == plan.RunCallbackName || seen[s.Callback] {
			continue
		}
		seen[s.Callback] = true
		fired = append(fired, s.Callback)
	}
	return fired
}
