package plan

import (
	"fmt"
	"strings"

	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/aretw0/testhooks/pkg/labels"
)

// Markdown produces a human readable report of a plan and its replay trace.
func Markdown(p *Plan, trace Trace) string {
	var sb strings.Builder

	sb.WriteString("# Hook plan\n\n")
	sb.WriteString("| Callback | Labels | Scope |\n")
	sb.WriteString("|---|---|---|\n")
	for _, cb := range p.Callbacks {
		scope := domain.ScopeCase
		if cb.Shared {
			scope = domain.ScopeShared
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", cb.Name, strings.Join(labels.Split(cb.Labels), ", "), scope)
	}

	sb.WriteString("\n## Run start\n\n")
	writeSteps(&sb, runSteps(trace, domain.PhaseStart))

	for _, c := range p.Cases {
		fmt.Fprintf(&sb, "\n## %s\n\n", c.Name)
		fmt.Fprintf(&sb, "Labels: `%s`\n\n", strings.Join(c.Labels, "`, `"))
		writeSteps(&sb, trace.ForCase(c.Name))
	}

	sb.WriteString("\n## Run end\n\n")
	writeSteps(&sb, runSteps(trace, domain.PhaseEnd))

	return sb.String()
}

// runSteps returns the steps outside any case for the given phase.
func runSteps(trace Trace, phase domain.Phase) Trace {
	var out Trace
	for _, s := range trace {
		if s.Case == "" && s.Phase == phase {
			out = append(out, s)
		}
	}
	return out
}

func writeSteps(sb *strings.Builder, steps Trace) {
	if len(steps) == 0 {
		sb.WriteString("_no callbacks_\n")
		return
	}
	for _, s := range steps {
		fmt.Fprintf(sb, "1. `%s` %s", s.Callback, s.Phase)
		if s.Label != "" {
			fmt.Fprintf(sb, " via `%s`", s.Label)
		}
		if s.Shared {
			sb.WriteString(" (shared)")
		}
		sb.WriteString("\n")
	}
}
