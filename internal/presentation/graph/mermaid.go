package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/pkg/labels"
)

// GraphOverlay marks callbacks that fired during a replay.
type GraphOverlay struct {
	Fired []string
}

// GenerateMermaid produces a Mermaid flowchart linking cases to labels and
// labels to callbacks. Shapes:
// - Case: [Rectangle]
// - Label: {{Hexagon}}
// - Shared callback: [[Subroutine]]
// - Per-case callback: ([Stadium])
// Callbacks absent from overlay.Fired are styled as unreached.
func GenerateMermaid(p *plan.Plan, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	declared := make(map[string]bool)
	label := func(l string) string {
		id := "label_" + sanitizeMermaidID(l)
		if !declared[id] {
			declared[id] = true
			sb.WriteString(fmt.Sprintf("    %s{{\"%s\"}}\n", id, escape(l)))
		}
		return id
	}

	for _, cb := range p.Callbacks {
		id := "cb_" + sanitizeMermaidID(cb.Name)
		opener, closer := "([", "])"
		if cb.Shared {
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escape(cb.Name), closer))

		for _, l := range labels.Split(cb.Labels) {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", label(l), id))
		}
	}

	for _, c := range p.Cases {
		id := "case_" + sanitizeMermaidID(c.Name)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escape(c.Name)))

		linked := make(map[string]bool)
		for _, raw := range c.Labels {
			for _, l := range labels.Split(raw) {
				target := label(l)
				if linked[target] {
					continue
				}
				linked[target] = true
				sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", id, target))
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef fired fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef unreached fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")

		fired := make(map[string]bool)
		for _, name := range overlay.Fired {
			fired[name] = true
		}
		for _, cb := range p.Callbacks {
			class := "unreached"
			if fired[cb.Name] {
				class = "fired"
			}
			sb.WriteString(fmt.Sprintf("    class cb_%s %s;\n", sanitizeMermaidID(cb.Name), class))
		}
	}

	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(
		".", "_",
		"-", "_",
		"/", "_",
		"\\", "_",
		" ", "_",
		":", "_",
	).Replace(id)
}
