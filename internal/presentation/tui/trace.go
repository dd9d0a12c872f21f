package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintTrace writes one line per step, grouped under the case that was active.
// Starts are green, ends are red, shared callbacks are marked in magenta.
// Pass termenv.Ascii to disable colours.
func PrintTrace(w io.Writer, trace plan.Trace, p termenv.Profile) {
	start := p.Color("#22c55e")
	end := p.Color("#ef4444")
	shared := p.Color("#c084fc")
	dim := p.Color("#9ca3af")

	current := "\x00"
	for _, s := range trace {
		if s.Case != current {
			current = s.Case
			header := "run"
			if s.Case != "" {
				header = "case " + s.Case
			}
			fmt.Fprintln(w, p.String(header).Bold().Foreground(dim))
		}

		line := p.String(s.String())
		if s.Phase == domain.PhaseStart {
			line = line.Foreground(start)
		} else {
			line = line.Foreground(end)
		}

		if s.Shared {
			fmt.Fprintf(w, "  %s %s\n", line, p.String("(shared)").Foreground(shared))
		} else {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}
