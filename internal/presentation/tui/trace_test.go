package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/internal/presentation/tui"
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrintTrace_Ascii(t *testing.T) {
	trace := plan.Trace{
		{Callback: "run", Phase: domain.PhaseStart},
		{Case: "TestA", Callback: "db", Label: "db", Phase: domain.PhaseStart},
		{Case: "TestA", Callback: "cluster", Label: "db", Phase: domain.PhaseStart, Shared: true},
		{Case: "TestA", Callback: "db", Label: "db", Phase: domain.PhaseEnd},
		{Callback: "run", Phase: domain.PhaseEnd},
		{Callback: "cluster", Label: "db", Phase: domain.PhaseEnd, Shared: true},
	}

	var buf bytes.Buffer
	tui.PrintTrace(&buf, trace, termenv.Ascii)

	assert.Equal(t, "run\n"+
		"  run>>\n"+
		"case TestA\n"+
		"  db>>db\n"+
		"  cluster>>db (shared)\n"+
		"  db<<db\n"+
		"run\n"+
		"  run<<\n"+
		"  cluster<<db (shared)\n", buf.String())
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(60)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	out, err := render("# Hook plan\n\nsome `text`")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	assert.Contains(t, out, "Hook plan")
}
