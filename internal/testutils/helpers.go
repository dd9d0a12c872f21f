package testutils

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/aretw0/testhooks/pkg/registry"
	"github.com/stretchr/testify/require"
)

// Recorder collects callback invocations as readable trace lines such as
// "db>>tag1" (start) or "db<<tag1" (end). Run callbacks record "run>>" / "run<<".
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// Label returns a label callback that records under name.
func (r *Recorder) Label(name string) domain.LabelCallback {
	return func(started bool, label string) {
		r.add(fmt.Sprintf("%s%s%s", name, arrow(started), label))
	}
}

// Run returns a run callback that records as "run".
func (r *Recorder) Run() domain.RunCallback {
	return func(started bool) {
		r.add("run" + arrow(started))
	}
}

// Lines returns a copy of the trace.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// Reset clears the trace.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func (r *Recorder) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func arrow(started bool) string {
	if started {
		return ">>"
	}
	return "<<"
}

// Registration describes one label callback for SetupRegistry.
type Registration struct {
	Name   string
	Expr   string
	Shared bool
}

// SetupRegistry builds a registry with a recording run callback and one
// recording label callback per registration. It fails the test immediately on error.
func SetupRegistry(t *testing.T, rec *Recorder, regs ...Registration) *registry.Registry {
	t.Helper()

	reg := registry.NewRegistry()
	require.NoError(t, reg.RegisterRun(rec.Run()), "failed to register run callback")

	for _, r := range regs {
		_, err := reg.RegisterLabel(r.Expr, rec.Label(r.Name), r.Shared)
		require.NoError(t, err, "failed to register %s", r.Name)
	}
	return reg
}
