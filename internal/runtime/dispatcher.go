package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aretw0/testhooks/internal/logging"
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/aretw0/testhooks/pkg/labels"
	"github.com/aretw0/testhooks/pkg/ports"
)

var _ ports.Listener = (*Dispatcher)(nil)

// Dispatcher turns lifecycle events into callback invocations.
//
// Per case, every label callback reachable from the case's labels starts once,
// in label-then-registration order, and ends in reverse order when the case
// ends. Shared callbacks start once per run and end at run end.
//
// A Dispatcher is driven from a single goroutine.
type Dispatcher struct {
	store    ports.CallbackStore
	logger   *slog.Logger
	observer domain.Observer
	progress io.Writer
	verbose  atomic.Bool
	now      func() time.Time

	state         State
	current       string
	currentLabels []string

	invoked []domain.Invocation // started for the active case
	shared  []domain.Invocation // shared callbacks started during the run
}

// NewDispatcher creates a dispatcher reading callbacks from store.
func NewDispatcher(store ports.CallbackStore, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:    store,
		logger:   logging.NewNop(),
		progress: os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetVerbose toggles progress lines.
func (d *Dispatcher) SetVerbose(v bool) { d.verbose.Store(v) }

// Verbose reports whether progress lines are printed.
func (d *Dispatcher) Verbose() bool { return d.verbose.Load() }

// State returns the current lifecycle state.
func (d *Dispatcher) State() State { return d.state }

// PendingShared returns the shared callbacks still owing their end call.
func (d *Dispatcher) PendingShared() []domain.Invocation {
	return slices.Clone(d.shared)
}

// RunStarting fires the run callback with started=true.
func (d *Dispatcher) RunStarting() {
	if d.state == StateRunActive || d.state == StateCaseActive {
		panic(fmt.Errorf("%w: run starting while %s", domain.ErrLifecycleOrder, d.state))
	}
	d.state = StateRunActive
	d.logger.Debug("run starting")
	d.fireRun(true)
}

// RunEnded fires the run callback with started=false, ends every pending
// shared callback in reverse start order and resets the store.
func (d *Dispatcher) RunEnded() {
	if d.state == StateCaseActive {
		panic(fmt.Errorf("%w: run ended while case %q is active", domain.ErrLifecycleOrder, d.current))
	}
	d.logger.Debug("run ended", "pending_shared", len(d.shared))

	d.fireRun(false)

	for len(d.shared) > 0 {
		last := len(d.shared) - 1
		inv := d.shared[last]
		d.shared = d.shared[:last]
		d.fire(inv, d.store.Get(inv.Handle), false, "")
	}

	d.store.Reset()
	d.state = StateEnded
}

// CaseStarting starts the callbacks reachable from the case's labels.
func (d *Dispatcher) CaseStarting(name string, rawLabels []string) {
	if d.state == StateCaseActive {
		panic(fmt.Errorf("%w: case %q starting while case %q is active", domain.ErrLifecycleOrder, name, d.current))
	}
	d.state = StateCaseActive
	d.current = name
	d.currentLabels = rawLabels
	d.invoked = d.invoked[:0]

	d.printProgress(name, rawLabels, "starting...")
	d.logger.Debug("case starting", "case", name, "labels", rawLabels)

	for _, raw := range rawLabels {
		for _, label := range labels.Split(raw) {
			for _, h := range d.store.Lookup(label) {
				rec := d.store.Get(h)
				seen := &d.invoked
				if rec.Shared {
					seen = &d.shared
				}
				if containsHandle(*seen, h) {
					continue
				}

				inv := domain.Invocation{Handle: h, Label: label}
				d.fire(inv, rec, true, name)
				*seen = append(*seen, inv)
			}
		}
	}
}

// CaseEnded ends the case's non-shared callbacks in reverse start order.
// It panics if name does not match the active case.
func (d *Dispatcher) CaseEnded(name string) {
	if d.state != StateCaseActive || d.current != name {
		panic(fmt.Errorf("%w: got %q, active case %q", domain.ErrCasePairing, name, d.current))
	}

	d.printProgress(name, d.currentLabels, "ended!")
	d.logger.Debug("case ended", "case", name, "invoked", len(d.invoked))

	for len(d.invoked) > 0 {
		last := len(d.invoked) - 1
		inv := d.invoked[last]
		d.invoked = d.invoked[:last]
		d.fire(inv, d.store.Get(inv.Handle), false, name)
	}

	d.current = ""
	d.currentLabels = nil
	d.state = StateRunActive
}

func (d *Dispatcher) fireRun(started bool) {
	cb := d.store.Run()
	if cb != nil {
		cb(started)
	}
	if d.observer.OnRun != nil {
		d.observer.OnRun(&domain.RunEvent{
			Timestamp:   d.now(),
			Phase:       domain.PhaseOf(started),
			HasCallback: cb != nil,
		})
	}
}

func (d *Dispatcher) fire(inv domain.Invocation, rec domain.Record, started bool, caseName string) {
	d.logger.Debug("invoking callback",
		"handle", int(inv.Handle),
		"label", inv.Label,
		"shared", rec.Shared,
		"phase", domain.PhaseOf(started),
	)

	begin := d.now()
	rec.Body(started, inv.Label)

	if d.observer.OnCallback != nil {
		d.observer.OnCallback(&domain.CallbackEvent{
			Timestamp: begin,
			Phase:     domain.PhaseOf(started),
			Handle:    inv.Handle,
			Label:     inv.Label,
			Case:      caseName,
			Shared:    rec.Shared,
			Duration:  d.now().Sub(begin),
		})
	}
}

func (d *Dispatcher) printProgress(name string, rawLabels []string, what string) {
	if !d.Verbose() {
		return
	}
	fmt.Fprintf(d.progress, "case %q [%s] %s\n", name, strings.Join(rawLabels, ", "), what)
}

func containsHandle(invs []domain.Invocation, h domain.Handle) bool {
	return slices.ContainsFunc(invs, func(inv domain.Invocation) bool {
		return inv.Handle == h
	})
}
