package testhooks

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/aretw0/testhooks/internal/logging"
	"github.com/aretw0/testhooks/internal/runtime"
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/aretw0/testhooks/pkg/ports"
	"github.com/aretw0/testhooks/pkg/registry"
)

// EnvVerbose seeds the verbose flag when set to a value strconv.ParseBool accepts.
const EnvVerbose = "TESTHOOKS_VERBOSE"

// Hooks owns the callback store and the dispatcher of one test binary.
type Hooks struct {
	store      ports.CallbackStore
	dispatcher *runtime.Dispatcher
	observer   domain.Observer
	logger     *slog.Logger
	progress   io.Writer
	verbose    bool
}

// Option defines a functional option for configuring Hooks.
type Option func(*Hooks)

// WithLogger sets a structured logger for dispatcher tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hooks) {
		h.logger = logger
	}
}

// WithObserver registers observability hooks (see package observability).
func WithObserver(obs domain.Observer) Option {
	return func(h *Hooks) {
		h.observer = obs
	}
}

// WithVerbose enables progress lines, overriding TESTHOOKS_VERBOSE.
func WithVerbose(verbose bool) Option {
	return func(h *Hooks) {
		h.verbose = verbose
	}
}

// WithProgressWriter sets the destination of progress lines (default: Stdout).
func WithProgressWriter(w io.Writer) Option {
	return func(h *Hooks) {
		h.progress = w
	}
}

// WithStore replaces the default in-memory registry.
func WithStore(store ports.CallbackStore) Option {
	return func(h *Hooks) {
		h.store = store
	}
}

// New creates Hooks with an empty registry.
func New(opts ...Option) *Hooks {
	h := &Hooks{
		verbose: verboseFromEnv(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.store == nil {
		h.store = registry.NewRegistry()
	}
	if h.logger == nil {
		h.logger = logging.NewNop()
	}

	h.dispatcher = runtime.NewDispatcher(h.store,
		runtime.WithLogger(h.logger),
		runtime.WithObserver(h.observer),
		runtime.WithProgressWriter(h.progress),
		runtime.WithVerbose(h.verbose),
	)
	return h
}

// RegisterRun registers the callback fired when the run starts and ends.
// It returns domain.ErrDuplicateRegistration if one is already registered.
func (h *Hooks) RegisterRun(body func(started bool)) error {
	return h.store.RegisterRun(body)
}

// MustRegisterRun is like RegisterRun but panics on error.
func (h *Hooks) MustRegisterRun(body func(started bool)) {
	if err := h.RegisterRun(body); err != nil {
		panic(err)
	}
}

// RegisterLabel registers body for every label in expr.
// Shared callbacks start once per run and end when the run ends.
func (h *Hooks) RegisterLabel(expr string, shared bool, body func(started bool, label string)) (domain.Handle, error) {
	handle, err := h.store.RegisterLabel(expr, body, shared)
	if err != nil {
		return 0, err
	}
	h.logger.Debug("label callback registered", "expr", expr, "shared", shared, "handle", int(handle))
	return handle, nil
}

// MustRegisterLabel is like RegisterLabel but panics on error.
func (h *Hooks) MustRegisterLabel(expr string, shared bool, body func(started bool, label string)) domain.Handle {
	handle, err := h.RegisterLabel(expr, shared, body)
	if err != nil {
		panic(err)
	}
	return handle
}

// SetVerbose toggles progress lines.
func (h *Hooks) SetVerbose(v bool) { h.dispatcher.SetVerbose(v) }

// Verbose reports whether progress lines are printed.
func (h *Hooks) Verbose() bool { return h.dispatcher.Verbose() }

// Listener returns the dispatcher for host engines other than package testing.
func (h *Hooks) Listener() ports.Listener { return h.dispatcher }

func verboseFromEnv() bool {
	val := os.Getenv(EnvVerbose)
	if val == "" {
		return false
	}
	v, err := strconv.ParseBool(val)
	if err != nil {
		fmt.Fprintf(os.Stderr, "testhooks: ignoring %s=%q: %v\n", EnvVerbose, val, err)
		return false
	}
	return v
}
