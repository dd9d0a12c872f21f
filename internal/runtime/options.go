package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/testhooks/pkg/domain"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithObserver registers observability hooks.
func WithObserver(obs domain.Observer) Option {
	return func(d *Dispatcher) {
		d.observer = obs
	}
}

// WithProgressWriter sets where verbose progress lines go.
func WithProgressWriter(w io.Writer) Option {
	return func(d *Dispatcher) {
		if w != nil {
			d.progress = w
		}
	}
}

// WithVerbose turns progress lines on or off.
func WithVerbose(verbose bool) Option {
	return func(d *Dispatcher) {
		d.verbose.Store(verbose)
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}
