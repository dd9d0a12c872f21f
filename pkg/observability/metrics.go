package observability

import (
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "testhooks"

// Metrics records callback invocations.
type Metrics struct {
	Invocations   *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	Runs          *prometheus.CounterVec
	PendingShared prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "callback_invocations_total",
				Help:      "Total number of label callback invocations.",
			},
			[]string{"label", "phase", "scope"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "callback_duration_seconds",
				Help:      "Time spent inside label callbacks.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"label", "phase"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "run_events_total",
				Help:      "Run start and end events.",
			},
			[]string{"phase"},
		),
		PendingShared: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "shared_callbacks_pending",
				Help:      "Shared callbacks started and waiting for run end.",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Invocations, m.Duration, m.Runs, m.PendingShared)
	}
	return m
}

// Observer returns hooks that update the metrics.
func (m *Metrics) Observer() domain.Observer {
	return domain.Observer{
		OnRun:      m.observeRun,
		OnCallback: m.observeCallback,
	}
}

func (m *Metrics) observeRun(e *domain.RunEvent) {
	m.Runs.WithLabelValues(string(e.Phase)).Inc()
}

func (m *Metrics) observeCallback(e *domain.CallbackEvent) {
	scope := domain.ScopeCase
	if e.Shared {
		scope = domain.ScopeShared
		if e.Phase == domain.PhaseStart {
			m.PendingShared.Inc()
		} else {
			m.PendingShared.Dec()
		}
	}

	m.Invocations.WithLabelValues(e.Label, string(e.Phase), scope).Inc()
	m.Duration.WithLabelValues(e.Label, string(e.Phase)).Observe(e.Duration.Seconds())
}

// Combine merges observers; each hook calls every non-nil hook in order.
func Combine(observers ...domain.Observer) domain.Observer {
	var out domain.Observer
	for _, o := range observers {
		if o.OnRun != nil {
			prev, next := out.OnRun, o.OnRun
			out.OnRun = func(e *domain.RunEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
		if o.OnCallback != nil {
			prev, next := out.OnCallback, o.OnCallback
			out.OnCallback = func(e *domain.CallbackEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
	}
	return out
}
