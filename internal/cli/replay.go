package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aretw0/testhooks"
	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/internal/presentation/tui"
	"github.com/aretw0/testhooks/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// ReplayOptions configures RunReplay.
type ReplayOptions struct {
	PlanPath string
	LogLevel string
	Verbose  bool
	Metrics  bool
	NoColor  bool
}

// RunReplay loads a plan, replays it through the dispatcher and prints the
// resulting trace to out.
func RunReplay(out io.Writer, opts ReplayOptions) error {
	p, err := plan.Load(opts.PlanPath)
	if err != nil {
		return err
	}

	logger, err := createLogger(opts.LogLevel)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	trace, err := plan.Replay(p,
		testhooks.WithLogger(logger),
		testhooks.WithVerbose(opts.Verbose),
		testhooks.WithProgressWriter(out),
		testhooks.WithObserver(metrics.Observer()),
	)
	if err != nil {
		return fmt.Errorf("replay %s: %w", opts.PlanPath, err)
	}
	logger.Info("Replay finished", "plan", opts.PlanPath, "steps", len(trace), "cases", len(p.Cases))

	tui.PrintTrace(out, trace, colorProfile(out, opts.NoColor))

	if opts.Metrics {
		families, err := reg.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		printSystemMessage(out, "metrics")
		writeMetrics(out, families)
	}
	return nil
}

// writeMetrics prints counters and gauges as "name{labels} value".
// Histograms are summarised by their sample count.
func writeMetrics(w io.Writer, families []*dto.MetricFamily) {
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), value)
		}
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	slices.Sort(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
