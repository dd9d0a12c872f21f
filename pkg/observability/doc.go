/*
Package observability exposes dispatcher activity as Prometheus metrics.

Metrics is fed through domain.Observer hooks, so it can be combined with any
other observer:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := testhooks.New(testhooks.WithObserver(m.Observer()))
*/
package observability
