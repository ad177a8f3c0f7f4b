// Package metrics exposes the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_redirects_total",
		Help: "Total slug resolution attempts.",
	}, []string{"status"})

	RedirectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkpulse_redirect_duration_seconds",
		Help:    "Time from request receipt to redirect response.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})

	ClicksRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkpulse_clicks_recorded_total",
		Help: "Click events successfully written to the database.",
	})

	ClickRecordErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkpulse_click_record_errors_total",
		Help: "Click event insert failures.",
	})

	LinksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkpulse_links_created_total",
		Help: "Links created since process start.",
	})
)
