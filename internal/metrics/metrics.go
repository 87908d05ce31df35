// Package metrics provides Prometheus metrics collection and exposure.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Collector gathers résumé builder metrics. It satisfies session.Recorder.
type Collector struct {
	mutations *prometheus.CounterVec
	renders   *prometheus.CounterVec
	warnings  prometheus.Gauge
	pdfBytes  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_builder_mutations_total",
			Help: "Session mutations by operation and result",
		}, []string{"op", "result"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_builder_renders_total",
			Help: "Renders by output format and result",
		}, []string{"format", "result"}),
		warnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "resume_builder_warnings",
			Help: "Advisory warnings produced by the most recent validation",
		}),
		pdfBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "resume_builder_pdf_bytes",
			Help:    "Size of exported PDFs in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 2, 8),
		}),
	}

	reg.MustRegister(c.mutations, c.renders, c.warnings, c.pdfBytes)

	return c
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// RecordMutation counts one session mutation.
func (c *Collector) RecordMutation(op string, err error) {
	c.mutations.WithLabelValues(op, result(err)).Inc()
}

// RecordRender counts one render in the given format (text, html, pdf).
func (c *Collector) RecordRender(format string, err error) {
	c.renders.WithLabelValues(format, result(err)).Inc()
}

// SetWarnings records the warning count of the latest validation.
func (c *Collector) SetWarnings(n int) {
	c.warnings.Set(float64(n))
}

// ObservePDF records the size of an exported PDF.
func (c *Collector) ObservePDF(size int) {
	c.pdfBytes.Observe(float64(size))
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
