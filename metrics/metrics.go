// Package metrics records cipher operations as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels.
const (
	OpEncode = "encode"
	OpDecode = "decode"
)

// Result labels.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Recorder holds the collectors for cipher operations.
type Recorder struct {
	operations *prometheus.CounterVec
	textRunes  *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vigenere_operations_total",
				Help: "Total number of cipher operations by result",
			},
			[]string{"operation", "result"},
		),
		textRunes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vigenere_text_runes",
				Help:    "Length in symbols of texts passed to the cipher",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(r.operations, r.textRunes)
	return r
}

// Observe records one operation over a text of n symbols.
func (r *Recorder) Observe(operation string, n int, err error) {
	result := ResultOK
	if err != nil {
		result = ResultRejected
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.textRunes.WithLabelValues(operation).Observe(float64(n))
}
