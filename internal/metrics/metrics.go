// Package metrics exposes Prometheus instrumentation for tensor operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Execution modes recorded in the mode label.
const (
	ModeSequential = "sequential"
	ModeParallel   = "parallel"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ringtensor_ops_total",
		Help: "Total number of tensor operations executed, by operation and execution mode",
	}, []string{"op", "mode"})

	elementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ringtensor_elements_total",
		Help: "Total number of output elements produced, by operation",
	}, []string{"op"})

	einsumIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ringtensor_einsum_iterations",
		Help:    "Number of odometer steps per einsum contraction",
		Buckets: prometheus.ExponentialBuckets(1, 8, 10),
	})
)

// ObserveOp records one execution of op that produced n output elements.
func ObserveOp(op string, parallel bool, n int) {
	mode := ModeSequential
	if parallel {
		mode = ModeParallel
	}
	opsTotal.WithLabelValues(op, mode).Inc()
	elementsTotal.WithLabelValues(op).Add(float64(n))
}

// ObserveEinsum records one contraction and its iteration count.
func ObserveEinsum(iterations int) {
	opsTotal.WithLabelValues("einsum", ModeSequential).Inc()
	einsumIterations.Observe(float64(iterations))
}

// OpCount returns the current value of the op counter; intended for tests.
func OpCount(op, mode string) float64 {
	var m dto.Metric
	if err := opsTotal.WithLabelValues(op, mode).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
