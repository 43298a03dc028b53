// Package metrics provides Prometheus instrumentation for goadmit components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goadmit components.
type Registry struct {
	// Admission Limiter Metrics
	AdmissionGranted  *prometheus.CounterVec
	AdmissionReleased *prometheus.CounterVec
	AdmissionWaitTime *prometheus.HistogramVec
	AdmissionActive   *prometheus.GaugeVec
	AdmissionWaiting  *prometheus.GaugeVec

	// Once Logger Metrics
	OnceLogEmitted    *prometheus.CounterVec
	OnceLogSuppressed *prometheus.CounterVec
	OnceLogKeys       *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by goadmit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		AdmissionGranted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "granted_total",
				Help:      "Total number of slots granted",
			},
			[]string{"limiter_name"},
		),

		AdmissionReleased: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "released_total",
				Help:      "Total number of slots released",
			},
			[]string{"limiter_name"},
		),

		AdmissionWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "wait_duration_seconds",
				Help:      "Time spent waiting for a slot",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_name"},
		),

		AdmissionActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "active",
				Help:      "Number of slots currently held",
			},
			[]string{"limiter_name"},
		),

		AdmissionWaiting: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goadmit",
				Subsystem: "admission",
				Name:      "waiting",
				Help:      "Number of acquisitions queued for a slot",
			},
			[]string{"limiter_name"},
		),

		OnceLogEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "oncelog",
				Name:      "emitted_total",
				Help:      "Total number of messages emitted (first sighting of a key)",
			},
			[]string{"logger_name"},
		),

		OnceLogSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goadmit",
				Subsystem: "oncelog",
				Name:      "suppressed_total",
				Help:      "Total number of messages suppressed as duplicates",
			},
			[]string{"logger_name"},
		),

		OnceLogKeys: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goadmit",
				Subsystem: "oncelog",
				Name:      "keys",
				Help:      "Number of distinct keys seen by the logger",
			},
			[]string{"logger_name"},
		),
	}
}
