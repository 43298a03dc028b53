package admission

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goadmit/pkg/metrics"
)

// MetricsLimiter wraps a Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new admission limiter with metrics enabled.
func NewWithMetrics(capacityHint float64, name string) Limiter {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(capacityHint, name, config)
}

// NewWithConfigAndMetrics creates a new admission limiter with custom metrics config.
func NewWithConfigAndMetrics(capacityHint float64, name string, metricsConfig metrics.Config) Limiter {
	baseLimiter := New(capacityHint)

	if !metricsConfig.Enabled {
		return baseLimiter
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLimiter{
		limiter:  baseLimiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}

	// Initialize metrics
	ml.updateMetrics()

	return ml
}

// updateMetrics updates the current state metrics.
func (ml *MetricsLimiter) updateMetrics() {
	if !ml.enabled {
		return
	}

	ml.registry.AdmissionActive.WithLabelValues(ml.name).Set(float64(ml.limiter.Active()))
	ml.registry.AdmissionWaiting.WithLabelValues(ml.name).Set(float64(ml.limiter.Waiting()))
}

// Acquire requests one slot, blocking until it is granted.
func (ml *MetricsLimiter) Acquire() ReleaseFunc {
	start := time.Now()

	if ml.enabled {
		ml.registry.AdmissionWaiting.WithLabelValues(ml.name).Inc()
	}

	release := ml.limiter.Acquire()

	if ml.enabled {
		ml.registry.AdmissionWaiting.WithLabelValues(ml.name).Dec()

		duration := time.Since(start)
		ml.registry.AdmissionWaitTime.WithLabelValues(ml.name).Observe(duration.Seconds())
		ml.registry.AdmissionGranted.WithLabelValues(ml.name).Inc()

		ml.updateMetrics()
	}

	return ml.wrapRelease(release)
}

// TryAcquire requests one slot without blocking.
func (ml *MetricsLimiter) TryAcquire() (ReleaseFunc, bool) {
	release, ok := ml.limiter.TryAcquire()

	if ml.enabled {
		if ok {
			ml.registry.AdmissionGranted.WithLabelValues(ml.name).Inc()
		}
		ml.updateMetrics()
	}

	if !ok {
		return nil, false
	}
	return ml.wrapRelease(release), true
}

// wrapRelease instruments the release token, keeping it idempotent so
// duplicate invocations do not inflate the released counter.
func (ml *MetricsLimiter) wrapRelease(release ReleaseFunc) ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(func() {
			release()

			if ml.enabled {
				ml.registry.AdmissionReleased.WithLabelValues(ml.name).Inc()
				ml.updateMetrics()
			}
		})
	}
}

// Active returns the number of slots currently held.
func (ml *MetricsLimiter) Active() int {
	active := ml.limiter.Active()

	if ml.enabled {
		ml.registry.AdmissionActive.WithLabelValues(ml.name).Set(float64(active))
	}

	return active
}

// Waiting returns the number of acquisitions queued for a slot.
func (ml *MetricsLimiter) Waiting() int {
	waiting := ml.limiter.Waiting()

	if ml.enabled {
		ml.registry.AdmissionWaiting.WithLabelValues(ml.name).Set(float64(waiting))
	}

	return waiting
}

// Capacity returns the maximum number of slots.
func (ml *MetricsLimiter) Capacity() int {
	return ml.limiter.Capacity()
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled

	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}

	if ml.enabled {
		ml.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
