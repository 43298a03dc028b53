package oncelog

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/goadmit/pkg/metrics"
)

// MetricsLogger wraps a Logger with Prometheus metrics collection.
type MetricsLogger struct {
	logger   Logger
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new once logger with metrics enabled.
func NewWithMetrics(name string) Logger {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{}, name, config)
}

// NewWithConfigAndMetrics creates a new once logger with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Logger {
	baseLogger := NewWithConfig(config)

	if !metricsConfig.Enabled {
		return baseLogger
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLogger{
		logger:   baseLogger,
		name:     name,
		registry: registry,
		enabled:  true,
	}

	ml.updateMetrics()

	return ml
}

// updateMetrics updates the current state metrics.
func (ml *MetricsLogger) updateMetrics() {
	if !ml.enabled {
		return
	}

	ml.registry.OnceLogKeys.WithLabelValues(ml.name).Set(float64(ml.logger.Count()))
}

// Log emits message and details once per key, counting emissions and
// suppressed duplicates. The counts are advisory under concurrent callers.
func (ml *MetricsLogger) Log(key, message string, details ...interface{}) {
	seenBefore := ml.logger.Seen(key)

	ml.logger.Log(key, message, details...)

	if ml.enabled {
		if seenBefore {
			ml.registry.OnceLogSuppressed.WithLabelValues(ml.name).Inc()
		} else {
			ml.registry.OnceLogEmitted.WithLabelValues(ml.name).Inc()
		}
		ml.updateMetrics()
	}
}

// Seen reports whether key has already been logged.
func (ml *MetricsLogger) Seen(key string) bool {
	return ml.logger.Seen(key)
}

// Count returns the number of distinct keys seen so far.
func (ml *MetricsLogger) Count() int {
	count := ml.logger.Count()

	if ml.enabled {
		ml.registry.OnceLogKeys.WithLabelValues(ml.name).Set(float64(count))
	}

	return count
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLogger) EnableMetrics(config metrics.Config) error {
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
func (ml *MetricsLogger) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLogger) MetricsEnabled() bool {
	return ml.enabled
}
