// Package metrics provides Prometheus instrumentation for goadmit components.
//
// This package enables monitoring and observability for goadmit's admission
// limiting and once-per-key logging components through Prometheus metrics.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Admission limiter with metrics
//	limiter := admission.NewWithMetrics(4, "render_limiter")
//
//	// Once logger with metrics
//	logger := oncelog.NewWithMetrics("render_warnings")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
// ## Admission Limiter Metrics
//
//   - goadmit_admission_granted_total: Total number of slots granted
//   - goadmit_admission_released_total: Total number of slots released
//   - goadmit_admission_wait_duration_seconds: Time spent waiting for a slot
//   - goadmit_admission_active: Number of slots currently held
//   - goadmit_admission_waiting: Number of acquisitions queued for a slot
//
// ## Once Logger Metrics
//
//   - goadmit_oncelog_emitted_total: Messages emitted (first sighting of a key)
//   - goadmit_oncelog_suppressed_total: Messages suppressed as duplicates
//   - goadmit_oncelog_keys: Number of distinct keys seen
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - limiter_name: User-provided name for the limiter instance
//   - logger_name: User-provided name for the logger instance
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	limiter := admission.NewWithConfigAndMetrics(4, "render_limiter", config)
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	limiter := admission.NewWithMetrics(4, "render_limiter")
//	limiter.DisableMetrics()            // Stop collecting metrics
//	limiter.EnableMetrics(config)       // Re-enable with new config
//	enabled := limiter.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
