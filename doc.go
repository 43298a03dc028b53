/*
Package goadmit provides small in-process primitives for bounding concurrent
work: an admission limiter with strict-FIFO queueing and a once-per-key
diagnostic logger.

Admission Limiting (pkg/admission):
  - admission: Cap concurrent operations, serve waiters in arrival order

Diagnostics (pkg/oncelog):
  - oncelog: Emit each distinct message key at most once per process lifetime

Instrumentation (pkg/metrics):
  - metrics: Prometheus registry and config shared by the components above

Example usage:

	import (
		"github.com/vnykmshr/goadmit/pkg/admission"
		"github.com/vnykmshr/goadmit/pkg/oncelog"
	)

	limiter := admission.New(4) // at most 4 concurrent renders
	warnings := oncelog.New()

	release := limiter.Acquire()
	defer release()

	if err := render(block); err != nil {
		warnings.Log("render-failed", "diagram render failed:", err)
	}
*/
package goadmit
