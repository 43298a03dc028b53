/*
Package oncelog provides a key-deduplicated diagnostic logger.

A once logger emits each distinct message key at most once per logger
lifetime, keeping repeated diagnostics (a deprecated option, a missing
renderer, a fallback path taken on every call) from flooding the output sink.

Basic usage:

	logger := oncelog.New() // writes to os.Stderr

	logger.Log("missing-theme", "theme not found, using default")
	logger.Log("missing-theme", "theme not found, using default") // silent

Custom sink:

	logger := oncelog.NewWithConfig(oncelog.Config{Output: logFile})

Behavior:

The first Log call for a given key writes the message, followed by any
details, as a single space-separated line. Every later call with the same key
is a silent no-op. Log never fails: write errors are swallowed and a nil
output falls back to os.Stderr.

There is no API to reset or evict a key. The seen-key set grows monotonically
for the lifetime of the logger, so callers using high-cardinality dynamic
keys accumulate unbounded memory; keep keys to a small fixed vocabulary.

Thread Safety:

All methods are safe for concurrent use. The at-most-once guarantee holds
under parallel callers.

Metrics:

Use NewWithMetrics for Prometheus counters of emitted and suppressed
messages:

	logger := oncelog.NewWithMetrics("render_warnings")
*/
package oncelog
