/*
Package admission provides a bounded admission limiter for Go applications.

An admission limiter caps how many operations may run simultaneously and
serves pending acquisitions in strict arrival order once a slot frees up. It
protects a host application from launching unbounded numbers of concurrent
rendering or compute tasks.

Basic usage:

	limiter := admission.New(4) // Allow 4 concurrent operations

	release := limiter.Acquire() // Blocks until a slot is granted
	defer release()
	// Do work

Key Features:

The admission limiter provides:
  - Blocking acquisition with strict FIFO service order (Acquire)
  - Non-blocking acquisition (TryAcquire)
  - One-shot, idempotent release tokens
  - Direct hand-off: a freed slot moves to the oldest waiter without an
    observable idle state
  - Advisory state inspection (Active, Waiting, Capacity)
  - Bounded waiter storage under sustained churn

Capacity Normalization:

New never rejects its input. NaN, infinities, and hints below one normalize
to a capacity of one; fractional hints are truncated toward zero:

	admission.New(0)            // capacity 1
	admission.New(-5)           // capacity 1
	admission.New(3.7)          // capacity 3
	admission.New(math.Inf(1))  // capacity 1

Use NewStrict when a malformed capacity should surface as an error instead:

	limiter, err := admission.NewStrict(workers)
	if err != nil {
		log.Fatal(err)
	}

Render Pipeline Pattern:

	limiter := admission.New(maxConcurrentRenders)

	var wg sync.WaitGroup
	for _, block := range blocks {
		wg.Add(1)
		go func(b Block) {
			defer wg.Done()

			release := limiter.Acquire()
			defer release()

			renderBlock(b)
		}(block)
	}
	wg.Wait()

Caller Contract:

Call Acquire before starting bounded work and invoke the returned ReleaseFunc
exactly once when that work finishes, on every exit path including failure.
The limiter provides no automatic reclamation if a caller forgets: an
unreleased slot is lost for the limiter's lifetime and other callers starve.
The token itself is idempotent, so a duplicate invocation is a harmless
no-op rather than an over-admission hazard.

There is no cancellation or timeout for a queued Acquire; once enqueued, a
caller is served only by eventually receiving a slot.

Fairness:

Service order is strictly FIFO by arrival at the slow path. No acquisition
jumps ahead regardless of how many times a slot frees and refills.

Thread Safety:

All operations are safe for concurrent use. Internal state is guarded by a
mutex; Active and Waiting are advisory reads that may be stale the instant
they return.

Metrics:

Use NewWithMetrics for Prometheus instrumentation of grants, releases, wait
durations, and queue depth:

	limiter := admission.NewWithMetrics(4, "render_limiter")
*/
package admission
