// Package integration contains integration tests that verify cross-package functionality.
// These tests ensure that different components work together correctly in realistic scenarios.
package integration

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/goadmit/internal/testutil"
	"github.com/vnykmshr/goadmit/pkg/admission"
	"github.com/vnykmshr/goadmit/pkg/oncelog"
)

// TestBoundedRenderingWithWarnings drives a simulated render pipeline through
// the admission limiter while emitting deduplicated warnings, the way a host
// plugin would use the two components together.
func TestBoundedRenderingWithWarnings(t *testing.T) {
	const capacity = 4
	const numJobs = 100

	limiter := admission.New(capacity)
	out := testutil.NewMockWriter()
	warnings := oncelog.NewWithConfig(oncelog.Config{Output: out})

	var inflight atomic.Int32
	var overAdmissions atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numJobs; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			release := limiter.Acquire()
			defer release()

			if cur := inflight.Add(1); cur > capacity {
				overAdmissions.Add(1)
			}
			defer inflight.Add(-1)

			// Simulate render work that occasionally warns
			time.Sleep(time.Millisecond)
			if id%7 == 0 {
				warnings.Log("slow-render", "render exceeded soft deadline")
			}
		}(i)
	}
	wg.Wait()

	if n := overAdmissions.Load(); n > 0 {
		t.Errorf("%d jobs observed more than %d concurrent holders", n, capacity)
	}
	testutil.AssertEqual(t, limiter.Active(), 0)
	testutil.AssertEqual(t, limiter.Waiting(), 0)

	// The warning fired on many jobs but must appear exactly once.
	testutil.AssertEqual(t, warnings.Count(), 1)
	if got := strings.Count(out.String(), "render exceeded soft deadline"); got != 1 {
		t.Errorf("warning emitted %d times, want 1", got)
	}
}

// TestGrantOrderUnderSaturation verifies strict FIFO service while the
// limiter stays saturated and slots are released one at a time.
func TestGrantOrderUnderSaturation(t *testing.T) {
	limiter := admission.New(1)

	holder := limiter.Acquire()

	const numWaiters = 10
	order := make(chan int, numWaiters)

	for i := 1; i <= numWaiters; i++ {
		id := i
		go func() {
			release := limiter.Acquire()
			order <- id
			release()
		}()

		// Enqueue one waiter at a time so arrival order is deterministic.
		deadline := time.Now().Add(time.Second)
		for limiter.Waiting() != i {
			if time.Now().After(deadline) {
				t.Fatalf("waiter %d never enqueued", i)
			}
			time.Sleep(time.Millisecond)
		}
	}

	holder()

	for want := 1; want <= numWaiters; want++ {
		select {
		case got := <-order:
			testutil.AssertEqual(t, got, want)
		case <-time.After(time.Second):
			t.Fatalf("waiter %d was never granted", want)
		}
	}
}
