package admission

import (
	"math"
	"sync"

	"github.com/vnykmshr/goadmit/pkg/common/validation"
)

// Limiter caps how many operations may run simultaneously. Callers acquire a
// slot before starting bounded work and invoke the returned ReleaseFunc when
// the work finishes, on every exit path including failure. Pending
// acquisitions are served strictly in arrival order.
type Limiter interface {
	// Acquire requests one slot, blocking until it is granted. It returns a
	// one-shot release token that must be invoked when the admitted work
	// completes.
	Acquire() ReleaseFunc

	// TryAcquire requests one slot without blocking. It returns the release
	// token and true when a slot was free, or nil and false when the limiter
	// is saturated.
	TryAcquire() (ReleaseFunc, bool)

	// Active returns the number of slots currently held. The value is
	// advisory: it may be stale the instant it is read under concurrent use.
	Active() int

	// Waiting returns the number of acquisitions queued for a slot. Advisory,
	// like Active.
	Waiting() int

	// Capacity returns the maximum number of slots, fixed at construction.
	Capacity() int
}

// ReleaseFunc returns the slot granted by the matching Acquire or TryAcquire.
// Invoking it more than once is a no-op.
type ReleaseFunc func()

// compactAfter is the consumed-prefix length beyond which the waiter queue is
// compacted even while waiters keep arriving.
const compactAfter = 50

// admissionLimiter implements Limiter with a mutex-guarded counter and a
// head-indexed FIFO waiter queue.
type admissionLimiter struct {
	mu       sync.Mutex
	capacity int
	active   int
	waiters  []chan struct{} // pending acquisitions, closed to grant a slot
	head     int             // index of the oldest unserved waiter
}

// New creates a limiter whose capacity is derived from the supplied hint.
// NaN, infinities, and hints below one normalize to a capacity of one; any
// other hint is truncated toward zero. New never fails.
func New(capacityHint float64) Limiter {
	return &admissionLimiter{capacity: normalizeCapacity(capacityHint)}
}

// NewStrict creates a limiter that rejects a non-positive capacity with a
// ValidationError instead of normalizing it. Use this when a malformed
// capacity should surface as a configuration bug.
func NewStrict(capacity int) (Limiter, error) {
	if err := validation.ValidatePositive("admission", "capacity", capacity); err != nil {
		return nil, err
	}
	return &admissionLimiter{capacity: capacity}, nil
}

func normalizeCapacity(hint float64) int {
	if math.IsNaN(hint) || math.IsInf(hint, 0) || hint < 1 {
		return 1
	}
	if hint > math.MaxInt32 {
		// Clamp absurd hints so the float-to-int conversion stays defined.
		return math.MaxInt32
	}
	return int(hint)
}
