package admission

import (
	"sync"
)

// Acquire requests one slot, blocking until it is granted.
func (al *admissionLimiter) Acquire() ReleaseFunc {
	al.mu.Lock()

	// Fast path: a slot is free.
	if al.active < al.capacity {
		al.active++
		al.mu.Unlock()
		return al.releaseToken()
	}

	// Slow path: queue behind earlier waiters and block until a release
	// hands the slot over.
	ready := make(chan struct{})
	al.waiters = append(al.waiters, ready)
	al.mu.Unlock()

	<-ready
	return al.releaseToken()
}

// TryAcquire requests one slot without blocking.
func (al *admissionLimiter) TryAcquire() (ReleaseFunc, bool) {
	al.mu.Lock()
	defer al.mu.Unlock()

	if al.active < al.capacity {
		al.active++
		return al.releaseToken(), true
	}
	return nil, false
}

// Active returns the number of slots currently held.
func (al *admissionLimiter) Active() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return al.active
}

// Waiting returns the number of acquisitions queued for a slot.
func (al *admissionLimiter) Waiting() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return len(al.waiters) - al.head
}

// Capacity returns the maximum number of slots.
func (al *admissionLimiter) Capacity() int {
	al.mu.Lock()
	defer al.mu.Unlock()
	return al.capacity
}

// releaseToken builds the one-shot guard for a granted slot.
func (al *admissionLimiter) releaseToken() ReleaseFunc {
	var once sync.Once
	return func() {
		once.Do(al.release)
	}
}

// release returns one slot. When a waiter is queued the slot is handed to it
// directly: the active count never dips between the releasing operation
// finishing and the next one starting, and waiters are served strictly in
// arrival order.
func (al *admissionLimiter) release() {
	al.mu.Lock()
	defer al.mu.Unlock()

	if al.head < len(al.waiters) {
		ready := al.waiters[al.head]
		al.waiters[al.head] = nil
		al.head++
		al.maybeCompact()
		close(ready)
		return
	}

	// No waiter: the slot goes idle. The count floors at zero so a caller
	// that over-releases cannot drive it negative.
	if al.active > 0 {
		al.active--
	}
	if al.head > 0 {
		al.waiters = al.waiters[:0]
		al.head = 0
	}
}

// maybeCompact drops the consumed prefix once it exceeds compactAfter entries
// and more than half the queue, bounding waiter storage under sustained
// churn. Caller must hold al.mu.
func (al *admissionLimiter) maybeCompact() {
	if al.head <= compactAfter || al.head <= len(al.waiters)/2 {
		return
	}
	n := copy(al.waiters, al.waiters[al.head:])
	for i := n; i < len(al.waiters); i++ {
		al.waiters[i] = nil
	}
	al.waiters = al.waiters[:n]
	al.head = 0
}
