package admission_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/vnykmshr/goadmit/pkg/admission"
)

// Example demonstrates basic usage of the admission limiter
func Example() {
	// Create a limiter that allows 3 concurrent operations
	limiter := admission.New(3)

	release := limiter.Acquire()
	fmt.Println("Operation admitted")
	// Do work...
	release() // Don't forget to release!

	// Output: Operation admitted
}

// Example_renderPipeline demonstrates bounding concurrent render jobs
func Example_renderPipeline() {
	// Allow at most 2 renders at a time
	limiter := admission.New(2)

	blocks := []string{"diagram1", "diagram2", "diagram3", "diagram4", "diagram5"}
	var wg sync.WaitGroup

	for _, block := range blocks {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			// Blocks until a slot frees up, served in arrival order
			release := limiter.Acquire()
			defer release()

			// Simulate render work
			time.Sleep(10 * time.Millisecond)
		}(block)
	}

	wg.Wait()
	fmt.Println("All renders completed")

	// Output: All renders completed
}

// Example_tryAcquire demonstrates non-blocking admission
func Example_tryAcquire() {
	limiter := admission.New(1)

	r1, ok := limiter.TryAcquire()
	fmt.Printf("First: admitted=%v\n", ok)

	_, ok = limiter.TryAcquire()
	fmt.Printf("Second: admitted=%v\n", ok)

	r1()

	_, ok = limiter.TryAcquire()
	fmt.Printf("After release: admitted=%v\n", ok)

	// Output:
	// First: admitted=true
	// Second: admitted=false
	// After release: admitted=true
}

// Example_normalization demonstrates capacity hint normalization
func Example_normalization() {
	fmt.Printf("hint 0 -> capacity %d\n", admission.New(0).Capacity())
	fmt.Printf("hint -5 -> capacity %d\n", admission.New(-5).Capacity())
	fmt.Printf("hint 3.7 -> capacity %d\n", admission.New(3.7).Capacity())

	// Output:
	// hint 0 -> capacity 1
	// hint -5 -> capacity 1
	// hint 3.7 -> capacity 3
}

// Example_stateInspection demonstrates the advisory readouts
func Example_stateInspection() {
	limiter := admission.New(3)

	r1 := limiter.Acquire()
	r2 := limiter.Acquire()

	fmt.Printf("capacity=%d active=%d waiting=%d\n",
		limiter.Capacity(), limiter.Active(), limiter.Waiting())

	r1()

	fmt.Printf("capacity=%d active=%d waiting=%d\n",
		limiter.Capacity(), limiter.Active(), limiter.Waiting())

	r2()

	// Output:
	// capacity=3 active=2 waiting=0
	// capacity=3 active=1 waiting=0
}

// Example_strictConstruction demonstrates the validating constructor
func Example_strictConstruction() {
	_, err := admission.NewStrict(0)
	fmt.Println(err)

	limiter, err := admission.NewStrict(4)
	if err != nil {
		panic(err)
	}
	fmt.Printf("capacity=%d\n", limiter.Capacity())

	// Output:
	// admission: invalid capacity=0 (must be positive) - value must be greater than 0
	// capacity=4
}
