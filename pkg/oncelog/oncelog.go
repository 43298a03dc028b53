package oncelog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger emits each distinct message key at most once for its lifetime.
type Logger interface {
	// Log emits message (and details, if any) to the output sink the first
	// time key is seen. Any subsequent call with the same key is a silent
	// no-op. Log never fails.
	Log(key, message string, details ...interface{})

	// Seen reports whether key has already been logged.
	Seen(key string) bool

	// Count returns the number of distinct keys seen so far.
	Count() int
}

// Config holds configuration options for creating a Logger.
type Config struct {
	// Output is the sink messages are written to. If nil, uses os.Stderr.
	Output io.Writer
}

// onceLogger implements Logger with a mutex-guarded seen-key set.
type onceLogger struct {
	mu   sync.Mutex
	out  io.Writer
	seen map[string]struct{}
}

// New creates a Logger that writes to os.Stderr.
func New() Logger {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a Logger with the given configuration. A nil output
// falls back to os.Stderr; construction never fails.
func NewWithConfig(config Config) Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return &onceLogger{
		out:  out,
		seen: make(map[string]struct{}),
	}
}

// Log emits message and details once per key.
func (ol *onceLogger) Log(key, message string, details ...interface{}) {
	ol.mu.Lock()
	defer ol.mu.Unlock()

	if _, ok := ol.seen[key]; ok {
		return
	}
	ol.seen[key] = struct{}{}

	// Write errors are swallowed: logging must never fail the caller.
	if len(details) == 0 {
		fmt.Fprintln(ol.out, message)
		return
	}
	args := append([]interface{}{message}, details...)
	fmt.Fprintln(ol.out, args...)
}

// Seen reports whether key has already been logged.
func (ol *onceLogger) Seen(key string) bool {
	ol.mu.Lock()
	defer ol.mu.Unlock()
	_, ok := ol.seen[key]
	return ok
}

// Count returns the number of distinct keys seen so far.
func (ol *onceLogger) Count() int {
	ol.mu.Lock()
	defer ol.mu.Unlock()
	return len(ol.seen)
}
