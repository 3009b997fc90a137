// Package timing provides lightweight execution-time measurement.
package timing

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Sink receives measurement results.
type Sink func(name string, elapsed time.Duration)

var (
	sinkMu sync.RWMutex
	sink   Sink = func(name string, elapsed time.Duration) {
		fmt.Fprintf(os.Stderr, "%s execution time: %d ms\n", name, elapsed.Milliseconds())
	}
)

// SetSink replaces the destination measurements are reported to. Passing nil
// restores nothing; callers that want to silence output should install a
// no-op sink.
func SetSink(s Sink) {
	if s == nil {
		return
	}
	sinkMu.Lock()
	sink = s
	sinkMu.Unlock()
}

// Measure starts a measurement and returns a stop function that reports the
// elapsed time to the sink. Intended for defer:
//
//	defer timing.Measure("rebuild index")()
func Measure(name string) func() {
	start := time.Now()
	return func() {
		sinkMu.RLock()
		s := sink
		sinkMu.RUnlock()
		s(name, time.Since(start))
	}
}

// Stopwatch measures elapsed time from its creation or last Reset.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch returns a running stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the time since start.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Reset restarts the stopwatch.
func (s *Stopwatch) Reset() {
	s.start = time.Now()
}
