package bench

import (
	"sync"
	"sync/atomic"
)

// Process-wide simulation state, shared by every Bench in the process.
// The trace-enable toggle must be raised before any trace can be
// opened; the finish latch is how models self-report termination.
// Both are safe to touch from multiple independently constructed
// drivers.
var (
	traceOnce    sync.Once
	traceEnabled atomic.Bool
	finishFlag   atomic.Bool
)

// EnableTracing turns on the process-wide trace capability. It is
// idempotent: every Bench constructor calls it, and repeated calls
// across drivers are safe.
func EnableTracing() {
	traceOnce.Do(func() { traceEnabled.Store(true) })
}

// TracingEnabled reports whether EnableTracing has run.
func TracingEnabled() bool { return traceEnabled.Load() }

// RequestFinish raises the process-wide termination latch. Models call
// it when the simulated design signals its own completion.
func RequestFinish() { finishFlag.Store(true) }

// Finished reports whether any model has requested termination.
func Finished() bool { return finishFlag.Load() }

// ClearFinish lowers the termination latch so one process can run
// several independent simulations back to back. It does not un-latch
// any Bench whose Done has already observed the finish request.
func ClearFinish() { finishFlag.Store(false) }
