// Package bench drives a clock-driven hardware model one clock period
// at a time and records its signal history to a waveform trace.
//
// # Reading Guide
//
// Start with these files to understand the stepping kernel:
//   - model.go: the Model contract a generated core must satisfy
//   - clock.go: integer-picosecond clock geometry (half periods, pre-edge offset)
//   - bench.go: the tick loop and the trace lifecycle
//   - finish.go: process-wide trace-enable and termination latches
//
// # Architecture
//
// The bench package defines the driver and its contracts; implementations
// live in sub-packages:
//   - bench/vcd: value-change-dump trace writer
//   - bench/models: ready-made demo models and tick-hook peripherals
//
// The driver is fully synchronous and single-threaded: every operation
// runs to completion before returning, in exactly the order the caller
// issues them. One Bench owns exactly one Model for its whole lifetime
// and at most one open trace at a time.
package bench
