package bench

import (
	"github.com/sirupsen/logrus"

	"github.com/hdlbench/hdlbench/bench/vcd"
)

// DefaultTraceDepth records effectively the whole design hierarchy.
const DefaultTraceDepth = 99

// Stats counts what a Bench has done so far.
type Stats struct {
	Ticks   uint64 // completed Tick calls, including the one inside Reset
	Samples uint64 // trace samples written (three per traced tick)
}

// Bench owns one hardware model and, optionally, one open trace. It
// advances the model one clock period per Tick with exact sub-cycle
// timestamp bookkeeping, so that two runs of the same design produce
// bit-identical traces.
type Bench struct {
	// Core is the model under simulation. Exclusively owned by this
	// Bench; callers poke its external inputs between ticks.
	Core Model

	// Hook, when set, is invoked once per Tick after both clock edges.
	// Its return value becomes the changed flag.
	Hook TickHook

	clock       ClockSpec
	timePS      uint64
	trace       *vcd.Writer
	tracePaused bool
	done        bool
	changed     bool
	stats       Stats
}

// New builds a Bench around core using the default clock.
func New(core Model) *Bench {
	return NewWithClock(core, DefaultClock())
}

// NewWithClock builds a Bench around core with an explicit clock
// geometry. Simulated time starts at zero and no trace is open.
func NewWithClock(core Model, clock ClockSpec) *Bench {
	EnableTracing()
	return &Bench{Core: core, clock: clock}
}

// Clock returns the clock geometry this Bench steps with.
func (b *Bench) Clock() ClockSpec { return b.clock }

// TimePS returns the current simulated time in picoseconds. It only
// ever moves forward, by exactly one period per Tick.
func (b *Bench) TimePS() uint64 { return b.timePS }

// Stats returns the run counters accumulated so far.
func (b *Bench) Stats() Stats { return b.stats }

// Changed reports whether the tick hook updated auxiliary inputs
// during the last Tick.
func (b *Bench) Changed() bool { return b.changed }

// OpenTrace starts recording the model's signals to a VCD file with
// the given hierarchy depth. Time unit and resolution are declared as
// picoseconds. If a trace is already open the call is a no-op: the
// existing binding is kept and the file is not reopened.
func (b *Bench) OpenTrace(name string, depth int) error {
	if b.trace != nil {
		return nil
	}
	tr := vcd.New()
	b.Core.Trace(tr, depth)
	tr.SetTimeUnit("ps")
	tr.SetTimeResolution("ps")
	if err := tr.Open(name); err != nil {
		return err
	}
	b.trace = tr
	b.tracePaused = false
	logrus.Infof("Trace opened: %s (depth %d)", name, depth)
	return nil
}

// Trace is a synonym for OpenTrace with the default depth.
func (b *Bench) Trace(name string) error {
	return b.OpenTrace(name, DefaultTraceDepth)
}

// SetTracePaused suppresses or resumes trace writes without touching
// the open trace, and returns the new value. Simulated time keeps
// advancing while paused.
func (b *Bench) SetTracePaused(paused bool) bool {
	b.tracePaused = paused
	return b.tracePaused
}

// TracePaused reports whether trace writes are currently suppressed.
func (b *Bench) TracePaused() bool { return b.tracePaused }

// CloseTrace flushes and closes the open trace, if any. No more
// samples will be written to it. Calling it with no open trace is a
// no-op.
func (b *Bench) CloseTrace() {
	if b.trace == nil {
		return
	}
	if err := b.trace.Close(); err != nil {
		logrus.Fatalf("Closing trace: %v", err)
	}
	b.trace = nil
	logrus.Info("Trace closed")
}

// Close releases everything the Bench owns. Safe to call more than
// once.
func (b *Bench) Close() {
	b.CloseTrace()
}

// Eval settles the model's combinational logic without advancing time.
// Useful when external inputs depend on combinational feedback from
// other inputs; ordinary callers should prefer Tick.
func (b *Bench) Eval() {
	b.Core.Eval()
}

func (b *Bench) tracing() bool {
	return b.trace != nil && !b.tracePaused
}

func (b *Bench) dump(timePS uint64) {
	b.trace.Dump(timePS)
	b.stats.Samples++
}

// Tick advances the simulation by exactly one clock period: settle,
// rising edge, falling edge, with a trace sample after each of the
// three evaluations. The rising-edge sample is followed by a flush so
// a long-running simulation never accumulates unbounded buffered
// samples and a crash still leaves a readable trace.
func (b *Bench) Tick() {
	// Settle any combinational logic pending from external input
	// changes since the last clock edge, and record the pre-edge
	// state just before the rising edge.
	b.Core.Eval()
	if b.tracing() {
		b.dump(b.timePS + b.clock.PreEdgeOffsetPS)
	}

	// Rising edge.
	b.timePS += b.clock.RiseHalfPS
	b.Core.SetClock(1)
	b.Core.Eval()
	if b.tracing() {
		b.dump(b.timePS)
		if err := b.trace.Flush(); err != nil {
			logrus.Fatalf("Flushing trace: %v", err)
		}
	}

	// Falling edge.
	b.timePS += b.clock.FallHalfPS
	b.Core.SetClock(0)
	b.Core.Eval()
	if b.tracing() {
		b.dump(b.timePS)
	}

	b.simClockTick()
	b.stats.Ticks++
	logrus.Debugf("[%012d ps] tick %d complete", b.timePS, b.stats.Ticks)
}

// simClockTick lets auxiliary simulated peripherals advance their
// inputs in step with the clock. The base behavior clears changed;
// a hook overrides it by reporting whether it updated anything.
func (b *Bench) simClockTick() {
	if b.Hook != nil {
		b.changed = b.Hook.SimClockTick()
		return
	}
	b.changed = false
}

// Done reports whether the simulated design has signaled its own
// termination. Once it returns true it stays true for the rest of
// this Bench's lifetime, regardless of the process-wide latch.
func (b *Bench) Done() bool {
	if b.done {
		return true
	}
	if Finished() {
		b.done = true
	}
	return b.done
}

// Reset holds the reset input high for exactly one Tick and drops it
// before returning. Any other external inputs must be set to valid
// values by the caller beforehand; Reset does not touch them.
func (b *Bench) Reset() {
	b.Core.SetReset(1)
	b.Tick()
	b.Core.SetReset(0)
	logrus.Debug("Reset pulse applied")
}
