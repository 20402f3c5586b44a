package bench

import "github.com/hdlbench/hdlbench/bench/vcd"

// Model is the contract a hardware core must satisfy to be driven by a
// Bench. Cores are opaque to the driver: it only pokes the clock and
// reset inputs, asks the core to settle its logic, and hands it a
// trace writer to register its signals against. A core that wants to
// end the simulation raises the process-wide finish latch (see
// RequestFinish), the same way a generated design executes $finish.
type Model interface {
	// SetClock drives the core's clock input to 0 or 1.
	SetClock(v uint8)

	// SetReset drives the core's reset input to 0 or 1.
	SetReset(v uint8)

	// Eval settles all combinational logic in the core. It is called
	// several times per tick and must be safe to call at any point.
	Eval()

	// Trace registers the core's signals with the trace writer, down
	// to the given hierarchy depth.
	Trace(tr *vcd.Writer, depth int)
}

// TickHook is the extension point invoked once per Tick, after both
// clock edges have been applied. Auxiliary simulated peripherals use
// it to advance their own inputs in step with the clock. The return
// value becomes the bench's changed flag: report true when inputs were
// updated and the caller should re-evaluate or re-tick.
type TickHook interface {
	SimClockTick() bool
}

// TickHookFunc adapts a plain function to the TickHook interface.
type TickHookFunc func() bool

// SimClockTick calls f.
func (f TickHookFunc) SimClockTick() bool { return f() }
