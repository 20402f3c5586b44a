package models

import "github.com/hdlbench/hdlbench/bench/vcd"

// Toggler is a single flip-flop that inverts its output on every
// rising clock edge. It is the smallest useful trace subject: its
// output changes at every sample.
type Toggler struct {
	Clk uint8
	Rst uint8

	// Q is the flip-flop output after the most recent rising edge.
	Q uint8

	lastClk uint8
}

// NewToggler builds a Toggler with its output low.
func NewToggler() *Toggler { return &Toggler{} }

// SetClock drives the clock input.
func (t *Toggler) SetClock(v uint8) { t.Clk = v }

// SetReset drives the reset input.
func (t *Toggler) SetReset(v uint8) { t.Rst = v }

// Eval settles the flip-flop; reset clears it synchronously.
func (t *Toggler) Eval() {
	if t.Clk == 1 && t.lastClk == 0 {
		if t.Rst == 1 {
			t.Q = 0
		} else {
			t.Q ^= 1
		}
	}
	t.lastClk = t.Clk
}

// Trace registers the flip-flop's signals.
func (t *Toggler) Trace(tr *vcd.Writer, depth int) {
	tr.SetMaxDepth(depth)
	tr.BeginScope("toggler")
	tr.AddSignal("clk", 1, func() uint64 { return uint64(t.Clk) })
	tr.AddSignal("rst", 1, func() uint64 { return uint64(t.Rst) })
	tr.AddSignal("q", 1, func() uint64 { return uint64(t.Q) })
	tr.EndScope()
}
