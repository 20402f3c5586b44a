// Package models provides ready-made hardware models and tick-hook
// peripherals for driving a bench without a generated core.
package models

import (
	"github.com/hdlbench/hdlbench/bench"
	"github.com/hdlbench/hdlbench/bench/vcd"
)

// Counter is a clocked up-counter with synchronous reset and an
// enable input. When a limit is configured, reaching it raises the
// process-wide finish latch, standing in for a design that executes
// $finish.
type Counter struct {
	// External inputs. Clk and Rst are driven by the bench; En is a
	// free input callers (or an EnablePulser hook) may poke between
	// ticks.
	Clk uint8
	Rst uint8
	En  uint8

	// Count is the register value after the most recent rising edge.
	Count uint64

	width   int
	limit   uint64
	mask    uint64
	lastClk uint8
}

// NewCounter builds a counter of the given bit width. A limit of zero
// means the counter never requests termination.
func NewCounter(width int, limit uint64) *Counter {
	c := &Counter{width: width, limit: limit, En: 1}
	if width >= 64 {
		c.mask = ^uint64(0)
	} else {
		c.mask = (uint64(1) << width) - 1
	}
	return c
}

// SetClock drives the clock input.
func (c *Counter) SetClock(v uint8) { c.Clk = v }

// SetReset drives the reset input.
func (c *Counter) SetReset(v uint8) { c.Rst = v }

// Eval settles the counter's logic. State moves only on a rising
// clock edge: reset wins over enable, and the count wraps at the
// configured width.
func (c *Counter) Eval() {
	if c.Clk == 1 && c.lastClk == 0 {
		switch {
		case c.Rst == 1:
			c.Count = 0
		case c.En == 1:
			c.Count = (c.Count + 1) & c.mask
			if c.limit > 0 && c.Count == c.limit {
				bench.RequestFinish()
			}
		}
	}
	c.lastClk = c.Clk
}

// Trace registers the counter's signals. The edge-detect state sits in
// a nested scope so shallow depths drop it.
func (c *Counter) Trace(tr *vcd.Writer, depth int) {
	tr.SetMaxDepth(depth)
	tr.BeginScope("counter")
	tr.AddSignal("clk", 1, func() uint64 { return uint64(c.Clk) })
	tr.AddSignal("rst", 1, func() uint64 { return uint64(c.Rst) })
	tr.AddSignal("en", 1, func() uint64 { return uint64(c.En) })
	tr.AddSignal("count", c.width, func() uint64 { return c.Count })
	tr.BeginScope("sync")
	tr.AddSignal("last_clk", 1, func() uint64 { return uint64(c.lastClk) })
	tr.EndScope()
	tr.EndScope()
}
