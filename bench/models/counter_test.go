package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdlbench/hdlbench/bench"
)

func TestCounter_CountsOnRisingEdges(t *testing.T) {
	c := NewCounter(8, 0)
	b := bench.New(c)

	b.Reset()
	require.EqualValues(t, 0, c.Count)

	for i := 0; i < 5; i++ {
		b.Tick()
	}
	assert.EqualValues(t, 5, c.Count)
}

func TestCounter_EnableGatesCounting(t *testing.T) {
	c := NewCounter(8, 0)
	b := bench.New(c)

	c.En = 0
	for i := 0; i < 4; i++ {
		b.Tick()
	}
	assert.EqualValues(t, 0, c.Count)

	c.En = 1
	b.Tick()
	assert.EqualValues(t, 1, c.Count)
}

func TestCounter_WrapsAtWidth(t *testing.T) {
	c := NewCounter(2, 0)
	b := bench.New(c)

	for i := 0; i < 4; i++ {
		b.Tick()
	}
	assert.EqualValues(t, 0, c.Count, "2-bit counter wraps after four ticks")
}

func TestCounter_ResetWinsOverEnable(t *testing.T) {
	c := NewCounter(8, 0)
	b := bench.New(c)

	b.Tick()
	b.Tick()
	require.EqualValues(t, 2, c.Count)

	b.Reset()
	assert.EqualValues(t, 0, c.Count)
}

func TestCounter_LimitRequestsFinish(t *testing.T) {
	bench.ClearFinish()
	t.Cleanup(bench.ClearFinish)

	c := NewCounter(8, 3)
	b := bench.New(c)

	b.Tick()
	b.Tick()
	require.False(t, b.Done())

	b.Tick()
	assert.True(t, b.Done(), "counter reaching its limit ends the simulation")
}

func TestToggler_InvertsEachTick(t *testing.T) {
	m := NewToggler()
	b := bench.New(m)

	var seen []uint8
	for i := 0; i < 4; i++ {
		b.Tick()
		seen = append(seen, m.Q)
	}
	assert.Equal(t, []uint8{1, 0, 1, 0}, seen)

	b.Reset()
	assert.EqualValues(t, 0, m.Q)
}

func TestEnablePulser_DutyCycle(t *testing.T) {
	c := NewCounter(8, 0)
	b := bench.New(c)
	b.Hook = NewEnablePulser(c, 1, 1)

	// Enable starts high, so ticks 1 and 2 count; the hook then drops
	// enable every other tick.
	b.Tick()
	assert.False(t, b.Changed(), "enable already high, nothing moved")
	b.Tick()
	assert.True(t, b.Changed(), "hook dropped enable for the next tick")
	b.Tick()
	assert.True(t, b.Changed(), "hook raised enable again")
	b.Tick()

	assert.EqualValues(t, 3, c.Count)
}

func TestEnablePulser_ZeroPeriodIsInert(t *testing.T) {
	c := NewCounter(8, 0)
	p := NewEnablePulser(c, 0, 0)
	assert.False(t, p.SimClockTick())
	assert.EqualValues(t, 1, c.En)
}
