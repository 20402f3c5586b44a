package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockFromFrequency_ReferenceConstants(t *testing.T) {
	// 36 MHz must reproduce the reference harness constants exactly,
	// or traces stop being comparable against it.
	clk := ClockFromFrequency(36e6)
	assert.Equal(t, uint64(27777), clk.PeriodPS)
	assert.Equal(t, uint64(13888), clk.RiseHalfPS)
	assert.Equal(t, uint64(13889), clk.FallHalfPS)
	assert.Equal(t, uint64(6944), clk.PreEdgeOffsetPS)
}

func TestClockFromFrequency_Derivation(t *testing.T) {
	tests := []struct {
		name   string
		freqHz float64
		period uint64
		rise   uint64
		fall   uint64
	}{
		{"100MHz divides evenly", 100e6, 10000, 5000, 5000},
		{"50MHz divides evenly", 50e6, 20000, 10000, 10000},
		{"3MHz floors the period", 3e6, 333333, 166666, 166667},
		{"1MHz", 1e6, 1000000, 500000, 500000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := ClockFromFrequency(tt.freqHz)
			assert.Equal(t, tt.period, clk.PeriodPS)
			assert.Equal(t, tt.rise, clk.RiseHalfPS)
			assert.Equal(t, tt.fall, clk.FallHalfPS)

			// Invariants regardless of frequency.
			assert.Equal(t, clk.PeriodPS, clk.RiseHalfPS+clk.FallHalfPS)
			assert.Less(t, clk.PreEdgeOffsetPS, clk.RiseHalfPS)
		})
	}
}

func TestDefaultClock(t *testing.T) {
	assert.Equal(t, ClockFromFrequency(DefaultFrequencyHz), DefaultClock())
}
