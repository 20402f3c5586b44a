package bench

// ClockSpec fixes the integer-picosecond geometry of the single
// simulation clock. The two half periods need not be equal; they must
// sum to exactly one period so that cumulative timestamp arithmetic
// stays exact over arbitrarily many ticks. PreEdgeOffsetPS places the
// pre-edge trace sample strictly between the previous falling edge and
// the next rising edge.
type ClockSpec struct {
	PeriodPS        uint64 // RiseHalfPS + FallHalfPS
	RiseHalfPS      uint64 // time advance before the rising edge
	FallHalfPS      uint64 // time advance before the falling edge
	PreEdgeOffsetPS uint64 // offset of the pre-edge sample within a tick
}

// DefaultFrequencyHz is the clock frequency the bench uses when the
// caller does not pick one. 36 MHz keeps traces comparable with the
// reference design this harness grew out of.
const DefaultFrequencyHz = 36_000_000

// ClockFromFrequency derives a ClockSpec from a frequency in Hz.
//
// Rounding rule: the period is the frequency's reciprocal floored to
// whole picoseconds, the rising half is the floored half period, and
// the falling half absorbs the remainder. The pre-edge offset is the
// floored quarter period, which is always strictly less than the
// rising half. At 36 MHz this yields 13888 + 13889 = 27777 ps with a
// 6944 ps pre-edge offset.
func ClockFromFrequency(freqHz float64) ClockSpec {
	period := uint64(1e12 / freqHz)
	rise := period / 2
	return ClockSpec{
		PeriodPS:        period,
		RiseHalfPS:      rise,
		FallHalfPS:      period - rise,
		PreEdgeOffsetPS: rise / 2,
	}
}

// DefaultClock returns the ClockSpec for DefaultFrequencyHz.
func DefaultClock() ClockSpec {
	return ClockFromFrequency(DefaultFrequencyHz)
}
