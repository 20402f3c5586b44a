package models

// EnablePulser drives a Counter's enable input on a fixed duty cycle:
// high for High ticks, then low for Low ticks. It is a bench.TickHook,
// so it runs once per tick after both clock edges and reports whether
// it moved the enable input, which the bench surfaces as its changed
// flag.
type EnablePulser struct {
	Target *Counter
	High   int
	Low    int

	phase int
}

// NewEnablePulser builds a pulser bound to target.
func NewEnablePulser(target *Counter, high, low int) *EnablePulser {
	return &EnablePulser{Target: target, High: high, Low: low}
}

// SimClockTick advances the duty-cycle phase and pokes the counter's
// enable input for the next tick.
func (p *EnablePulser) SimClockTick() bool {
	period := p.High + p.Low
	if period <= 0 {
		return false
	}
	want := uint8(0)
	if p.phase < p.High {
		want = 1
	}
	p.phase = (p.phase + 1) % period
	if p.Target.En != want {
		p.Target.En = want
		return true
	}
	return false
}
