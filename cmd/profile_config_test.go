package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `profiles:
  default:
    clock_mhz: 36
    ticks: 500
    trace_file: out.vcd
    counter_limit: 100
  fast:
    clock_mhz: 100
    ticks: 10000
    trace_depth: 2
`

func writeProfileFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profileYAML), 0o644))
	return path
}

func TestGetProfile_Found(t *testing.T) {
	path := writeProfileFile(t)

	p := GetProfile(path, "default")
	require.NotNil(t, p)
	assert.Equal(t, 36.0, p.ClockMHz)
	assert.EqualValues(t, 500, p.Ticks)
	assert.Equal(t, "out.vcd", p.TraceFile)
	assert.EqualValues(t, 100, p.CounterLimit)
	assert.Zero(t, p.TraceDepth, "unset fields stay zero so flag defaults win")

	fast := GetProfile(path, "fast")
	require.NotNil(t, fast)
	assert.Equal(t, 100.0, fast.ClockMHz)
	assert.Equal(t, 2, fast.TraceDepth)
}

func TestGetProfile_Missing(t *testing.T) {
	path := writeProfileFile(t)
	assert.Nil(t, GetProfile(path, "nope"))
}

func TestApplyProfile_OverlaysNonZeroFields(t *testing.T) {
	// Snapshot and restore the package-level flag values.
	origClock, origTicks, origTrace := clockMHz, ticks, traceFile
	t.Cleanup(func() { clockMHz, ticks, traceFile = origClock, origTicks, origTrace })

	clockMHz, ticks, traceFile = 36.0, 1000, ""
	applyProfile(&Profile{ClockMHz: 100, TraceFile: "run.vcd"})

	assert.Equal(t, 100.0, clockMHz)
	assert.EqualValues(t, 1000, ticks, "zero profile field leaves the flag value alone")
	assert.Equal(t, "run.vcd", traceFile)
}
