package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableTracing_Idempotent(t *testing.T) {
	// Multiple independently constructed drivers each call this; no
	// double-init hazard allowed.
	EnableTracing()
	EnableTracing()
	assert.True(t, TracingEnabled())
}

func TestFinishLatch(t *testing.T) {
	ClearFinish()
	t.Cleanup(ClearFinish)

	assert.False(t, Finished())
	RequestFinish()
	RequestFinish()
	assert.True(t, Finished())
	ClearFinish()
	assert.False(t, Finished())
}
