package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/provislabs/provis/masthead"
)

func TestTermEnv_ReadyQueuesUntilSignal(t *testing.T) {
	env := newTermEnv()
	calls := 0
	env.OnReady(func() { calls++ })

	assert.Equal(t, 0, calls, "ready callbacks must wait for the signal")

	env.signalReady()
	assert.Equal(t, 1, calls)
}

func TestTermEnv_LateOnReadyRunsImmediately(t *testing.T) {
	env := newTermEnv()
	env.signalReady()

	calls := 0
	env.OnReady(func() { calls++ })
	assert.Equal(t, 1, calls, "registration after readiness must fire at once")
}

func TestTermEnv_SignalReadyDrainsOnce(t *testing.T) {
	env := newTermEnv()
	calls := 0
	env.OnReady(func() { calls++ })

	env.signalReady()
	env.signalReady()
	assert.Equal(t, 1, calls, "a second ready signal must not replay the queue")
}

func TestTermEnv_ResizeFanout(t *testing.T) {
	env := newTermEnv()
	var order []string
	env.OnResize(func() { order = append(order, "first") })
	env.OnResize(func() { order = append(order, "second") })

	env.signalResize()
	env.signalResize()
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestTermEnv_ObserveSizeFiltersSelector(t *testing.T) {
	env := newTermEnv()
	headerCalls := 0
	otherCalls := 0
	env.ObserveSize(masthead.Selector, func() { headerCalls++ })
	env.ObserveSize(".sidebar", func() { otherCalls++ })

	env.signalSizeChange(masthead.Selector)
	assert.Equal(t, 1, headerCalls)
	assert.Equal(t, 0, otherCalls)
}
