package preview

import "github.com/provislabs/provis/masthead"

// termEnv adapts a terminal session to the synchronizer's trigger points.
// Readiness latches on the first window size report; resize and element
// size-change callbacks replay whenever the model signals them.
type termEnv struct {
	ready    bool
	onReady  []func()
	onResize []func()
	observed map[string][]func()
}

var (
	_ masthead.Environment  = (*termEnv)(nil)
	_ masthead.SizeObserver = (*termEnv)(nil)
)

func newTermEnv() *termEnv {
	return &termEnv{observed: make(map[string][]func())}
}

// OnReady queues fn until readiness is signaled. Once the session is ready,
// late registrations run immediately.
func (e *termEnv) OnReady(fn func()) {
	if e.ready {
		fn()
		return
	}
	e.onReady = append(e.onReady, fn)
}

// OnResize registers fn for every subsequent resize signal.
func (e *termEnv) OnResize(fn func()) {
	e.onResize = append(e.onResize, fn)
}

// ObserveSize registers fn for size-change signals naming selector.
func (e *termEnv) ObserveSize(selector string, fn func()) {
	e.observed[selector] = append(e.observed[selector], fn)
}

// signalReady marks the session ready and drains the queued callbacks.
// Signaling twice is harmless; the queue is only drained once.
func (e *termEnv) signalReady() {
	if e.ready {
		return
	}
	e.ready = true
	for _, fn := range e.onReady {
		fn()
	}
	e.onReady = nil
}

// signalResize runs every resize subscription in registration order.
func (e *termEnv) signalResize() {
	for _, fn := range e.onResize {
		fn()
	}
}

// signalSizeChange runs the subscriptions observing selector.
func (e *termEnv) signalSizeChange(selector string) {
	for _, fn := range e.observed[selector] {
		fn()
	}
}
