package masthead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubElement is a measurable node with a scripted height.
type stubElement struct {
	height int
}

func (e *stubElement) BoxHeight() int { return e.height }

// stubDoc holds at most one header element, keyed on Selector.
type stubDoc struct {
	header *stubElement
}

func (d *stubDoc) Find(selector string) (Element, bool) {
	if selector == Selector && d.header != nil {
		return d.header, true
	}
	return nil, false
}

// capturePublisher records every published value in order.
type capturePublisher struct {
	values []int
}

func (p *capturePublisher) Set(px int) { p.values = append(p.values, px) }

// stubEnv records registered callbacks so tests can fire triggers manually.
// readyNow simulates an environment that already passed document-ready when
// the callback is registered.
type stubEnv struct {
	ready    func()
	resize   func()
	readyNow bool
}

func (e *stubEnv) OnReady(fn func()) {
	e.ready = fn
	if e.readyNow {
		fn()
	}
}

func (e *stubEnv) OnResize(fn func()) { e.resize = fn }

// observingEnv additionally exposes the size-observation capability.
type observingEnv struct {
	stubEnv
	observed map[string]func()
}

func (e *observingEnv) ObserveSize(selector string, fn func()) {
	if e.observed == nil {
		e.observed = make(map[string]func())
	}
	e.observed[selector] = fn
}

func TestSynchronizer_Synchronize_PublishesMeasuredHeight(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 72}}
	pub := &capturePublisher{}

	New(doc, pub).Synchronize()

	require.Len(t, pub.values, 1)
	assert.Equal(t, 72, pub.values[0])
}

func TestSynchronizer_Synchronize_FallbackWhenHeaderAbsent(t *testing.T) {
	doc := &stubDoc{}
	pub := &capturePublisher{}
	s := New(doc, pub)

	s.Synchronize()

	require.Len(t, pub.values, 1)
	assert.Equal(t, FallbackHeight, pub.values[0])
}

func TestSynchronizer_Synchronize_FallbackOverwritesPriorValue(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 120}}
	pub := &capturePublisher{}
	s := New(doc, pub)

	s.Synchronize()
	doc.header = nil
	s.Synchronize()

	require.Len(t, pub.values, 2)
	assert.Equal(t, []int{120, FallbackHeight}, pub.values)
}

func TestSynchronizer_Synchronize_Idempotent(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 64}}
	pub := &capturePublisher{}
	s := New(doc, pub)

	s.Synchronize()
	s.Synchronize()
	s.Synchronize()

	require.Len(t, pub.values, 3)
	assert.Equal(t, []int{64, 64, 64}, pub.values)
}

// The full lifecycle against a real StyleRoot: measured at load, fallback on
// removal, re-measured on restore.
func TestSynchronizer_Lifecycle_RemoveAndRestore(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 72}}
	root := NewStyleRoot()
	s := New(doc, VarPublisher{Root: root, Name: HeightVar})

	s.Synchronize()
	v, ok := root.Var(HeightVar)
	require.True(t, ok)
	assert.Equal(t, "72px", v)

	doc.header = nil
	s.Synchronize()
	v, _ = root.Var(HeightVar)
	assert.Equal(t, "56px", v)

	doc.header = &stubElement{height: 80}
	s.Synchronize()
	v, _ = root.Var(HeightVar)
	assert.Equal(t, "80px", v)
}

func TestSynchronizer_Bind_RunsOnReadySignal(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 48}}
	pub := &capturePublisher{}
	env := &stubEnv{}

	New(doc, pub).Bind(env)
	require.NotNil(t, env.ready)
	assert.Empty(t, pub.values, "nothing published before the ready signal")

	env.ready()
	assert.Equal(t, []int{48}, pub.values)
}

func TestSynchronizer_Bind_RunsImmediatelyWhenAlreadyReady(t *testing.T) {
	doc := &stubDoc{header: &stubElement{height: 48}}
	pub := &capturePublisher{}
	env := &stubEnv{readyNow: true}

	New(doc, pub).Bind(env)

	assert.Equal(t, []int{48}, pub.values)
}

func TestSynchronizer_Bind_ResizeRepublishes(t *testing.T) {
	header := &stubElement{height: 60}
	doc := &stubDoc{header: header}
	pub := &capturePublisher{}
	env := &stubEnv{readyNow: true}

	New(doc, pub).Bind(env)
	require.NotNil(t, env.resize)

	header.height = 92
	env.resize()

	assert.Equal(t, []int{60, 92}, pub.values)
}

func TestSynchronizer_Bind_ResizeStormLastWriteWins(t *testing.T) {
	header := &stubElement{height: 60}
	doc := &stubDoc{header: header}
	pub := &capturePublisher{}
	env := &stubEnv{readyNow: true}

	New(doc, pub).Bind(env)
	for i := 0; i < 10; i++ {
		env.resize()
	}

	require.Len(t, pub.values, 11)
	assert.Equal(t, 60, pub.values[len(pub.values)-1])
}

func TestSynchronizer_Bind_SizeObserverUsedWhenAvailable(t *testing.T) {
	header := &stubElement{height: 40}
	doc := &stubDoc{header: header}
	pub := &capturePublisher{}
	env := &observingEnv{stubEnv: stubEnv{readyNow: true}}

	New(doc, pub).Bind(env)
	observe, ok := env.observed[Selector]
	require.True(t, ok, "header element should be observed")

	// Box grows without any viewport resize.
	header.height = 66
	observe()

	assert.Equal(t, []int{40, 66}, pub.values)
}

func TestSynchronizer_Bind_NoSizeObservationDegradesQuietly(t *testing.T) {
	header := &stubElement{height: 40}
	doc := &stubDoc{header: header}
	pub := &capturePublisher{}
	env := &stubEnv{readyNow: true}

	New(doc, pub).Bind(env)

	// Only ready fired; the content change is picked up by the next resize.
	header.height = 66
	assert.Equal(t, []int{40}, pub.values)
	env.resize()
	assert.Equal(t, []int{40, 66}, pub.values)
}
