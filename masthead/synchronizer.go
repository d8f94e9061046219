package masthead

import "log/slog"

// Synchronizer measures the header element and publishes its height. It owns
// no state beyond its collaborators; every measurement is taken fresh from
// the Document, so repeated calls with unchanged layout publish identical
// values.
type Synchronizer struct {
	doc    Document
	pub    Publisher
	logger *slog.Logger
}

// New creates a Synchronizer that measures doc and publishes through pub.
func New(doc Document, pub Publisher, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		doc:    doc,
		pub:    pub,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synchronize locates the header, measures its rendered box height, and
// publishes the result. When no element matches Selector it publishes
// FallbackHeight instead. It never fails and never blocks.
func (s *Synchronizer) Synchronize() {
	height := FallbackHeight
	if el, ok := s.doc.Find(Selector); ok {
		height = el.BoxHeight()
	} else {
		s.logger.Debug("header absent, publishing fallback", "selector", Selector, "fallback", FallbackHeight)
	}
	s.pub.Set(height)
}

// Bind subscribes Synchronize to env's trigger points: once at document
// ready and on every viewport resize. When env also implements SizeObserver,
// changes to the header's own box re-trigger as well; when it does not, the
// resize subscription alone carries re-measurement. Bind registers and
// returns - all later work happens inside env's event dispatch.
func (s *Synchronizer) Bind(env Environment) {
	env.OnReady(s.Synchronize)
	env.OnResize(s.Synchronize)

	if obs, ok := env.(SizeObserver); ok {
		obs.ObserveSize(Selector, s.Synchronize)
		s.logger.Debug("size observation active", "selector", Selector)
	} else {
		s.logger.Debug("size observation unavailable, resize trigger only")
	}
}
