package masthead

// Layout contract shared by the generated site, the emitted browser script,
// and the terminal preview.
const (
	// Selector is the fixed structural identifier of the header element.
	// The header carries this class exactly once per page.
	Selector = ".site-header"

	// HeightVar is the document-wide style variable the measured height is
	// published under.
	HeightVar = "--header-height"

	// FallbackHeight is published when no element matches Selector, so the
	// variable is never left undefined.
	FallbackHeight = 56

	// Unit suffixes every published value.
	Unit = "px"
)

// Element is a rendered node whose layout box can be measured.
type Element interface {
	// BoxHeight returns the element's rendered height in whole pixels,
	// borders and padding included.
	BoxHeight() int
}

// Document locates rendered elements by structural selector.
type Document interface {
	// Find returns the first element matching selector. The second return
	// is false when nothing matches.
	Find(selector string) (Element, bool)
}

// Publisher receives each measured-or-fallback height. Implementations must
// treat every call as a full overwrite of the previous value.
type Publisher interface {
	Set(px int)
}

// Environment exposes the trigger points of a hosting page. Both methods
// register callbacks during Synchronizer.Bind; neither is consulted again
// afterwards.
type Environment interface {
	// OnReady registers fn to run once the document is fully parsed.
	// Implementations must invoke fn immediately when readiness has already
	// been signaled, so binding late is safe.
	OnReady(fn func())

	// OnResize registers fn to run on every viewport resize.
	OnResize(fn func())
}

// SizeObserver is the optional capability of an Environment to report
// changes to one element's own box dimensions, independent of viewport
// resizes. Environments that cannot observe element sizes simply do not
// implement it; Bind detects the capability with a type assertion and
// proceeds without it.
type SizeObserver interface {
	// ObserveSize registers fn to run whenever the box of the element
	// matching selector changes size.
	ObserveSize(selector string, fn func())
}
