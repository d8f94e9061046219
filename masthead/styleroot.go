package masthead

import "fmt"

// StyleRoot is the document-wide scope style variables are published into.
// It is the in-process stand-in for a page's root element style map: one
// writer, any number of readers, no locking (see the package doc for the
// execution model).
//
// The revision counter increments on every write, including writes that
// restate the current value. Consumers that re-render on change can compare
// revisions instead of values.
type StyleRoot struct {
	vars map[string]string
	rev  int64
}

// NewStyleRoot creates an empty style root at revision 0.
func NewStyleRoot() *StyleRoot {
	return &StyleRoot{vars: make(map[string]string)}
}

// SetVar publishes a named variable, replacing any prior value.
func (r *StyleRoot) SetVar(name, value string) {
	r.vars[name] = value
	r.rev++
}

// Var returns the current value of a variable. The second return is false
// when the variable has never been published.
func (r *StyleRoot) Var(name string) (string, bool) {
	v, ok := r.vars[name]
	return v, ok
}

// Revision returns the number of writes applied to the root.
func (r *StyleRoot) Revision() int64 {
	return r.rev
}

// VarPublisher publishes heights as a unit-suffixed variable on a StyleRoot.
// The zero value is unusable; both fields must be set.
type VarPublisher struct {
	Root *StyleRoot
	Name string
}

var _ Publisher = VarPublisher{}

// Set writes px, suffixed with Unit, under the configured variable name.
func (p VarPublisher) Set(px int) {
	p.Root.SetVar(p.Name, fmt.Sprintf("%d%s", px, Unit))
}
