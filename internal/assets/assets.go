// Package assets embeds the static files every generated page links: the
// shared stylesheet and the header-height script. Both are written with a
// content fingerprint in the filename so pages can be served with far-future
// cache headers and still pick up changed assets.
//
// Neither asset is a checked-in artifact: both are rendered from templates
// at build time with the selector, variable name, fallback height, and unit
// taken from the masthead package, keeping the browser-side and Go-side
// behavior on one set of constants.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/zeebo/xxh3"

	"github.com/provislabs/provis/masthead"
)

//go:embed site.css.tmpl
var stylesheetTemplate string

//go:embed header_height.js.tmpl
var headerScriptTemplate string

// fingerprintLen is the number of hex digits kept from the content hash.
const fingerprintLen = 10

// Bundle is the asset set one build emits.
type Bundle struct {
	// CSSName and JSName are the fingerprinted filenames pages link to.
	CSSName string
	JSName  string

	css []byte
	js  []byte
}

// Build renders both assets from the masthead contract constants and
// fingerprints them.
func Build() (*Bundle, error) {
	css, err := renderAsset("site.css", stylesheetTemplate)
	if err != nil {
		return nil, err
	}
	js, err := renderAsset("header-height.js", headerScriptTemplate)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		CSSName: fmt.Sprintf("site.%s.css", Fingerprint(css)),
		JSName:  fmt.Sprintf("header-height.%s.js", Fingerprint(js)),
		css:     css,
		js:      js,
	}, nil
}

// CSS returns the stylesheet bytes.
func (b *Bundle) CSS() []byte { return b.css }

// JS returns the header script bytes.
func (b *Bundle) JS() []byte { return b.js }

// WriteTo writes both assets into dir, which must exist.
func (b *Bundle) WriteTo(dir string) error {
	files := []struct {
		name string
		data []byte
	}{
		{b.CSSName, b.css},
		{b.JSName, b.js},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0644); err != nil {
			return fmt.Errorf("writing asset: %w", err)
		}
	}
	return nil
}

// Fingerprint returns the short content hash embedded in asset filenames.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))[:fingerprintLen]
}

func renderAsset(name, src string) ([]byte, error) {
	tmpl, err := template.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"Selector": masthead.Selector,
		"Var":      masthead.HeightVar,
		"Fallback": masthead.FallbackHeight,
		"Unit":     masthead.Unit,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
