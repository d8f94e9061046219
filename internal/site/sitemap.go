package site

import (
	"bytes"
	"fmt"
	texttemplate "text/template"
	"time"
)

// sitemapTmpl is parsed with text/template: the sitemap carries no
// user-supplied values, and HTML escaping would mangle the XML prolog.
var sitemapTmpl = texttemplate.Must(
	texttemplate.ParseFS(templateFS, "templates/sitemap.xml.tmpl"),
)

// Sitemap renders sitemap.xml listing every page, stamped with now.
func Sitemap(baseURL string, now time.Time) ([]byte, error) {
	data := struct {
		URLs    []string
		LastMod string
	}{
		LastMod: now.UTC().Format("2006-01-02T15:04:05Z"),
	}
	for _, p := range PageFiles() {
		data.URLs = append(data.URLs, baseURL+"/"+p)
	}

	var buf bytes.Buffer
	if err := sitemapTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", baseURL))
}
