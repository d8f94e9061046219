package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/provislabs/provis/masthead"
)

// Problem is one verification finding.
type Problem struct {
	File string `json:"file"`
	Msg  string `json:"msg"`
}

func (p Problem) String() string { return p.File + ": " + p.Msg }

// VerifyError reports a failed verification pass over an emitted tree.
type VerifyError struct {
	Dir      string
	Problems []Problem
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("site verification found %d problem(s) in %s, first: %s",
		len(e.Problems), e.Dir, e.Problems[0])
}

// Verify checks an emitted site tree: every page exists and parses, the
// header element appears exactly once on the homepage and never inside the
// framed pages, every local reference resolves to a file, and the sitemap
// covers the full page set. Findings come back as problems; the error is
// reserved for an unreadable tree.
func Verify(dir string) ([]Problem, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("site directory: %w", err)
	}

	headerClass := strings.TrimPrefix(masthead.Selector, ".")
	var problems []Problem

	for _, page := range PageFiles() {
		data, err := os.ReadFile(filepath.Join(dir, page))
		if err != nil {
			problems = append(problems, Problem{File: page, Msg: "missing"})
			continue
		}
		if len(data) == 0 {
			problems = append(problems, Problem{File: page, Msg: "empty"})
			continue
		}

		doc, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			problems = append(problems, Problem{File: page, Msg: fmt.Sprintf("parsing HTML: %v", err)})
			continue
		}

		headers := countClass(doc, headerClass)
		switch {
		case page == pageIndex.File && headers != 1:
			problems = append(problems, Problem{
				File: page,
				Msg:  fmt.Sprintf("expected one %s element, found %d", masthead.Selector, headers),
			})
		case page != pageIndex.File && headers != 0:
			problems = append(problems, Problem{
				File: page,
				Msg:  fmt.Sprintf("unexpected %s element in framed page", masthead.Selector),
			})
		}

		for _, ref := range localRefs(doc) {
			target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
			if _, err := os.Stat(target); err != nil {
				problems = append(problems, Problem{File: page, Msg: fmt.Sprintf("broken reference %q", ref)})
			}
		}
	}

	problems = append(problems, verifySitemap(dir)...)
	problems = append(problems, verifyRobots(dir)...)
	return problems, nil
}

func countClass(n *html.Node, class string) int {
	count := 0
	if n.Type == html.ElementNode && hasClass(n, class) {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countClass(c, class)
	}
	return count
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == class {
				return true
			}
		}
	}
	return false
}

// localRefs collects stylesheet, script, iframe, and download targets that
// should resolve inside the output tree. External URLs are skipped.
func localRefs(n *html.Node) []string {
	seen := make(map[string]bool)
	var refs []string

	add := func(ref string) {
		if ref == "" || seen[ref] {
			return
		}
		if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//") {
			return
		}
		seen[ref] = true
		refs = append(refs, ref)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "link":
				if attrVal(n, "rel") == "stylesheet" {
					add(attrVal(n, "href"))
				}
			case "script", "iframe":
				add(attrVal(n, "src"))
			case "a":
				if hasAttr(n, "download") {
					add(attrVal(n, "href"))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return refs
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

func verifySitemap(dir string) []Problem {
	const file = "sitemap.xml"
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return []Problem{{File: file, Msg: "missing"}}
	}

	var set urlset
	if err := xml.Unmarshal(data, &set); err != nil {
		return []Problem{{File: file, Msg: fmt.Sprintf("parsing XML: %v", err)}}
	}

	var problems []Problem
	if len(set.URLs) != len(PageFiles()) {
		problems = append(problems, Problem{
			File: file,
			Msg:  fmt.Sprintf("expected %d url entries, found %d", len(PageFiles()), len(set.URLs)),
		})
	}
	for _, page := range PageFiles() {
		found := false
		for _, u := range set.URLs {
			if strings.HasSuffix(u.Loc, "/"+page) {
				found = true
				break
			}
		}
		if !found {
			problems = append(problems, Problem{File: file, Msg: fmt.Sprintf("page %s not listed", page)})
		}
	}
	return problems
}

func verifyRobots(dir string) []Problem {
	const file = "robots.txt"
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return []Problem{{File: file, Msg: "missing"}}
	}
	if !strings.Contains(string(data), "Sitemap:") {
		return []Problem{{File: file, Msg: "no Sitemap directive"}}
	}
	return nil
}
