package site

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/provislabs/provis/internal/dataset"
)

//go:embed templates
var templateFS embed.FS

// document is one rendered output file.
type document struct {
	file string
	body []byte
}

// renderer executes the page templates with the identity and asset names
// every page shares.
type renderer struct {
	tmpl     *template.Template
	siteName string
	baseURL  string
	cssName  string
	jsName   string
}

func newRenderer(siteName, baseURL, cssName, jsName string) (*renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &renderer{
		tmpl:     tmpl,
		siteName: siteName,
		baseURL:  baseURL,
		cssName:  cssName,
		jsName:   jsName,
	}, nil
}

// headData fills the seohead partial.
type headData struct {
	Title     string
	SiteName  string
	Canonical string
	Desc      string
	OGType    string
}

func (r *renderer) head(p Page) headData {
	return headData{
		Title:     p.Title,
		SiteName:  r.siteName,
		Canonical: r.baseURL + "/" + p.File,
		Desc:      p.Desc,
		OGType:    p.OGType,
	}
}

type indexData struct {
	SiteName string
	CSSName  string
	JSName   string
	JSONLD   template.JS
}

type chart3DData struct {
	Head    headData
	CSSName string
	JSName  string
	Data    template.JS
	Layout  template.JS
	Config  template.JS
	BaseEye template.JS
}

type chart2DData struct {
	Head       headData
	CSSName    string
	JSName     string
	Data       template.JS
	Layout     template.JS
	Config     template.JS
	XLabel     template.JS
	YLabel     template.JS
	MoneyX     template.JS
	MoneyY     template.JS
	InitXRange template.JS
	InitYRange template.JS
}

type tableData struct {
	Head    headData
	CSSName string
	JSName  string
	Rows    []TableRow
}

type rankingData struct {
	Head    headData
	CSSName string
	JSName  string
	Heading string
	Note    template.HTML
	Headers []string
	Rows    [][]string
}

// jsEncoder marshals values for script blocks, keeping the first error.
type jsEncoder struct {
	err error
}

func (e *jsEncoder) encode(v interface{}) template.JS {
	if e.err != nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		e.err = fmt.Errorf("marshaling script value: %w", err)
		return ""
	}
	return template.JS(data)
}

func plotConfig() PlotConfig {
	return PlotConfig{ScrollZoom: true, DisplayLogo: false}
}

// renderAll renders every page in sitemap order.
func (r *renderer) renderAll(t *dataset.Table) ([]document, error) {
	docs := make([]document, 0, len(PageFiles()))

	index, err := r.renderIndex()
	if err != nil {
		return nil, err
	}
	docs = append(docs, index)

	chart3d, err := r.renderChart3D(t)
	if err != nil {
		return nil, err
	}
	docs = append(docs, chart3d)

	for _, spec := range chart2DSpecs(t.Ranges) {
		doc, err := r.renderChart2D(t, spec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	table, err := r.renderDataTable(t)
	if err != nil {
		return nil, err
	}
	docs = append(docs, table)

	for _, spec := range rankingSpecs() {
		doc, err := r.renderRanking(t, spec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (r *renderer) renderIndex() (document, error) {
	ld, err := r.jsonLD()
	if err != nil {
		return document{}, err
	}
	return r.render(pageIndex.File, "index.html.tmpl", indexData{
		SiteName: r.siteName,
		CSSName:  r.cssName,
		JSName:   r.jsName,
		JSONLD:   ld,
	})
}

func (r *renderer) renderChart3D(t *dataset.Table) (document, error) {
	enc := &jsEncoder{}
	data := chart3DData{
		Head:    r.head(page3D),
		CSSName: r.cssName,
		JSName:  r.jsName,
		Data:    enc.encode(Traces3D(t)),
		Layout:  enc.encode(NewLayout3D(t.Ranges)),
		Config:  enc.encode(plotConfig()),
		BaseEye: enc.encode(baseEye),
	}
	if enc.err != nil {
		return document{}, enc.err
	}
	return r.render(page3D.File, "chart3d.html.tmpl", data)
}

func (r *renderer) renderChart2D(t *dataset.Table, spec chart2D) (document, error) {
	enc := &jsEncoder{}
	data := chart2DData{
		Head:       r.head(spec.page),
		CSSName:    r.cssName,
		JSName:     r.jsName,
		Data:       enc.encode(Traces2D(t, spec.x, spec.y)),
		Layout:     enc.encode(NewLayout2D(spec.x, spec.y, spec.xRange, spec.yRange)),
		Config:     enc.encode(plotConfig()),
		XLabel:     enc.encode(spec.x.Label()),
		YLabel:     enc.encode(spec.y.Label()),
		MoneyX:     enc.encode(spec.x.Money()),
		MoneyY:     enc.encode(spec.y.Money()),
		InitXRange: enc.encode(spec.xRange),
		InitYRange: enc.encode(spec.yRange),
	}
	if enc.err != nil {
		return document{}, enc.err
	}
	return r.render(spec.page.File, "chart2d.html.tmpl", data)
}

func (r *renderer) renderDataTable(t *dataset.Table) (document, error) {
	return r.render(pageTable.File, "datatable.html.tmpl", tableData{
		Head:    r.head(pageTable),
		CSSName: r.cssName,
		JSName:  r.jsName,
		Rows:    TableRows(t),
	})
}

func (r *renderer) renderRanking(t *dataset.Table, spec rankingSpec) (document, error) {
	rows := make([][]string, 0, rankLimit)
	for _, f := range spec.rank(t, rankLimit) {
		rows = append(rows, spec.row(f))
	}
	return r.render(spec.page.File, "ranking.html.tmpl", rankingData{
		Head:    r.head(spec.page),
		CSSName: r.cssName,
		JSName:  r.jsName,
		Heading: spec.heading,
		Note:    spec.note,
		Headers: spec.headers,
		Rows:    rows,
	})
}

func (r *renderer) render(file, name string, data interface{}) (document, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return document{}, fmt.Errorf("rendering %s: %w", file, err)
	}
	return document{file: file, body: buf.Bytes()}, nil
}

// jsonLDSite is the WebSite structured data block on the homepage.
type jsonLDSite struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	URL             string       `json:"url"`
	PotentialAction jsonLDSearch `json:"potentialAction"`
}

type jsonLDSearch struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

func (r *renderer) jsonLD() (template.JS, error) {
	site := jsonLDSite{
		Context: "https://schema.org",
		Type:    "WebSite",
		Name:    r.siteName,
		URL:     r.baseURL,
		PotentialAction: jsonLDSearch{
			Type:       "SearchAction",
			Target:     r.baseURL + "/data_table.html?q={search_term_string}",
			QueryInput: "required name=search_term_string",
		},
	}
	data, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON-LD: %w", err)
	}
	return template.JS(data), nil
}
