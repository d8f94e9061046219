package site

import (
	"fmt"
	"html/template"

	"github.com/provislabs/provis/internal/dataset"
)

// Page is one emitted HTML document.
type Page struct {
	// File is the output filename, which is also the URL path segment used
	// for canonical links and the sitemap.
	File   string
	Title  string
	Desc   string
	OGType string
}

var (
	pageIndex = Page{File: "index.html"}

	page3D = Page{
		File:   "3d_plot.html",
		Title:  "3D — Calories vs Cost vs Weight (per 10g protein)",
		Desc:   "Interactive 3D chart comparing weight (grams), cost, and calories per 10g protein across many foods and categories.",
		OGType: "website",
	}
	page2D1 = Page{
		File:   "2d_plot1.html",
		Title:  "2D — Calories vs Cost (per 10g protein)",
		Desc:   "Interactive chart comparing calories vs cost per 10g protein across many foods and categories.",
		OGType: "website",
	}
	page2D2 = Page{
		File:   "2d_plot2.html",
		Title:  "2D — Calories vs Weight (per 10g protein)",
		Desc:   "Interactive chart comparing calories per 10g protein vs grams required for 10g protein across many foods.",
		OGType: "website",
	}
	page2D3 = Page{
		File:   "2d_plot3.html",
		Title:  "2D — Cost vs Weight (per 10g protein)",
		Desc:   "Interactive chart comparing cost per 10g protein vs grams required for 10g protein across many foods.",
		OGType: "website",
	}
	pageTable = Page{
		File:   "data_table.html",
		Title:  "Input Data",
		Desc:   "Sortable table of calories, cost, and weight (grams) per 10g protein for foods and supplements.",
		OGType: "website",
	}
	pageBestCost = Page{
		File:   "best-cost-proteins.html",
		Title:  "Best Cost-Efficient Proteins (per 10g protein)",
		Desc:   "Ranked list of the most cost-efficient protein sources per 10g protein with calories and weight required.",
		OGType: "article",
	}
	pageLowCal = Page{
		File:   "low-calorie-proteins.html",
		Title:  "Low-Calorie Protein Picks (per 10g protein)",
		Desc:   "Lowest calorie protein sources per 10g protein, with cost and grams required.",
		OGType: "article",
	}
)

// PageFiles returns every page filename in sitemap order.
func PageFiles() []string {
	return []string{
		pageIndex.File,
		page3D.File,
		page2D1.File,
		page2D2.File,
		page2D3.File,
		pageTable.File,
		pageBestCost.File,
		pageLowCal.File,
	}
}

// chart2D pairs a 2D page with its axis metrics and pinned ranges.
type chart2D struct {
	page   Page
	x, y   Metric
	xRange []float64
	yRange []float64
}

// chart2DSpecs returns the three 2D chart pages. Cost axes span a fixed
// dollar rather than the dataset cost range.
func chart2DSpecs(r dataset.Ranges) []chart2D {
	return []chart2D{
		{page: page2D1, x: MetricCalories, y: MetricCost, xRange: []float64{0, r.CaloriesMax}, yRange: []float64{0, 1}},
		{page: page2D2, x: MetricCalories, y: MetricGrams, xRange: []float64{0, r.CaloriesMax}, yRange: []float64{0, r.GramsMax}},
		{page: page2D3, x: MetricCost, y: MetricGrams, xRange: []float64{0, 1}, yRange: []float64{0, r.GramsMax}},
	}
}

// TableRow is one formatted data table row.
type TableRow struct {
	Food     string
	Category string
	Calories string
	Cost     string
	Weight   string
}

// TableRows formats every food for the data table page, in dataset order.
func TableRows(t *dataset.Table) []TableRow {
	rows := make([]TableRow, 0, len(t.Foods))
	for _, f := range t.Foods {
		rows = append(rows, TableRow{
			Food:     f.Name,
			Category: f.Category,
			Calories: fmtNum(f.CaloriesFor10g),
			Cost:     fmtMoney(f.CostFor10g),
			Weight:   fmtNum(f.GramsFor10g),
		})
	}
	return rows
}

func fmtNum(v float64) string   { return fmt.Sprintf("%.2f", v) }
func fmtMoney(v float64) string { return fmt.Sprintf("$%.2f", v) }

// rankLimit caps the explainer page tables.
const rankLimit = 15

// rankingSpec describes one explainer page: a heading, an intro note
// linking back into the charts, and a ranked top-N table.
type rankingSpec struct {
	page    Page
	heading string
	note    template.HTML
	headers []string
	rank    func(*dataset.Table, int) []dataset.Food
	row     func(dataset.Food) []string
}

func rankingSpecs() []rankingSpec {
	return []rankingSpec{
		{
			page:    pageBestCost,
			heading: "Best Cost-Efficient Proteins (per 10g protein)",
			note: template.HTML(`These foods have the lowest <b>cost per 10g protein</b>. ` +
				`Use the interactive <a href="/2d_plot3.html" class="links">Cost vs Weight</a> and ` +
				`<a href="/2d_plot1.html" class="links">Calories vs Cost</a> charts to explore further.`),
			headers: []string{"Food", "Category", "Cost", "Calories", "Weight (g)"},
			rank:    (*dataset.Table).RankByCost,
			row: func(f dataset.Food) []string {
				return []string{f.Name, f.Category, fmtMoney(f.CostFor10g), fmtNum(f.CaloriesFor10g), fmtNum(f.GramsFor10g)}
			},
		},
		{
			page:    pageLowCal,
			heading: "Low-Calorie Protein Picks (per 10g protein)",
			note: template.HTML(`These foods deliver protein with the <b>fewest calories per 10g protein</b>. ` +
				`Compare visually in <a href="/2d_plot2.html" class="links">Calories vs Weight</a> and ` +
				`<a href="/2d_plot1.html" class="links">Calories vs Cost</a>.`),
			headers: []string{"Food", "Category", "Calories", "Cost", "Weight (g)"},
			rank:    (*dataset.Table).RankByCalories,
			row: func(f dataset.Food) []string {
				return []string{f.Name, f.Category, fmtNum(f.CaloriesFor10g), fmtMoney(f.CostFor10g), fmtNum(f.GramsFor10g)}
			},
		},
	}
}
