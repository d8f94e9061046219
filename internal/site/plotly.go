package site

import (
	"github.com/provislabs/provis/internal/dataset"
)

// Axis labels shared by chart layouts, hover templates, and the hover
// infobox script.
const (
	labelCalories = "Calories (per 10g protein)"
	labelCost     = "Cost (per 10g protein)"
	labelGrams    = "Weight, in grams (per 10g protein)"
)

// Metric selects one derived dataset column for a chart axis.
type Metric int

const (
	MetricCalories Metric = iota
	MetricCost
	MetricGrams
)

// Label returns the axis label for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricCost:
		return labelCost
	case MetricGrams:
		return labelGrams
	default:
		return labelCalories
	}
}

// Money reports whether the metric is a dollar amount, which gets a $ tick
// prefix and two-decimal formatting wherever it appears.
func (m Metric) Money() bool { return m == MetricCost }

func (m Metric) value(f dataset.Food) float64 {
	switch m {
	case MetricCost:
		return f.CostFor10g
	case MetricGrams:
		return f.GramsFor10g
	default:
		return f.CaloriesFor10g
	}
}

// The structs below mirror the subset of the Plotly schema the charts use.
// Field order matters only for readability of the emitted JSON; Plotly
// accepts any order.

// Line is a marker outline.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Marker styles one trace's points.
type Marker struct {
	Size    int     `json:"size"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity,omitempty"`
	Line    *Line   `json:"line,omitempty"`
}

// Trace is one category's point set.
type Trace struct {
	Type          string    `json:"type"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	Z             []float64 `json:"z,omitempty"`
	Mode          string    `json:"mode"`
	Marker        Marker    `json:"marker"`
	Text          []string  `json:"text"`
	HoverTemplate string    `json:"hovertemplate"`
	Name          string    `json:"name"`
	LegendGroup   string    `json:"legendgroup"`
}

// Title wraps the text of an axis or legend title.
type Title struct {
	Text string `json:"text"`
}

// SceneAxis is one axis of the 3D scene.
type SceneAxis struct {
	Title      Title     `json:"title"`
	Range      []float64 `json:"range"`
	Ticks      string    `json:"ticks"`
	TickPrefix string    `json:"tickprefix,omitempty"`
	TickFormat string    `json:"tickformat,omitempty"`
}

// Eye is the 3D camera position.
type Eye struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Camera holds the scene viewpoint.
type Camera struct {
	Eye Eye `json:"eye"`
}

// Scene is the 3D plot area.
type Scene struct {
	XAxis      SceneAxis `json:"xaxis"`
	YAxis      SceneAxis `json:"yaxis"`
	ZAxis      SceneAxis `json:"zaxis"`
	Camera     Camera    `json:"camera"`
	AspectMode string    `json:"aspectmode"`
}

// Legend styles the category legend.
type Legend struct {
	Title       Title   `json:"title"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	TraceOrder  string  `json:"traceorder,omitempty"`
	BgColor     string  `json:"bgcolor,omitempty"`
	BorderColor string  `json:"bordercolor,omitempty"`
	BorderWidth float64 `json:"borderwidth,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout3D is the 3D page layout.
type Layout3D struct {
	Scene      Scene  `json:"scene"`
	Legend     Legend `json:"legend"`
	Margin     Margin `json:"margin"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	ShowLegend bool   `json:"showlegend"`
}

// FlatAxis is one axis of a 2D plot. Ranges are always pinned, never
// autoranged: the page script clamps pans back into the positive quadrant
// and needs the initial range as its reference.
type FlatAxis struct {
	Title         Title     `json:"title"`
	Range         []float64 `json:"range"`
	AutoRange     bool      `json:"autorange"`
	ShowGrid      bool      `json:"showgrid"`
	GridColor     string    `json:"gridcolor"`
	ZeroLine      bool      `json:"zeroline"`
	ZeroLineColor string    `json:"zerolinecolor"`
	ZeroLineWidth float64   `json:"zerolinewidth"`
	TickPrefix    string    `json:"tickprefix,omitempty"`
	TickFormat    string    `json:"tickformat,omitempty"`
}

// Layout2D is a 2D page layout.
type Layout2D struct {
	XAxis      FlatAxis `json:"xaxis"`
	YAxis      FlatAxis `json:"yaxis"`
	Legend     Legend   `json:"legend"`
	Margin     Margin   `json:"margin"`
	Height     int      `json:"height"`
	Width      int      `json:"width"`
	ShowLegend bool     `json:"showlegend"`
}

// PlotConfig is the Plotly bootstrap configuration for every chart.
type PlotConfig struct {
	ScrollZoom  bool `json:"scrollZoom"`
	DisplayLogo bool `json:"displaylogo"`
}

const hover3D = "<b>%{text}</b><br>" +
	"<b>" + labelCalories + ":</b> %{x:.2f}<br>" +
	"<b>" + labelCost + ":</b> $%{y:.2f}<br>" +
	"<b>" + labelGrams + ":</b> %{z:.2f}<br>" +
	"<extra></extra>"

// Traces3D builds one scatter3d trace per category, in category order, with
// calories on x, cost on y, and grams on z.
func Traces3D(t *dataset.Table) []Trace {
	var traces []Trace
	for _, cat := range t.Categories {
		foods := t.ByCategory(cat)
		if len(foods) == 0 {
			continue
		}
		tr := Trace{
			Type: "scatter3d",
			Mode: "markers",
			Marker: Marker{
				Size:    5,
				Color:   t.Colors[cat],
				Opacity: 0.9,
				Line:    &Line{Color: "rgba(0,0,0,0.8)", Width: 2},
			},
			HoverTemplate: hover3D,
			Name:          cat,
			LegendGroup:   cat,
		}
		for _, f := range foods {
			tr.X = append(tr.X, f.CaloriesFor10g)
			tr.Y = append(tr.Y, f.CostFor10g)
			tr.Z = append(tr.Z, f.GramsFor10g)
			tr.Text = append(tr.Text, f.Name)
		}
		traces = append(traces, tr)
	}
	return traces
}

// Traces2D builds one scatter trace per category for the given axis pair.
func Traces2D(t *dataset.Table, x, y Metric) []Trace {
	hover := hover2D(x, y)
	var traces []Trace
	for _, cat := range t.Categories {
		foods := t.ByCategory(cat)
		if len(foods) == 0 {
			continue
		}
		tr := Trace{
			Type: "scatter",
			Mode: "markers",
			Marker: Marker{
				Size:  9,
				Color: t.Colors[cat],
				Line:  &Line{Color: "rgba(0,0,0,0.6)", Width: 1},
			},
			HoverTemplate: hover,
			Name:          cat,
			LegendGroup:   cat,
		}
		for _, f := range foods {
			tr.X = append(tr.X, x.value(f))
			tr.Y = append(tr.Y, y.value(f))
			tr.Text = append(tr.Text, f.Name)
		}
		traces = append(traces, tr)
	}
	return traces
}

func hover2D(x, y Metric) string {
	xFmt, yFmt := "%{x:.2f}", "%{y:.2f}"
	if x.Money() {
		xFmt = "$" + xFmt
	}
	if y.Money() {
		yFmt = "$" + yFmt
	}
	return "<b>%{text}</b><br>" +
		"<b>" + x.Label() + ":</b> " + xFmt + "<br>" +
		"<b>" + y.Label() + ":</b> " + yFmt +
		"<extra></extra>"
}

// baseEye is the home camera position the reset control returns to.
var baseEye = Eye{X: 1.6, Y: 1.6, Z: 1.2}

// NewLayout3D builds the 3D scene layout with axes pinned to the dataset
// ranges.
func NewLayout3D(r dataset.Ranges) Layout3D {
	return Layout3D{
		Scene: Scene{
			XAxis: SceneAxis{Title: Title{labelCalories}, Range: []float64{0, r.CaloriesMax}, Ticks: "outside"},
			YAxis: SceneAxis{
				Title: Title{labelCost}, Range: []float64{0, r.CostMax}, Ticks: "outside",
				TickPrefix: "$", TickFormat: ".2f",
			},
			ZAxis:      SceneAxis{Title: Title{labelGrams}, Range: []float64{0, r.GramsMax}, Ticks: "outside"},
			Camera:     Camera{Eye: baseEye},
			AspectMode: "cube",
		},
		Legend: Legend{
			Title: Title{"Categories"}, X: 1.05, Y: 1, TraceOrder: "normal",
			BgColor: "rgba(255,255,255,0.8)", BorderColor: "rgba(255,255,255,0.8)", BorderWidth: 2,
		},
		Margin:     Margin{L: 25, R: 0, T: 5, B: 50},
		Height:     740,
		Width:      850,
		ShowLegend: true,
	}
}

// NewLayout2D builds a 2D layout with both axes pinned to explicit ranges.
func NewLayout2D(x, y Metric, xRange, yRange []float64) Layout2D {
	return Layout2D{
		XAxis:      flatAxis(x, xRange),
		YAxis:      flatAxis(y, yRange),
		Legend:     Legend{Title: Title{"Category"}},
		Margin:     Margin{L: 50, R: 0, T: 5, B: 50},
		Height:     490,
		Width:      800,
		ShowLegend: true,
	}
}

func flatAxis(m Metric, r []float64) FlatAxis {
	ax := FlatAxis{
		Title:         Title{m.Label()},
		Range:         r,
		ShowGrid:      true,
		GridColor:     "lightgray",
		ZeroLine:      true,
		ZeroLineColor: "black",
		ZeroLineWidth: 2,
	}
	if m.Money() {
		ax.TickPrefix = "$"
		ax.TickFormat = ".2f"
	}
	return ax
}
