package site

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provislabs/provis/internal/dataset"
)

func loadTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.Load(filepath.Join("testdata", "foods.csv"))
	require.NoError(t, err)
	return table
}

func TestTraces3D_OneTracePerCategory(t *testing.T) {
	table := loadTable(t)

	traces := Traces3D(table)

	require.Len(t, traces, 7)
	for i, tr := range traces {
		assert.Equal(t, "scatter3d", tr.Type)
		assert.Equal(t, "markers", tr.Mode)
		assert.Equal(t, table.Categories[i], tr.Name)
		assert.Equal(t, tr.Name, tr.LegendGroup)
		assert.Equal(t, table.Colors[tr.Name], tr.Marker.Color)
	}
}

func TestTraces3D_AxesCarryDerivedValues(t *testing.T) {
	table := loadTable(t)

	traces := Traces3D(table)

	// Categories sort alphabetically, so Dairy (Greek Yogurt) leads.
	dairy := traces[0]
	assert.Equal(t, "Dairy", dairy.Name)
	assert.Equal(t, []float64{59}, dairy.X)
	assert.Equal(t, []float64{0.5}, dairy.Y)
	assert.Equal(t, []float64{100}, dairy.Z)
	assert.Equal(t, []string{"Greek Yogurt"}, dairy.Text)
}

func TestTraces3D_MarkerStyle(t *testing.T) {
	table := loadTable(t)

	tr := Traces3D(table)[0]

	assert.Equal(t, 5, tr.Marker.Size)
	assert.Equal(t, 0.9, tr.Marker.Opacity)
	require.NotNil(t, tr.Marker.Line)
	assert.Equal(t, "rgba(0,0,0,0.8)", tr.Marker.Line.Color)
	assert.Equal(t, float64(2), tr.Marker.Line.Width)
}

func TestTraces3D_HoverTemplate(t *testing.T) {
	table := loadTable(t)

	tr := Traces3D(table)[0]

	assert.Contains(t, tr.HoverTemplate, "Calories (per 10g protein):</b> %{x:.2f}")
	assert.Contains(t, tr.HoverTemplate, "Cost (per 10g protein):</b> $%{y:.2f}")
	assert.Contains(t, tr.HoverTemplate, "Weight, in grams (per 10g protein):</b> %{z:.2f}")
	assert.Contains(t, tr.HoverTemplate, "<extra></extra>")
}

func TestTraces2D_AxisSelection(t *testing.T) {
	table := loadTable(t)

	traces := Traces2D(table, MetricCost, MetricGrams)

	require.Len(t, traces, 7)
	dairy := traces[0]
	assert.Equal(t, "scatter", dairy.Type)
	assert.Equal(t, []float64{0.5}, dairy.X)
	assert.Equal(t, []float64{100}, dairy.Y)
	assert.Nil(t, dairy.Z)
	assert.Equal(t, 9, dairy.Marker.Size)
	assert.Zero(t, dairy.Marker.Opacity)
	require.NotNil(t, dairy.Marker.Line)
	assert.Equal(t, "rgba(0,0,0,0.6)", dairy.Marker.Line.Color)
	assert.Equal(t, float64(1), dairy.Marker.Line.Width)
}

func TestTraces2D_HoverFormatsMoneyAxisOnly(t *testing.T) {
	table := loadTable(t)

	tr := Traces2D(table, MetricCost, MetricGrams)[0]

	want := "<b>%{text}</b><br>" +
		"<b>Cost (per 10g protein):</b> $%{x:.2f}<br>" +
		"<b>Weight, in grams (per 10g protein):</b> %{y:.2f}" +
		"<extra></extra>"
	assert.Equal(t, want, tr.HoverTemplate)
}

func TestNewLayout3D_PinsRangesWithHeadroom(t *testing.T) {
	table := loadTable(t)

	layout := NewLayout3D(table.Ranges)

	assert.Equal(t, []float64{0, 258.72}, layout.Scene.XAxis.Range)
	assert.Equal(t, []float64{0, 0.55}, layout.Scene.YAxis.Range)
	assert.Equal(t, []float64{0, 137.5}, layout.Scene.ZAxis.Range)
	assert.Equal(t, "$", layout.Scene.YAxis.TickPrefix)
	assert.Equal(t, ".2f", layout.Scene.YAxis.TickFormat)
	assert.Empty(t, layout.Scene.XAxis.TickPrefix)
	assert.Equal(t, Eye{X: 1.6, Y: 1.6, Z: 1.2}, layout.Scene.Camera.Eye)
	assert.Equal(t, "cube", layout.Scene.AspectMode)
	assert.Equal(t, 740, layout.Height)
	assert.Equal(t, 850, layout.Width)
	assert.True(t, layout.ShowLegend)
}

func TestNewLayout3D_LegendPlacement(t *testing.T) {
	layout := NewLayout3D(dataset.Ranges{CaloriesMax: 1, CostMax: 1, GramsMax: 1})

	assert.Equal(t, "Categories", layout.Legend.Title.Text)
	assert.Equal(t, 1.05, layout.Legend.X)
	assert.Equal(t, float64(1), layout.Legend.Y)
	assert.Equal(t, "normal", layout.Legend.TraceOrder)
	assert.Equal(t, Margin{L: 25, R: 0, T: 5, B: 50}, layout.Margin)
}

func TestNewLayout2D_MoneyAxisTicks(t *testing.T) {
	layout := NewLayout2D(MetricCalories, MetricCost, []float64{0, 258.72}, []float64{0, 1})

	assert.Equal(t, "Calories (per 10g protein)", layout.XAxis.Title.Text)
	assert.Empty(t, layout.XAxis.TickPrefix)
	assert.Equal(t, "$", layout.YAxis.TickPrefix)
	assert.Equal(t, ".2f", layout.YAxis.TickFormat)
	assert.Equal(t, []float64{0, 1}, layout.YAxis.Range)
	assert.False(t, layout.XAxis.AutoRange)
	assert.Equal(t, "lightgray", layout.XAxis.GridColor)
	assert.True(t, layout.XAxis.ZeroLine)
	assert.Equal(t, "black", layout.XAxis.ZeroLineColor)
	assert.Equal(t, float64(2), layout.XAxis.ZeroLineWidth)
	assert.Equal(t, 490, layout.Height)
	assert.Equal(t, 800, layout.Width)
	assert.Equal(t, "Category", layout.Legend.Title.Text)
}

func TestMetric_LabelAndMoney(t *testing.T) {
	assert.Equal(t, "Calories (per 10g protein)", MetricCalories.Label())
	assert.Equal(t, "Cost (per 10g protein)", MetricCost.Label())
	assert.Equal(t, "Weight, in grams (per 10g protein)", MetricGrams.Label())
	assert.False(t, MetricCalories.Money())
	assert.True(t, MetricCost.Money())
	assert.False(t, MetricGrams.Money())
}
