// Package dataset loads the foods CSV and derives the per-10g-protein
// metrics every page of the site is built from.
//
// All derived values normalize each food to the amount delivering exactly
// 10g of protein: the grams of food required, and the calories and cost of
// that amount. Normalizing to a fixed protein quantity is what makes foods
// with wildly different densities comparable on one chart.
package dataset

import (
	"sort"
)

// CSV column headers. Order in the file does not matter; extra columns are
// ignored.
const (
	ColFood     = "Food"
	ColCalories = "Calories_per_gram"
	ColProtein  = "Protein_per_gram"
	ColCost     = "Cost_per_gram"
	ColCategory = "Category"
)

// ProteinTarget is the protein quantity, in grams, every food is normalized
// to.
const ProteinTarget = 10.0

// rangeHeadroom pads axis ranges past the largest value so the outermost
// markers are not clipped by the plot frame.
const rangeHeadroom = 1.1

// Food is one cleaned CSV row plus its derived metrics.
type Food struct {
	Name     string
	Category string

	CaloriesPerGram float64
	ProteinPerGram  float64
	CostPerGram     float64

	// Normalized to ProteinTarget grams of protein.
	GramsFor10g    float64
	CaloriesFor10g float64
	CostFor10g     float64
}

// Ranges are the axis bounds for the charts, each padded headroom past the
// dataset maximum. Lower bounds are always zero.
type Ranges struct {
	CaloriesMax float64
	CostMax     float64
	GramsMax    float64
}

// Table is the cleaned, derived dataset the site renders from. Foods keep
// their CSV order; Categories are sorted and unique.
type Table struct {
	Foods      []Food
	Categories []string
	Colors     map[string]string
	Ranges     Ranges
}

// derive fills the normalized metrics, category index, color map, and axis
// ranges. Foods must already be cleaned (positive protein).
func (t *Table) derive() {
	seen := make(map[string]bool)
	for i := range t.Foods {
		f := &t.Foods[i]
		f.GramsFor10g = ProteinTarget / f.ProteinPerGram
		f.CaloriesFor10g = f.GramsFor10g * f.CaloriesPerGram
		f.CostFor10g = f.GramsFor10g * f.CostPerGram

		if f.CaloriesFor10g > t.Ranges.CaloriesMax {
			t.Ranges.CaloriesMax = f.CaloriesFor10g
		}
		if f.CostFor10g > t.Ranges.CostMax {
			t.Ranges.CostMax = f.CostFor10g
		}
		if f.GramsFor10g > t.Ranges.GramsMax {
			t.Ranges.GramsMax = f.GramsFor10g
		}

		if !seen[f.Category] {
			seen[f.Category] = true
			t.Categories = append(t.Categories, f.Category)
		}
	}
	sort.Strings(t.Categories)

	t.Ranges.CaloriesMax *= rangeHeadroom
	t.Ranges.CostMax *= rangeHeadroom
	t.Ranges.GramsMax *= rangeHeadroom

	t.Colors = ColorMap(t.Categories)
}

// ByCategory returns the foods in cat, preserving CSV order.
func (t *Table) ByCategory(cat string) []Food {
	var out []Food
	for _, f := range t.Foods {
		if f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}

// RankByCost returns up to n foods ordered by cost per 10g protein,
// cheapest first. Ties keep CSV order.
func (t *Table) RankByCost(n int) []Food {
	return t.rank(n, func(a, b Food) bool { return a.CostFor10g < b.CostFor10g })
}

// RankByCalories returns up to n foods ordered by calories per 10g protein,
// leanest first. Ties keep CSV order.
func (t *Table) RankByCalories(n int) []Food {
	return t.rank(n, func(a, b Food) bool { return a.CaloriesFor10g < b.CaloriesFor10g })
}

func (t *Table) rank(n int, less func(a, b Food) bool) []Food {
	out := make([]Food, len(t.Foods))
	copy(out, t.Foods)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n < len(out) {
		out = out[:n]
	}
	return out
}
