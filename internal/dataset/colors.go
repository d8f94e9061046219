package dataset

// fixedColors pins well-known categories to stable colors so charts stay
// visually consistent as the dataset grows.
var fixedColors = map[string]string{
	"Vegetables":         "#32CD32",
	"Grains":             "#D2B48C",
	"Animal Protein":     "#FF4500",
	"Plant Protein":      "#228B22",
	"Supplement Protein": "#1E90FF",
	"Dairy":              "#9370DB",
	"Poultry":            "#FF7F0E",
	"Fish & Seafood":     "#1F77B4",
	"Red Meat & Game":    "#8C564B",
	"Eggs":               "#9467BD",
	"Legumes":            "#2CA02C",
	"Soy":                "#17BECF",
	"Nuts & Seeds":       "#BCBD22",
	"Supplements":        "#1E90FF",
}

// fallbackPalette colors categories without a fixed assignment.
var fallbackPalette = []string{
	"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
	"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
}

// ColorMap assigns a hex color to every category. Fixed assignments win; the
// rest cycle through the fallback palette in the order the categories are
// given, so a sorted input yields a stable map regardless of row order.
func ColorMap(categories []string) map[string]string {
	colors := make(map[string]string, len(categories))
	p := 0
	for _, cat := range categories {
		if c, ok := fixedColors[cat]; ok {
			colors[cat] = c
			continue
		}
		colors[cat] = fallbackPalette[p%len(fallbackPalette)]
		p++
	}
	return colors
}
