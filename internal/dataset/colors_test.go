package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMap_FixedCategories(t *testing.T) {
	colors := ColorMap([]string{"Dairy", "Poultry", "Fish & Seafood"})

	assert.Equal(t, "#9370DB", colors["Dairy"])
	assert.Equal(t, "#FF7F0E", colors["Poultry"])
	assert.Equal(t, "#1F77B4", colors["Fish & Seafood"])
}

func TestColorMap_FallbackSkipsFixedAssignments(t *testing.T) {
	// Fixed categories do not consume palette slots: Alpha and Gamma take
	// consecutive colors even with Dairy between them.
	colors := ColorMap([]string{"Alpha", "Dairy", "Gamma"})

	assert.Equal(t, "#1F77B4", colors["Alpha"])
	assert.Equal(t, "#9370DB", colors["Dairy"])
	assert.Equal(t, "#FF7F0E", colors["Gamma"])
}

func TestColorMap_PaletteWrapsAroundAfterTen(t *testing.T) {
	var cats []string
	for i := 0; i < 11; i++ {
		cats = append(cats, fmt.Sprintf("Custom %02d", i))
	}

	colors := ColorMap(cats)

	assert.Equal(t, colors["Custom 00"], colors["Custom 10"])
	assert.Equal(t, "#17BECF", colors["Custom 09"])
}
