package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadValid(t *testing.T) *Table {
	t.Helper()
	table, err := Load(filepath.Join("testdata", "valid.csv"))
	require.NoError(t, err)
	return table
}

func TestTable_Derive_NormalizesToTenGramsProtein(t *testing.T) {
	table := loadValid(t)

	lentils := table.Foods[3]
	require.Equal(t, "Lentils (dry)", lentils.Name)
	assert.Equal(t, 40.0, lentils.GramsFor10g)
	assert.InDelta(t, 140.8, lentils.CaloriesFor10g, 1e-9)
	assert.InDelta(t, 0.12, lentils.CostFor10g, 1e-9)

	tofu := table.Foods[2]
	require.Equal(t, "Firm Tofu", tofu.Name)
	assert.Equal(t, 125.0, tofu.GramsFor10g)
	assert.InDelta(t, 87.5, tofu.CaloriesFor10g, 1e-9)
}

func TestTable_Ranges_PaddedPastMaxima(t *testing.T) {
	table := loadValid(t)

	// Maxima: Peanut Butter calories (235.2), Firm Tofu cost (0.50) and
	// grams (125), each padded by 10%.
	assert.InDelta(t, 258.72, table.Ranges.CaloriesMax, 1e-9)
	assert.InDelta(t, 0.55, table.Ranges.CostMax, 1e-9)
	assert.InDelta(t, 137.5, table.Ranges.GramsMax, 1e-9)
}

func TestTable_Colors_CoverEveryCategory(t *testing.T) {
	table := loadValid(t)

	for _, cat := range table.Categories {
		assert.Contains(t, table.Colors, cat)
	}
	assert.Equal(t, "#17BECF", table.Colors["Soy"])
	// The one category without a fixed color takes the first palette slot.
	assert.Equal(t, "#1F77B4", table.Colors["Wheat Protein"])
}

func TestTable_ByCategory(t *testing.T) {
	table := loadValid(t)

	soy := table.ByCategory("Soy")
	require.Len(t, soy, 1)
	assert.Equal(t, "Firm Tofu", soy[0].Name)

	assert.Empty(t, table.ByCategory("Unknown"))
}

func TestTable_RankByCost_CheapestFirst(t *testing.T) {
	table := loadValid(t)

	ranked := table.RankByCost(3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Lentils (dry)", ranked[0].Name)
	assert.Equal(t, "Peanut Butter", ranked[1].Name)
	assert.Equal(t, "Whey Isolate", ranked[2].Name)
}

func TestTable_RankByCost_TiesKeepInputOrder(t *testing.T) {
	table := loadValid(t)

	// Firm Tofu and Greek Yogurt cost exactly the same per 10g protein;
	// the earlier CSV row ranks first.
	ranked := table.RankByCost(len(table.Foods))
	require.Len(t, ranked, 7)
	assert.Equal(t, "Firm Tofu", ranked[5].Name)
	assert.Equal(t, "Greek Yogurt", ranked[6].Name)
}

func TestTable_RankByCalories_LeanestFirst(t *testing.T) {
	table := loadValid(t)

	ranked := table.RankByCalories(2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Whey Isolate", ranked[0].Name)
	assert.Equal(t, "Seitan", ranked[1].Name)
}

func TestTable_Rank_NLargerThanDataset(t *testing.T) {
	table := loadValid(t)

	ranked := table.RankByCalories(100)
	assert.Len(t, ranked, len(table.Foods))
}
