package site

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provislabs/provis/internal/testutil"
)

func testBuilder() *Builder {
	clock := testutil.NewFixedClock(time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	return &Builder{
		SiteName: "Protein Visualizer",
		BaseURL:  "https://example.com",
		Now:      clock.Now,
	}
}

func buildSite(t *testing.T) (string, *Result) {
	t.Helper()
	dir := t.TempDir()
	result, err := testBuilder().Build(loadTable(t), filepath.Join("testdata", "foods.csv"), dir)
	require.NoError(t, err)
	return dir, result
}

func TestBuilder_Build_WritesCompleteTree(t *testing.T) {
	dir, result := buildSite(t)

	assert.Equal(t, PageFiles(), result.Pages)
	assert.Equal(t, dir, result.OutDir)
	assert.Equal(t, 7, result.Foods)
	assert.Equal(t, 7, result.Categories)
	assert.Equal(t, "data/foods.csv", result.DataFile)
	require.Len(t, result.Assets, 2)

	for _, page := range result.Pages {
		info, err := os.Stat(filepath.Join(dir, page))
		require.NoError(t, err, "page %s", page)
		assert.NotZero(t, info.Size())
	}
	for _, asset := range result.Assets {
		_, err := os.Stat(filepath.Join(dir, asset))
		require.NoError(t, err, "asset %s", asset)
	}
	for _, extra := range []string{"sitemap.xml", "robots.txt"} {
		_, err := os.Stat(filepath.Join(dir, extra))
		require.NoError(t, err)
	}
}

func TestBuilder_Build_RepublishesDataset(t *testing.T) {
	dir, _ := buildSite(t)

	want, err := os.ReadFile(filepath.Join("testdata", "foods.csv"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "data", "foods.csv"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuilder_Build_SitemapUsesInjectedClock(t *testing.T) {
	dir, _ := buildSite(t)

	sm, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sm), "<lastmod>2025-03-14T09:26:53Z</lastmod>")
}

func TestBuilder_Build_PagesLinkEmittedAssets(t *testing.T) {
	dir, result := buildSite(t)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	for _, asset := range result.Assets {
		assert.Contains(t, string(index), asset)
	}
}

func TestBuilder_Build_CreatesNestedOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deploy", "public")

	_, err := testBuilder().Build(loadTable(t), filepath.Join("testdata", "foods.csv"), dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "index.html"))
	assert.NoError(t, err)
}

func TestBuilder_Build_MissingDataFile(t *testing.T) {
	dir := t.TempDir()

	_, err := testBuilder().Build(loadTable(t), filepath.Join(dir, "absent.csv"), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening data file")
}
