package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden returns the goldie comparator configured the way every package in
// this repository stores fixtures: testdata/golden/<name>.golden, relative
// to the calling test's package.
//
// To regenerate golden files after an intentional output change:
//
//	go test ./... -update
func Golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
