package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/provislabs/provis/internal/assets"
	"github.com/provislabs/provis/internal/dataset"
)

// dataFile is where the source CSV is republished for the download links.
const dataFile = "data/foods.csv"

// Builder renders the complete site tree: pages, fingerprinted assets, the
// published dataset copy, sitemap.xml, and robots.txt.
type Builder struct {
	SiteName string
	BaseURL  string

	// Logger receives debug-level progress. Nil discards.
	Logger *slog.Logger

	// Now stamps the sitemap. Nil means time.Now.
	Now func() time.Time
}

// Result summarizes a finished build.
type Result struct {
	OutDir     string   `json:"out_dir"`
	Pages      []string `json:"pages"`
	Assets     []string `json:"assets"`
	DataFile   string   `json:"data_file"`
	Foods      int      `json:"foods"`
	Categories int      `json:"categories"`
}

// Build renders every page for table into outDir, copies the source CSV at
// dataPath under data/foods.csv, and verifies the emitted tree before
// returning. A verification failure comes back as *VerifyError.
func (b *Builder) Build(table *dataset.Table, dataPath, outDir string) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}

	bundle, err := assets.Build()
	if err != nil {
		return nil, err
	}

	r, err := newRenderer(b.SiteName, b.BaseURL, bundle.CSSName, bundle.JSName)
	if err != nil {
		return nil, err
	}
	docs, err := r.renderAll(table)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(outDir, "data"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if err := bundle.WriteTo(outDir); err != nil {
		return nil, err
	}
	logger.Debug("assets written", "css", bundle.CSSName, "js", bundle.JSName)

	result := &Result{
		OutDir:     outDir,
		Assets:     []string{bundle.CSSName, bundle.JSName},
		DataFile:   dataFile,
		Foods:      len(table.Foods),
		Categories: len(table.Categories),
	}

	for _, doc := range docs {
		if err := writeFile(filepath.Join(outDir, doc.file), doc.body); err != nil {
			return nil, err
		}
		logger.Debug("page rendered", "file", doc.file, "bytes", len(doc.body))
		result.Pages = append(result.Pages, doc.file)
	}

	sm, err := Sitemap(b.BaseURL, now())
	if err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(outDir, "sitemap.xml"), sm); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(outDir, "robots.txt"), Robots(b.BaseURL)); err != nil {
		return nil, err
	}

	if err := copyData(dataPath, filepath.Join(outDir, filepath.FromSlash(dataFile))); err != nil {
		return nil, err
	}
	logger.Debug("dataset republished", "from", dataPath, "to", dataFile)

	problems, err := Verify(outDir)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, &VerifyError{Dir: outDir, Problems: problems}
	}
	logger.Debug("site verified", "pages", len(result.Pages))

	return result, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func copyData(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening data file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying data file: %w", err)
	}
	return out.Close()
}
