package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provislabs/provis/internal/config"
	"github.com/provislabs/provis/internal/dataset"
	"github.com/provislabs/provis/internal/site"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Config string
	Data   string
	Out    string
	Force  bool

	// Tokens mints the run token stamped into envelopes and logs.
	// Nil selects UUIDv7Generator; tests substitute a fixed sequence.
	Tokens TokenGenerator
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	return newBuildCommand(&BuildOptions{RootOptions: rootOpts})
}

// newBuildCommand wires the command onto opts. Tests construct opts directly
// to substitute the token generator.
func newBuildCommand(opts *BuildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static site from the foods CSV",
		Long: `Build the complete site tree: the 3D chart, three 2D projections, the
sortable data table, two ranking pages, fingerprinted assets, a copy of
the source dataset, sitemap.xml, and robots.txt.

Rows are cleaned before rendering (missing fields and non-positive
protein are dropped) and every plotted value is normalized to 10g of
protein. The emitted tree is verified before the command reports
success.

Examples:
  provis build
  provis build --config provis.yaml --out public --force
  provis build --data data/foods.csv --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", config.DefaultFile, "config file path")
	cmd.Flags().StringVar(&opts.Data, "data", "", "foods CSV path (overrides config)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output directory (overrides config)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "remove the output directory before building")

	return cmd
}

func runBuild(opts *BuildOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	tokens := opts.Tokens
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}
	formatter.TraceID = tokens.Generate()
	logger := newLogger(opts.RootOptions, cmd).With("run", formatter.TraceID)

	cfg, err := loadConfig(opts.Config, cmd.Flags().Changed("config"))
	if err != nil {
		return outputConfigError(formatter, err)
	}

	dataPath := cfg.Build.Data
	if cmd.Flags().Changed("data") {
		dataPath = opts.Data
	}
	outDir := cfg.Build.Out
	if cmd.Flags().Changed("out") {
		outDir = opts.Out
	}
	logger.Debug("configuration resolved",
		"site", cfg.Site.Name, "base_url", cfg.Site.BaseURL, "data", dataPath, "out", outDir)

	table, err := dataset.Load(dataPath)
	if err != nil {
		return outputDataError(formatter, err)
	}
	logger.Debug("dataset loaded", "foods", len(table.Foods), "categories", len(table.Categories))

	if opts.Force {
		if err := os.RemoveAll(outDir); err != nil {
			return outputError(formatter, ErrCodeBuild,
				fmt.Sprintf("clearing output directory: %v", err), nil, ExitCommandError)
		}
	}

	builder := &site.Builder{
		SiteName: cfg.Site.Name,
		BaseURL:  cfg.Site.BaseURL,
		Logger:   logger,
	}
	result, err := builder.Build(table, dataPath, outDir)
	if err != nil {
		var verr *site.VerifyError
		if errors.As(err, &verr) {
			return outputVerifyProblems(formatter, verr.Problems)
		}
		return outputError(formatter, ErrCodeBuild, err.Error(), nil, ExitCommandError)
	}

	return outputBuildSuccess(formatter, result)
}

// loadConfig resolves the build configuration. An explicitly flagged path
// must exist; the implicit default may be absent.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if explicit {
		return config.Load(path)
	}
	return config.LoadOrDefault(path)
}

// outputConfigError maps config failures onto error codes: a malformed or
// schema-violating document is E102, an unreadable file is E101.
func outputConfigError(formatter *OutputFormatter, err error) error {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		return outputError(formatter, ErrCodeConfigInvalid, verr.Error(), nil, ExitCommandError)
	}
	return outputError(formatter, ErrCodeConfigRead, err.Error(), nil, ExitCommandError)
}

// outputDataError maps dataset failures onto error codes: a missing file is
// E201, an input whose rows all got dropped is E203, anything else is E202.
func outputDataError(formatter *OutputFormatter, err error) error {
	code := ErrCodeDataInvalid
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		code = ErrCodeDataNotFound
	case errors.Is(err, dataset.ErrNoValidRows):
		code = ErrCodeDataEmpty
	}
	return outputError(formatter, code, err.Error(), nil, ExitCommandError)
}

// outputBuildSuccess outputs a successful build summary.
func outputBuildSuccess(formatter *OutputFormatter, result *site.Result) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Site built: %d pages, %d assets, sitemap.xml, robots.txt\n",
		len(result.Pages), len(result.Assets))
	fmt.Fprintf(formatter.Writer, "  %d foods in %d categories\n", result.Foods, result.Categories)
	fmt.Fprintf(formatter.Writer, "  Output: %s\n", result.OutDir)
	return nil
}
