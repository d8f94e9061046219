package cli

import (
	"github.com/spf13/cobra"

	"github.com/provislabs/provis/internal/config"
	"github.com/provislabs/provis/internal/dataset"
	"github.com/provislabs/provis/internal/preview"
)

// PreviewOptions holds flags for the preview command.
type PreviewOptions struct {
	*RootOptions
	Config string
	Data   string

	// Tokens mints the run token stamped into envelopes and logs.
	// Nil selects UUIDv7Generator; tests substitute a fixed sequence.
	Tokens TokenGenerator
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	return newPreviewCommand(&PreviewOptions{RootOptions: rootOpts})
}

// newPreviewCommand wires the command onto opts. Tests construct opts
// directly to substitute the token generator.
func newPreviewCommand(opts *PreviewOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Explore the dataset in the terminal",
		Long: `Preview the cleaned dataset in an interactive terminal UI before
building: the derived per-10g values, both ranking orders, and the
methodology notes, laid out under the same site header the homepage
gets.

Keys: tab cycles views, h hides or restores the header, +/- widens or
narrows the header box, r replays the resize hook, q quits.

Example:
  provis preview --data data/foods.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", config.DefaultFile, "config file path")
	cmd.Flags().StringVar(&opts.Data, "data", "", "foods CSV path (overrides config)")

	return cmd
}

func runPreview(opts *PreviewOptions, cmd *cobra.Command) error {
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

	table, err := dataset.Load(dataPath)
	if err != nil {
		return outputDataError(formatter, err)
	}
	// Log before the TUI takes over the terminal; nothing may write to
	// stderr once the alternate screen is up.
	logger.Debug("dataset loaded", "foods", len(table.Foods), "categories", len(table.Categories))

	if err := preview.Run(cmd.Context(), table, cfg.Site.Name); err != nil {
		return outputError(formatter, ErrCodePreview, err.Error(), nil, ExitCommandError)
	}
	return nil
}
