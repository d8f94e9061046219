package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provislabs/provis/internal/config"
	"github.com/provislabs/provis/internal/site"
)

// CheckResult holds verification results for an emitted site tree.
type CheckResult struct {
	Valid    bool           `json:"valid"`
	Pages    int            `json:"pages"`
	Problems []site.Problem `json:"problems,omitempty"`
}

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Config string
	Out    string

	// Tokens mints the run token stamped into envelopes and logs.
	// Nil selects UUIDv7Generator; tests substitute a fixed sequence.
	Tokens TokenGenerator
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(&CheckOptions{RootOptions: rootOpts})
}

// newCheckCommand wires the command onto opts. Tests construct opts directly
// to substitute the token generator.
func newCheckCommand(opts *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify a previously built site",
		Long: `Verify an emitted site tree without rebuilding it.

Every page must exist and parse as HTML, local references (stylesheets,
scripts, iframes, downloads) must resolve to files, the homepage must
carry exactly one site header, and sitemap.xml must list the full page
set.

Examples:
  provis check
  provis check --out public --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", config.DefaultFile, "config file path")
	cmd.Flags().StringVar(&opts.Out, "out", "", "site directory to verify (overrides config)")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
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

	dir := cfg.Build.Out
	if cmd.Flags().Changed("out") {
		dir = opts.Out
	}
	logger.Debug("verifying site tree", "dir", dir)

	problems, err := site.Verify(dir)
	if err != nil {
		return outputError(formatter, ErrCodeVerify, err.Error(), nil, ExitCommandError)
	}
	if len(problems) > 0 {
		return outputVerifyProblems(formatter, problems)
	}
	logger.Debug("site verified", "pages", len(site.PageFiles()))

	return outputCheckSuccess(formatter)
}

// outputCheckSuccess outputs a passing verification.
func outputCheckSuccess(formatter *OutputFormatter) error {
	pages := len(site.PageFiles())
	if formatter.Format == "json" {
		return formatter.Success(CheckResult{Valid: true, Pages: pages})
	}

	fmt.Fprintf(formatter.Writer, "✓ Site verified: %d pages\n", pages)
	return nil
}

// outputVerifyProblems outputs verification findings. Problems are a site
// failure, not a command failure, so the exit code is 1.
func outputVerifyProblems(formatter *OutputFormatter, problems []site.Problem) error {
	if formatter.Format == "json" {
		result := CheckResult{
			Valid:    false,
			Pages:    len(site.PageFiles()),
			Problems: problems,
		}

		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    ErrCodeVerify,
				Message: problems[0].String(),
			},
			TraceID: formatter.TraceID,
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitFailure, fmt.Sprintf("verification failed with %d problem(s)", len(problems)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Verification failed")
	fmt.Fprintln(formatter.Writer)

	for _, p := range problems {
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", p.File, p.Msg)
	}
	fmt.Fprintln(formatter.Writer)

	return NewExitError(ExitFailure, fmt.Sprintf("verification failed with %d problem(s)", len(problems)))
}
