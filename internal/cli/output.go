package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Verification failure (problems found in an emitted site)
	ExitCommandError = 2 // Command error (bad config, missing data file, write failures, etc.)
)

// Error codes grouped by subsystem. The leading digit states where the
// failure happened, not how severe it is.
const (
	ErrCodeConfigRead    = "E101" // config file unreadable or malformed
	ErrCodeConfigInvalid = "E102" // config read fine but failed schema validation
	ErrCodeDataNotFound  = "E201" // foods CSV missing
	ErrCodeDataInvalid   = "E202" // foods CSV unreadable or missing columns
	ErrCodeDataEmpty     = "E203" // cleaning discarded every row
	ErrCodeBuild         = "E301" // rendering or writing the site tree failed
	ErrCodeVerify        = "E401" // emitted site failed verification
	ErrCodePreview       = "E501" // terminal UI failed to start or crashed
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands. Diagnostic
// output is not its business; commands log through slog (see newLogger).
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
	TraceID string // stamped into every envelope once the command mints its run token
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status  string      `json:"status"`             // "ok" or "error"
	Data    interface{} `json:"data,omitempty"`     // success payload
	Error   *CLIError   `json:"error,omitempty"`    // error details
	TraceID string      `json:"trace_id,omitempty"` // run token for log correlation
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E101", "E201", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status:  "ok",
			Data:    data,
			TraceID: f.TraceID,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			TraceID: f.TraceID,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// newFormatter wires a formatter to the command's output stream.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// newLogger builds the logger long-running commands hand to the builder.
// Logs go to stderr so JSON on stdout stays machine-parseable; --verbose
// lowers the level to debug.
func newLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// outputError emits the error envelope and returns the ExitError that
// carries the process exit code. Commands return its result directly.
func outputError(f *OutputFormatter, code, message string, details interface{}, exitCode int) error {
	if err := f.Error(code, message, details); err != nil {
		return WrapExitError(ExitCommandError, "writing error output", err)
	}
	return NewExitError(exitCode, fmt.Sprintf("%s: %s", code, message))
}
