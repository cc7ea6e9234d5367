package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/validation"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter reads the output flags of cmd and writes to its streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// JSONResult writes {"success": true, key: data}
func (f *OutputFormatter) JSONResult(key string, data any) error {
	return json.NewEncoder(f.Out).Encode(map[string]any{
		"success": true,
		key:       data,
	})
}

// IDs prints one id per line
func (f *OutputFormatter) IDs(ids ...string) {
	for _, id := range ids {
		fmt.Fprintln(f.Out, id)
	}
}

// Println writes a human-readable line
func (f *OutputFormatter) Println(a ...any) {
	fmt.Fprintln(f.Out, a...)
}

// Printf writes human-readable formatted output
func (f *OutputFormatter) Printf(format string, a ...any) {
	fmt.Fprintf(f.Out, format, a...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.ErrOut, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.ErrOut, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// ValidationError outputs every field violation
func (f *OutputFormatter) ValidationError(errs validation.Errors) error {
	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "invalid input",
				"fields":  errs,
			},
		})
	}

	fmt.Fprintln(f.ErrOut, "❌ Error: invalid input")
	for _, fe := range errs {
		fmt.Fprintf(f.ErrOut, "   • %s: %s\n", fe.Field, fe.Message)
	}
	return nil
}

// Fail reports an error and returns the matching ExitCodeError
func (f *OutputFormatter) Fail(exitCode int, code, message string) error {
	return f.FailWithSuggestion(exitCode, code, message, "")
}

// FailWithSuggestion reports an error with a hint and returns the matching ExitCodeError
func (f *OutputFormatter) FailWithSuggestion(exitCode int, code, message, suggestion string) error {
	reportErr := f.ErrorWithSuggestion(code, message, suggestion)
	return Exit(exitCode, errors.Join(errors.New(message), reportErr))
}

// FailValidation reports validation errors and exits with ExitValidation
func (f *OutputFormatter) FailValidation(errs validation.Errors) error {
	reportErr := f.ValidationError(errs)
	return Exit(ExitValidation, errors.Join(errs, reportErr))
}
