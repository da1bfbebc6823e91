package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter builds a formatter from a command's --json and --quiet flags,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.JSONSuccess(map[string]interface{}{"data": data})
	}

	// Human-readable format
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// JSONSuccess writes {"success": true, ...fields}
func (f *OutputFormatter) JSONSuccess(fields map[string]interface{}) error {
	payload := map[string]interface{}{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return json.NewEncoder(f.out()).Encode(payload)
}

// Println writes a human-readable line unless quiet mode is on
func (f *OutputFormatter) Println(a ...interface{}) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.out(), a...)
}

// Printf writes human-readable output unless quiet mode is on
func (f *OutputFormatter) Printf(format string, a ...interface{}) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintf(f.out(), format, a...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err in the formatter's mode and returns an ExitCodeError
// carrying the exit code that matches err
func (f *OutputFormatter) Fail(code string, err error) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestionFor(err)); fmtErr != nil {
		return fmtErr
	}
	return &ExitCodeError{Code: ExitCodeFor(err), Err: err}
}
