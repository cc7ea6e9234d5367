package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// Result is the captured outcome of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode returns the exit status main would use
func (r Result) ExitCode() int {
	return cli.ExitCode(r.Err)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so commands use the test database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) Result {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content, e.g. for confirmations
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) Result {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(context.Background(), testApp))

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// DecodeJSON decodes the value stored under key in a {"success": true, key: ...} envelope
func DecodeJSON(t *testing.T, output, key string, dest any) {
	t.Helper()

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(strings.NewReader(output)).Decode(&envelope); err != nil && err != io.EOF {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	raw, ok := envelope[key]
	if !ok {
		t.Fatalf("JSON output has no %q key\nOutput: %s", key, output)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		t.Fatalf("Failed to decode %q: %v", key, err)
	}
}
