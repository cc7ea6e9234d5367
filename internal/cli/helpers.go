package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Setup builds the formatter and CLI for a command.
// With requireAuth set, it fails with ExitUnauthenticated when nobody is signed in.
// Callers must Close the returned CLI.
func Setup(cmd *cobra.Command, requireAuth bool) (*CLI, *OutputFormatter, error) {
	formatter := NewFormatter(cmd)

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter, formatter.Fail(ExitError, "INITIALIZATION_ERROR", err.Error())
	}

	if requireAuth && !cliInstance.App.AuthService.IsAuthenticated() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
		return nil, formatter, formatter.FailWithSuggestion(ExitUnauthenticated,
			"NOT_AUTHENTICATED",
			"you must be logged in",
			"Run: atelier login --email=<email> --password=<password>")
	}

	return cliInstance, formatter, nil
}

// ResolveID returns the record id from the first positional argument or the --id flag
func ResolveID(cmd *cobra.Command, args []string, formatter *OutputFormatter, entity string) (string, error) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	} else if cmd.Flags().Lookup("id") != nil {
		id, _ = cmd.Flags().GetString("id")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return "", formatter.FailWithSuggestion(ExitUsage,
			"INVALID_"+strings.ToUpper(entity)+"_ID",
			entity+" ID is required",
			fmt.Sprintf("Usage: atelier %s %s <id>", entity, cmd.Name()))
	}
	return id, nil
}

// Confirm asks a yes/no question on the command's input stream.
// Anything other than y or yes declines.
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ChangedString returns a pointer to the flag value when the flag was set
func ChangedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// ErrNothingToUpdate is returned by update commands given no field flags
var ErrNothingToUpdate = errors.New("no fields to update")
