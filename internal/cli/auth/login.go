package auth

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	authservice "github.com/thenoetrevino/atelier/internal/services/auth"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as the operator",
		Long: `Sign in so record commands can be used.

Any non-empty email and password are accepted unless auth.password_hash is set
in the config file (see: atelier hash-password --save).

Examples:
  atelier login --email=jane@shop.io --password=secret
  atelier login --email=jane@shop.io --password=secret --json
`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Operator email (required)")
	cmd.Flags().String("password", "", "Operator password (required)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Setup(cmd, false)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	user, err := cliInstance.App.AuthService.Login(ctx, authservice.Credentials{
		Email:    email,
		Password: password,
	})
	if errors.Is(err, authservice.ErrInvalidCredentials) {
		return formatter.Fail(cli.ExitUnauthenticated, "INVALID_CREDENTIALS", err.Error())
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "LOGIN_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(user.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("user", user)
	}

	formatter.Printf("✓ Logged in as %s (%s)\n", user.Username, user.Email)
	return nil
}
