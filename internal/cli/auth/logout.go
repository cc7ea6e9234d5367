package auth

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE:  runLogout,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd, false)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	cliInstance.App.AuthService.Logout(cmd.Context())

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("authenticated", false)
	}
	formatter.Println("✓ Logged out")
	return nil
}
