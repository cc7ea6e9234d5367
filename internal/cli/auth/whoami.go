package auth

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in operator",
		RunE:  runWhoami,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	user, _ := cliInstance.App.AuthService.CurrentUser()

	if formatter.Quiet {
		formatter.IDs(user.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("user", user)
	}
	formatter.Printf("%s (%s)\n", user.Username, user.Email)
	return nil
}
