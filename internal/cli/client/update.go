package client

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
)

// UpdateCmd returns the client update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a client",
		Long: `Update one or more fields of a client. Fields not given keep their value.

Examples:
  atelier client update <id> --phone=556
  atelier client update <id> --boutique=<other-boutique-id>
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Client ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("email", "", "New email address")
	cmd.Flags().String("phone", "", "New phone number")
	cmd.Flags().String("boutique", "", "Move to another boutique")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := cli.Setup(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	id, err := cli.ResolveID(cmd, args, formatter, "client")
	if err != nil {
		return err
	}

	req := clientservice.UpdateClientRequest{
		Name:       cli.ChangedString(cmd, "name"),
		Email:      cli.ChangedString(cmd, "email"),
		Phone:      cli.ChangedString(cmd, "phone"),
		BoutiqueID: cli.ChangedString(cmd, "boutique"),
	}
	if req.IsEmpty() {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES", cli.ErrNothingToUpdate.Error(),
			"Pass at least one of --name, --email, --phone, --boutique")
	}

	existing, err := cliInstance.App.ClientService.GetClient(ctx, id)
	if errors.Is(err, clientservice.ErrClientNotFound) {
		return formatter.Fail(cli.ExitNotFound, "CLIENT_NOT_FOUND", fmt.Sprintf("client %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "CLIENT_FETCH_ERROR", err.Error())
	}
	if errs := clientservice.ValidateUpdate(existing, req); errs != nil {
		return formatter.FailValidation(errs)
	}

	c, err := cliInstance.App.ClientService.UpdateClient(ctx, id, req)
	if err != nil {
		return formatter.Fail(cli.ExitError, "CLIENT_UPDATE_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(c.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("client", c)
	}

	formatter.Printf("✓ Client '%s' updated successfully\n", c.Name)
	return nil
}
