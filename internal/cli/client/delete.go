package client

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
)

// DeleteCmd returns the client delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a client",
		Long:  "Delete a client by ID (requires confirmation unless --force, --json or --quiet). Subscriptions are kept.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Client ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	c, err := cliInstance.App.ClientService.GetClient(ctx, id)
	if errors.Is(err, clientservice.ErrClientNotFound) {
		return formatter.Fail(cli.ExitNotFound, "CLIENT_NOT_FOUND", fmt.Sprintf("client %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "CLIENT_FETCH_ERROR", err.Error())
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete client %s: '%s'?", c.ID, c.Name)) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ClientService.DeleteClient(ctx, id); err != nil {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR", err.Error())
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("client_id", id)
	}

	formatter.Printf("✓ Client %s deleted successfully\n", id)
	return nil
}
