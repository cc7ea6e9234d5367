package client

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/cli/styles"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
)

// ShowCmd returns the client show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show client details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("id", "", "Client ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet {
		formatter.IDs(c.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("client", c)
	}

	subs := cliInstance.App.SubscriptionService.GetSubscriptionsByClient(ctx, c.ID)
	formatter.Println(styles.RenderCard(c.Name, []styles.Field{
		{Label: "ID", Value: c.ID},
		{Label: "Email", Value: c.Email},
		{Label: "Phone", Value: c.Phone},
		{Label: "Boutique", Value: cliInstance.App.Directory.BoutiqueName(ctx, c.BoutiqueID)},
		{Label: "Subscriptions", Value: strconv.Itoa(len(subs))},
	}))
	return nil
}
