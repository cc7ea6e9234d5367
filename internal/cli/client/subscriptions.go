package client

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// SubscriptionsCmd returns the client subscriptions subcommand
func SubscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions [id]",
		Short: "List the subscriptions of a client",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSubscriptions,
	}
	cmd.Flags().String("id", "", "Client ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSubscriptions(cmd *cobra.Command, args []string) error {
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

	subs := cliInstance.App.SubscriptionService.GetSubscriptionsByClient(ctx, id)

	if formatter.Quiet {
		for _, s := range subs {
			formatter.IDs(s.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscriptions", subs)
	}

	name := cliInstance.App.Directory.ClientName(ctx, id)
	if len(subs) == 0 {
		formatter.Printf("No subscriptions found for %s\n", name)
		return nil
	}

	formatter.Printf("%s has %d subscriptions:\n\n", name, len(subs))
	for _, s := range subs {
		formatter.Printf("  [%s] %s $%.2f (%s → %s)\n", s.ID, s.Name, s.Price, s.StartDate, s.EndDate)
	}
	return nil
}
