package subscription

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
)

// ListCmd returns the subscription list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List all subscriptions, or only those of one client with --client.",
		RunE:  runList,
	}
	cmd.Flags().String("client", "", "Only subscriptions of this client")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	var subs []models.Subscription
	if clientID, _ := cmd.Flags().GetString("client"); clientID != "" {
		subs = cliInstance.App.SubscriptionService.GetSubscriptionsByClient(ctx, clientID)
	} else {
		subs = cliInstance.App.SubscriptionService.ListSubscriptions(ctx)
	}

	if formatter.Quiet {
		for _, s := range subs {
			formatter.IDs(s.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscriptions", subs)
	}

	if len(subs) == 0 {
		formatter.Println("No subscriptions found")
		return nil
	}

	formatter.Printf("Found %d subscriptions:\n\n", len(subs))
	for _, s := range subs {
		formatter.Printf("  [%s] %s $%.2f (%s → %s) - %s\n",
			s.ID, s.Name, s.Price, s.StartDate, s.EndDate,
			cliInstance.App.Directory.ClientName(ctx, s.ClientID))
	}
	return nil
}
