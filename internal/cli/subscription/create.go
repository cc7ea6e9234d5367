package subscription

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
)

// CreateCmd returns the subscription create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new subscription",
		Long: `Create a new subscription for a client. Dates are YYYY-MM-DD.

Examples:
  atelier subscription create --name=Gold --price=49.99 \
    --start=2024-01-01 --end=2024-12-31 --client=<client-id>
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Plan name")
	cmd.Flags().String("price", "", "Price (defaults to 0)")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().String("client", "", "Client ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	price, err := parsePrice(cmd, formatter)
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	clientID, _ := cmd.Flags().GetString("client")

	req := subscriptionservice.CreateSubscriptionRequest{
		Name:      name,
		Price:     price,
		StartDate: start,
		EndDate:   end,
		ClientID:  clientID,
	}
	if errs := subscriptionservice.Validate(req); errs != nil {
		return formatter.FailValidation(errs)
	}

	s := cliInstance.App.SubscriptionService.CreateSubscription(ctx, req)

	if formatter.Quiet {
		formatter.IDs(s.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscription", s)
	}

	formatter.Printf("✓ Subscription '%s' created successfully (ID: %s)\n", s.Name, s.ID)
	return nil
}
