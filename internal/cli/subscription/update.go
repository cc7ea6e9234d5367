package subscription

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
)

// UpdateCmd returns the subscription update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a subscription",
		Long: `Update one or more fields of a subscription. Fields not given keep their value.

Examples:
  atelier subscription update <id> --price=39.99
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Subscription ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New plan name")
	cmd.Flags().String("price", "", "New price")
	cmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "New end date (YYYY-MM-DD)")
	cmd.Flags().String("client", "", "Move to another client")
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

	id, err := cli.ResolveID(cmd, args, formatter, "subscription")
	if err != nil {
		return err
	}

	req := subscriptionservice.UpdateSubscriptionRequest{
		Name:      cli.ChangedString(cmd, "name"),
		StartDate: cli.ChangedString(cmd, "start"),
		EndDate:   cli.ChangedString(cmd, "end"),
		ClientID:  cli.ChangedString(cmd, "client"),
	}
	if cmd.Flags().Changed("price") {
		price, err := parsePrice(cmd, formatter)
		if err != nil {
			return err
		}
		req.Price = &price
	}
	if req.IsEmpty() {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES", cli.ErrNothingToUpdate.Error(),
			"Pass at least one of --name, --price, --start, --end, --client")
	}

	existing, err := cliInstance.App.SubscriptionService.GetSubscription(ctx, id)
	if errors.Is(err, subscriptionservice.ErrSubscriptionNotFound) {
		return formatter.Fail(cli.ExitNotFound, "SUBSCRIPTION_NOT_FOUND", fmt.Sprintf("subscription %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "SUBSCRIPTION_FETCH_ERROR", err.Error())
	}
	if errs := subscriptionservice.ValidateUpdate(existing, req); errs != nil {
		return formatter.FailValidation(errs)
	}

	s, err := cliInstance.App.SubscriptionService.UpdateSubscription(ctx, id, req)
	if err != nil {
		return formatter.Fail(cli.ExitError, "SUBSCRIPTION_UPDATE_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(s.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscription", s)
	}

	formatter.Printf("✓ Subscription '%s' updated successfully\n", s.Name)
	return nil
}
