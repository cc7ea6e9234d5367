package subscription

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
)

// DeleteCmd returns the subscription delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a subscription",
		Long:  "Delete a subscription by ID (requires confirmation unless --force, --json or --quiet). Reminders are kept.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Subscription ID (can also be provided as positional argument)")
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

	id, err := cli.ResolveID(cmd, args, formatter, "subscription")
	if err != nil {
		return err
	}

	s, err := cliInstance.App.SubscriptionService.GetSubscription(ctx, id)
	if errors.Is(err, subscriptionservice.ErrSubscriptionNotFound) {
		return formatter.Fail(cli.ExitNotFound, "SUBSCRIPTION_NOT_FOUND", fmt.Sprintf("subscription %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "SUBSCRIPTION_FETCH_ERROR", err.Error())
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.Quiet && !formatter.JSON {
		label := cliInstance.App.Directory.SubscriptionLabel(ctx, s.ID)
		if !cli.Confirm(cmd, fmt.Sprintf("Delete subscription %s: '%s'?", s.ID, label)) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.SubscriptionService.DeleteSubscription(ctx, id); err != nil {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR", err.Error())
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscription_id", id)
	}

	formatter.Printf("✓ Subscription %s deleted successfully\n", id)
	return nil
}
