package reminder

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
)

// CreateCmd returns the reminder create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new reminder",
		Long: `Create a renewal reminder for a subscription.

Examples:
  atelier reminder create --subscription=<id> --interval=week \
    --channel=email --channel=sms --message="Your plan renews soon"
`,
		RunE: runCreate,
	}

	cmd.Flags().String("subscription", "", "Subscription ID")
	cmd.Flags().String("interval", "", "Repeat interval: day, week or month")
	cmd.Flags().StringSlice("channel", nil, "Delivery channel: sms or email (repeatable)")
	cmd.Flags().String("message", "", "Reminder message (markdown)")
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

	subscriptionID, _ := cmd.Flags().GetString("subscription")
	interval, _ := cmd.Flags().GetString("interval")
	channels, _ := cmd.Flags().GetStringSlice("channel")
	message, _ := cmd.Flags().GetString("message")

	req := reminderservice.CreateReminderRequest{
		SubscriptionID: subscriptionID,
		Interval:       models.Interval(interval),
		Channels:       toChannels(channels),
		Message:        message,
	}
	if errs := reminderservice.Validate(req); errs != nil {
		return formatter.FailValidation(errs)
	}

	r := cliInstance.App.ReminderService.CreateReminder(ctx, req)

	if formatter.Quiet {
		formatter.IDs(r.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminder", r)
	}

	formatter.Printf("✓ Reminder created for %s (ID: %s)\n",
		cliInstance.App.Directory.SubscriptionLabel(ctx, r.SubscriptionID), r.ID)
	return nil
}
