package subscription

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// RemindersCmd returns the subscription reminders subcommand
func RemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders [id]",
		Short: "List the reminders of a subscription",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReminders,
	}
	cmd.Flags().String("id", "", "Subscription ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReminders(cmd *cobra.Command, args []string) error {
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

	reminders := cliInstance.App.ReminderService.GetRemindersBySubscription(ctx, id)

	if formatter.Quiet {
		for _, r := range reminders {
			formatter.IDs(r.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminders", reminders)
	}

	label := cliInstance.App.Directory.SubscriptionLabel(ctx, id)
	if len(reminders) == 0 {
		formatter.Printf("No reminders found for %s\n", label)
		return nil
	}

	formatter.Printf("%s has %d reminders:\n\n", label, len(reminders))
	for _, r := range reminders {
		formatter.Printf("  [%s] every %s via %s\n", r.ID, r.Interval, r.Channels)
	}
	return nil
}
