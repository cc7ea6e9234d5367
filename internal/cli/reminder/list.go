package reminder

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
)

// ListCmd returns the reminder list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Long:  "List all reminders, or only those of one subscription with --subscription.",
		RunE:  runList,
	}
	cmd.Flags().String("subscription", "", "Only reminders of this subscription")
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

	var reminders []models.Reminder
	if subscriptionID, _ := cmd.Flags().GetString("subscription"); subscriptionID != "" {
		reminders = cliInstance.App.ReminderService.GetRemindersBySubscription(ctx, subscriptionID)
	} else {
		reminders = cliInstance.App.ReminderService.ListReminders(ctx)
	}

	if formatter.Quiet {
		for _, r := range reminders {
			formatter.IDs(r.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminders", reminders)
	}

	if len(reminders) == 0 {
		formatter.Println("No reminders found")
		return nil
	}

	formatter.Printf("Found %d reminders:\n\n", len(reminders))
	for _, r := range reminders {
		formatter.Printf("  [%s] %s - every %s via %s\n",
			r.ID, cliInstance.App.Directory.SubscriptionLabel(ctx, r.SubscriptionID), r.Interval, r.Channels)
	}
	return nil
}
