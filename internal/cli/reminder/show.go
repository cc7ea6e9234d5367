package reminder

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/cli/styles"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
)

// ShowCmd returns the reminder show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show reminder details",
		Long:  "Display a reminder with its message rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("id", "", "Reminder ID (can also be provided as positional argument)")
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

	id, err := cli.ResolveID(cmd, args, formatter, "reminder")
	if err != nil {
		return err
	}

	r, err := cliInstance.App.ReminderService.GetReminder(ctx, id)
	if errors.Is(err, reminderservice.ErrReminderNotFound) {
		return formatter.Fail(cli.ExitNotFound, "REMINDER_NOT_FOUND", fmt.Sprintf("reminder %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "REMINDER_FETCH_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(r.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminder", r)
	}

	message := styles.RenderMarkdown(r.Message, styles.CardWidth-8)
	formatter.Println(styles.RenderCard("Reminder "+r.ID, []styles.Field{
		{Label: "Subscription", Value: cliInstance.App.Directory.SubscriptionLabel(ctx, r.SubscriptionID)},
		{Label: "Interval", Value: string(r.Interval)},
		{Label: "Channels", Value: r.Channels.String()},
	}, styles.RenderSection("Message", message)))
	return nil
}
