package reminder

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
)

// UpdateCmd returns the reminder update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a reminder",
		Long: `Update one or more fields of a reminder. Fields not given keep their value.

--channels replaces the whole set; --toggle-channel adds a channel that is
absent and removes one that is present, after any replacement.

Examples:
  atelier reminder update <id> --toggle-channel=sms
  atelier reminder update <id> --interval=month --message="Renews **next month**"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Reminder ID (can also be provided as positional argument)")
	cmd.Flags().String("subscription", "", "Move to another subscription")
	cmd.Flags().String("interval", "", "New interval: day, week or month")
	cmd.Flags().StringSlice("channels", nil, "Replace the channel set")
	cmd.Flags().StringSlice("toggle-channel", nil, "Flip a channel on or off (repeatable)")
	cmd.Flags().String("message", "", "New message")
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

	id, err := cli.ResolveID(cmd, args, formatter, "reminder")
	if err != nil {
		return err
	}

	req := reminderservice.UpdateReminderRequest{
		SubscriptionID: cli.ChangedString(cmd, "subscription"),
		Message:        cli.ChangedString(cmd, "message"),
	}
	if interval := cli.ChangedString(cmd, "interval"); interval != nil {
		v := models.Interval(*interval)
		req.Interval = &v
	}
	if cmd.Flags().Changed("channels") {
		values, _ := cmd.Flags().GetStringSlice("channels")
		channels := toChannels(values)
		req.Channels = &channels
	}
	if toggles, _ := cmd.Flags().GetStringSlice("toggle-channel"); len(toggles) > 0 {
		req.Toggle = toChannels(toggles)
	}
	if req.IsEmpty() {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES", cli.ErrNothingToUpdate.Error(),
			"Pass at least one of --subscription, --interval, --channels, --toggle-channel, --message")
	}

	existing, err := cliInstance.App.ReminderService.GetReminder(ctx, id)
	if errors.Is(err, reminderservice.ErrReminderNotFound) {
		return formatter.Fail(cli.ExitNotFound, "REMINDER_NOT_FOUND", fmt.Sprintf("reminder %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "REMINDER_FETCH_ERROR", err.Error())
	}
	if errs := reminderservice.ValidateUpdate(existing, req); errs != nil {
		return formatter.FailValidation(errs)
	}

	r, err := cliInstance.App.ReminderService.UpdateReminder(ctx, id, req)
	if err != nil {
		return formatter.Fail(cli.ExitError, "REMINDER_UPDATE_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(r.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminder", r)
	}

	formatter.Printf("✓ Reminder %s updated successfully (channels: %s)\n", r.ID, r.Channels)
	return nil
}
