package reminder

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
)

// DeleteCmd returns the reminder delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a reminder",
		Long:  "Delete a reminder by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Reminder ID (can also be provided as positional argument)")
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

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.Quiet && !formatter.JSON {
		label := cliInstance.App.Directory.SubscriptionLabel(ctx, r.SubscriptionID)
		if !cli.Confirm(cmd, fmt.Sprintf("Delete reminder %s for %s?", r.ID, label)) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ReminderService.DeleteReminder(ctx, id); err != nil {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR", err.Error())
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("reminder_id", id)
	}

	formatter.Printf("✓ Reminder %s deleted successfully\n", id)
	return nil
}
