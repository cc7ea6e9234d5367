// Package reminder holds all cli commands related to reminders
//
// e.g., atelier reminder ...
package reminder

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/models"
)

// ReminderCmd returns the reminder parent command
func ReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders"},
		Short:   "Manage renewal reminders",
		Long:    "Manage renewal reminders. Reminders are stored only; atelier does not send them.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func toChannels(values []string) models.Channels {
	out := make(models.Channels, len(values))
	for i, v := range values {
		out[i] = models.Channel(v)
	}
	return out
}
