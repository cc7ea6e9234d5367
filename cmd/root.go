// Package cmd assembles the atelier command tree
package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli/auth"
	"github.com/thenoetrevino/atelier/internal/cli/boutique"
	"github.com/thenoetrevino/atelier/internal/cli/client"
	"github.com/thenoetrevino/atelier/internal/cli/reminder"
	"github.com/thenoetrevino/atelier/internal/cli/subscription"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atelier",
		Short: "Atelier - boutique client and subscription records",
		Long: `Atelier keeps the records of a boutique business: boutiques, their clients,
client subscriptions and renewal reminders. Sign in with 'atelier login' first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "records", Title: "Records:"},
		&cobra.Group{ID: "session", Title: "Session:"},
	)

	for _, c := range auth.Commands() {
		c.GroupID = "session"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		boutique.BoutiqueCmd(),
		client.ClientCmd(),
		subscription.SubscriptionCmd(),
		reminder.ReminderCmd(),
	} {
		c.GroupID = "records"
		rootCmd.AddCommand(c)
	}

	return rootCmd
}

// Execute loads an optional .env file and runs the command tree
func Execute(ctx context.Context, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
