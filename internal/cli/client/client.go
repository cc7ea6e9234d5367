// Package client holds all cli commands related to clients
//
// e.g., atelier client ...
package client

import (
	"github.com/spf13/cobra"
)

// ClientCmd returns the client parent command
func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(SubscriptionsCmd())

	return cmd
}
