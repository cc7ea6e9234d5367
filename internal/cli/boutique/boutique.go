// Package boutique holds all cli commands related to boutiques
//
// e.g., atelier boutique ...
package boutique

import (
	"github.com/spf13/cobra"
)

// BoutiqueCmd returns the boutique parent command
func BoutiqueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boutique",
		Aliases: []string{"boutiques"},
		Short:   "Manage boutiques",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClientsCmd())

	return cmd
}
