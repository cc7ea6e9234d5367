package boutique

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// ClientsCmd returns the boutique clients subcommand
func ClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients [id]",
		Short: "List the clients of a boutique",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClients,
	}
	cmd.Flags().String("id", "", "Boutique ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runClients(cmd *cobra.Command, args []string) error {
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

	id, err := cli.ResolveID(cmd, args, formatter, "boutique")
	if err != nil {
		return err
	}

	clients := cliInstance.App.ClientService.GetClientsByBoutique(ctx, id)

	if formatter.Quiet {
		for _, c := range clients {
			formatter.IDs(c.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("clients", clients)
	}

	name := cliInstance.App.Directory.BoutiqueName(ctx, id)
	if len(clients) == 0 {
		formatter.Printf("No clients found for %s\n", name)
		return nil
	}

	formatter.Printf("%s has %d clients:\n\n", name, len(clients))
	for _, c := range clients {
		formatter.Printf("  [%s] %s <%s> %s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	return nil
}
