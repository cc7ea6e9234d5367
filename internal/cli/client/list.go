package client

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
)

// ListCmd returns the client list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Long:  "List all clients, or only those of one boutique with --boutique.",
		RunE:  runList,
	}
	cmd.Flags().String("boutique", "", "Only clients of this boutique")
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

	var clients []models.Client
	if boutiqueID, _ := cmd.Flags().GetString("boutique"); boutiqueID != "" {
		clients = cliInstance.App.ClientService.GetClientsByBoutique(ctx, boutiqueID)
	} else {
		clients = cliInstance.App.ClientService.ListClients(ctx)
	}

	if formatter.Quiet {
		for _, c := range clients {
			formatter.IDs(c.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("clients", clients)
	}

	if len(clients) == 0 {
		formatter.Println("No clients found")
		return nil
	}

	formatter.Printf("Found %d clients:\n\n", len(clients))
	for _, c := range clients {
		formatter.Printf("  [%s] %s <%s> %s - %s\n",
			c.ID, c.Name, c.Email, c.Phone,
			cliInstance.App.Directory.BoutiqueName(ctx, c.BoutiqueID))
	}
	return nil
}
