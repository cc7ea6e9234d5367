package boutique

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
)

// ListCmd returns the boutique list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boutiques",
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := cli.Setup(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	boutiques := cliInstance.App.BoutiqueService.ListBoutiques(cmd.Context())
	return printBoutiques(formatter, boutiques)
}

func printBoutiques(formatter *cli.OutputFormatter, boutiques []models.Boutique) error {
	if formatter.Quiet {
		for _, b := range boutiques {
			formatter.IDs(b.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("boutiques", boutiques)
	}

	if len(boutiques) == 0 {
		formatter.Println("No boutiques found")
		return nil
	}

	formatter.Printf("Found %d boutiques:\n\n", len(boutiques))
	for _, b := range boutiques {
		formatter.Printf("  [%s] %s - %s (%s)\n", b.ID, b.Name, b.Address, b.BusinessID)
	}
	return nil
}
