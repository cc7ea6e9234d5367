package boutique

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	boutiqueservice "github.com/thenoetrevino/atelier/internal/services/boutique"
)

// CreateCmd returns the boutique create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new boutique",
		Long: `Create a new boutique.

Examples:
  # Human-readable output
  atelier boutique create --name="Mode" --address="1 Rue A" --business-id=FR123

  # Quiet mode for bash capture
  BOUTIQUE_ID=$(atelier boutique create --name="Mode" --address="1 Rue A" --business-id=FR123 --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Boutique name")
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("business-id", "", "Business registration number")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	name, _ := cmd.Flags().GetString("name")
	address, _ := cmd.Flags().GetString("address")
	businessID, _ := cmd.Flags().GetString("business-id")

	req := boutiqueservice.CreateBoutiqueRequest{
		Name:       name,
		Address:    address,
		BusinessID: businessID,
	}
	if errs := boutiqueservice.Validate(req); errs != nil {
		return formatter.FailValidation(errs)
	}

	b := cliInstance.App.BoutiqueService.CreateBoutique(ctx, req)

	if formatter.Quiet {
		formatter.IDs(b.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("boutique", b)
	}

	formatter.Printf("✓ Boutique '%s' created successfully (ID: %s)\n", b.Name, b.ID)
	return nil
}
