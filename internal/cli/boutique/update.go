package boutique

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	boutiqueservice "github.com/thenoetrevino/atelier/internal/services/boutique"
)

// UpdateCmd returns the boutique update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a boutique",
		Long: `Update one or more fields of a boutique. Fields not given keep their value.

Examples:
  atelier boutique update <id> --address="2 Rue B"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Boutique ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("address", "", "New address")
	cmd.Flags().String("business-id", "", "New business registration number")
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

	id, err := cli.ResolveID(cmd, args, formatter, "boutique")
	if err != nil {
		return err
	}

	req := boutiqueservice.UpdateBoutiqueRequest{
		Name:       cli.ChangedString(cmd, "name"),
		Address:    cli.ChangedString(cmd, "address"),
		BusinessID: cli.ChangedString(cmd, "business-id"),
	}
	if req.IsEmpty() {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES", cli.ErrNothingToUpdate.Error(),
			"Pass at least one of --name, --address, --business-id")
	}

	existing, err := cliInstance.App.BoutiqueService.GetBoutique(ctx, id)
	if errors.Is(err, boutiqueservice.ErrBoutiqueNotFound) {
		return formatter.Fail(cli.ExitNotFound, "BOUTIQUE_NOT_FOUND", fmt.Sprintf("boutique %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "BOUTIQUE_FETCH_ERROR", err.Error())
	}
	if errs := boutiqueservice.ValidateUpdate(existing, req); errs != nil {
		return formatter.FailValidation(errs)
	}

	b, err := cliInstance.App.BoutiqueService.UpdateBoutique(ctx, id, req)
	if err != nil {
		return formatter.Fail(cli.ExitError, "BOUTIQUE_UPDATE_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(b.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("boutique", b)
	}

	formatter.Printf("✓ Boutique '%s' updated successfully\n", b.Name)
	return nil
}
