package boutique

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	boutiqueservice "github.com/thenoetrevino/atelier/internal/services/boutique"
)

// DeleteCmd returns the boutique delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a boutique",
		Long: `Delete a boutique by ID (requires confirmation unless --force, --json or --quiet).

Clients attached to the boutique are kept and show "Unknown Boutique" afterwards.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Boutique ID (can also be provided as positional argument)")
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

	id, err := cli.ResolveID(cmd, args, formatter, "boutique")
	if err != nil {
		return err
	}

	b, err := cliInstance.App.BoutiqueService.GetBoutique(ctx, id)
	if errors.Is(err, boutiqueservice.ErrBoutiqueNotFound) {
		return formatter.Fail(cli.ExitNotFound, "BOUTIQUE_NOT_FOUND", fmt.Sprintf("boutique %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "BOUTIQUE_FETCH_ERROR", err.Error())
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !formatter.Quiet && !formatter.JSON {
		if !cli.Confirm(cmd, fmt.Sprintf("Delete boutique %s: '%s'?", b.ID, b.Name)) {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.BoutiqueService.DeleteBoutique(ctx, id); err != nil {
		return formatter.Fail(cli.ExitError, "DELETE_ERROR", err.Error())
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("boutique_id", id)
	}

	formatter.Printf("✓ Boutique %s deleted successfully\n", id)
	return nil
}
