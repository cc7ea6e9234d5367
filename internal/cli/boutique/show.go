package boutique

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/cli/styles"
	boutiqueservice "github.com/thenoetrevino/atelier/internal/services/boutique"
)

// ShowCmd returns the boutique show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show boutique details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("id", "", "Boutique ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet {
		formatter.IDs(b.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("boutique", b)
	}

	clients := cliInstance.App.ClientService.GetClientsByBoutique(ctx, b.ID)
	formatter.Println(styles.RenderCard(b.Name, []styles.Field{
		{Label: "ID", Value: b.ID},
		{Label: "Address", Value: b.Address},
		{Label: "Business ID", Value: b.BusinessID},
		{Label: "Clients", Value: strconv.Itoa(len(clients))},
	}))
	return nil
}
