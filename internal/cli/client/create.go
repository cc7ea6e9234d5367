package client

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
)

// CreateCmd returns the client create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new client",
		Long: `Create a new client attached to a boutique.

Examples:
  atelier client create --name=Alice --email=a@x.io --phone=555 --boutique=<boutique-id>
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Client name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("boutique", "", "Boutique ID")
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
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	boutiqueID, _ := cmd.Flags().GetString("boutique")

	req := clientservice.CreateClientRequest{
		Name:       name,
		Email:      email,
		Phone:      phone,
		BoutiqueID: boutiqueID,
	}
	if errs := clientservice.Validate(req); errs != nil {
		return formatter.FailValidation(errs)
	}

	c := cliInstance.App.ClientService.CreateClient(ctx, req)

	if formatter.Quiet {
		formatter.IDs(c.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("client", c)
	}

	formatter.Printf("✓ Client '%s' created successfully (ID: %s)\n", c.Name, c.ID)
	return nil
}
