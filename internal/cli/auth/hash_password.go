package auth

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/config"
	authservice "github.com/thenoetrevino/atelier/internal/services/auth"
)

// HashPasswordCmd returns the hash-password command
func HashPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Produce a bcrypt hash for auth.password_hash",
		Long: `Hash a password for the config file.

Examples:
  # Print the hash
  atelier hash-password --password=secret

  # Store it in the config file so login requires it
  atelier hash-password --password=secret --save
`,
		RunE: runHashPassword,
	}

	cmd.Flags().String("password", "", "Password to hash (required)")
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("save", false, "Write the hash to the config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	password, _ := cmd.Flags().GetString("password")
	save, _ := cmd.Flags().GetBool("save")

	hash, err := authservice.HashPassword(password)
	if errors.Is(err, authservice.ErrEmptyPassword) {
		return formatter.Fail(cli.ExitValidation, "VALIDATION_ERROR", err.Error())
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "HASH_ERROR", err.Error())
	}

	if save {
		cfg, err := config.Load()
		if err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_ERROR", err.Error())
		}
		cfg.Auth.PasswordHash = hash
		if err := cfg.Save(); err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_ERROR", err.Error())
		}
	}

	if formatter.JSON {
		return formatter.JSONResult("hash", hash)
	}
	formatter.Println(hash)
	if save && !formatter.Quiet {
		path, _ := config.Path()
		formatter.Printf("✓ Saved to %s\n", path)
	}
	return nil
}
