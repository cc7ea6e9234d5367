// Package subscription holds all cli commands related to subscriptions
//
// e.g., atelier subscription ...
package subscription

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
)

// SubscriptionCmd returns the subscription parent command
func SubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"subscriptions", "sub"},
		Short:   "Manage subscriptions",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(RemindersCmd())

	return cmd
}

// parsePrice reads the --price flag; an empty value is zero.
// NaN and infinities cannot be stored and are rejected.
func parsePrice(cmd *cobra.Command, formatter *cli.OutputFormatter) (float64, error) {
	raw, _ := cmd.Flags().GetString("price")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, formatter.Fail(cli.ExitDataErr, "INVALID_PRICE", fmt.Sprintf("price %q is not a number", raw))
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, formatter.Fail(cli.ExitDataErr, "INVALID_PRICE", fmt.Sprintf("price %q is not a finite number", raw))
	}
	return price, nil
}
