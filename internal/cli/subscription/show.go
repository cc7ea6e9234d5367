package subscription

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/cli/styles"
	"github.com/thenoetrevino/atelier/internal/models"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
)

// ShowCmd returns the subscription show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show subscription details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().String("id", "", "Subscription ID (can also be provided as positional argument)")
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

	id, err := cli.ResolveID(cmd, args, formatter, "subscription")
	if err != nil {
		return err
	}

	s, err := cliInstance.App.SubscriptionService.GetSubscription(ctx, id)
	if errors.Is(err, subscriptionservice.ErrSubscriptionNotFound) {
		return formatter.Fail(cli.ExitNotFound, "SUBSCRIPTION_NOT_FOUND", fmt.Sprintf("subscription %s not found", id))
	}
	if err != nil {
		return formatter.Fail(cli.ExitError, "SUBSCRIPTION_FETCH_ERROR", err.Error())
	}

	if formatter.Quiet {
		formatter.IDs(s.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("subscription", s)
	}

	reminders := cliInstance.App.ReminderService.GetRemindersBySubscription(ctx, s.ID)
	formatter.Println(styles.RenderCard(s.Name, []styles.Field{
		{Label: "ID", Value: s.ID},
		{Label: "Client", Value: cliInstance.App.Directory.ClientName(ctx, s.ClientID)},
		{Label: "Price", Value: fmt.Sprintf("$%.2f", s.Price)},
		{Label: "Period", Value: s.StartDate + " → " + s.EndDate},
		{Label: "Status", Value: status(s, time.Now())},
		{Label: "Reminders", Value: strconv.Itoa(len(reminders))},
	}))
	return nil
}

// status renders the days left until the end date
func status(s models.Subscription, now time.Time) string {
	days, err := s.DaysRemaining(now)
	switch {
	case err != nil:
		return styles.WarningStyle.Render("unknown end date")
	case days < 0:
		return styles.ErrorStyle.Render(fmt.Sprintf("expired %d days ago", -days))
	case days == 0:
		return styles.WarningStyle.Render("ends today")
	default:
		return styles.SuccessStyle.Render(fmt.Sprintf("%d days left", days))
	}
}
