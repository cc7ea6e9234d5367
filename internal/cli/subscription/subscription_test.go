package subscription

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
	reminderservice "github.com/thenoetrevino/atelier/internal/services/reminder"
	clitest "github.com/thenoetrevino/atelier/internal/testutil/cli"
)

func setup(t *testing.T) (*app.App, models.Client) {
	t.Helper()
	_, testApp := clitest.SetupCLITest(t)
	c := testApp.ClientService.CreateClient(context.Background(), clientservice.CreateClientRequest{
		Name: "Alice", Email: "a@x.io", Phone: "555", BoutiqueID: "b1",
	})
	return testApp, c
}

func createGold(t *testing.T, testApp *app.App, clientID string) string {
	t.Helper()
	res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
		"--name", "Gold", "--price", "49.99", "--start", "2024-01-01", "--end", "2024-12-31",
		"--client", clientID, "--quiet",
	})
	require.NoError(t, res.Err)
	return strings.TrimSpace(res.Stdout)
}

func TestCreateSubscription(t *testing.T) {
	testApp, c := setup(t)

	id := createGold(t, testApp, c.ID)

	s, err := testApp.SubscriptionService.GetSubscription(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Gold", s.Name)
	assert.InDelta(t, 49.99, s.Price, 1e-9)
	assert.Equal(t, c.ID, s.ClientID)
}

func TestCreateSubscription_Negative(t *testing.T) {
	testApp, c := setup(t)

	t.Run("non numeric price", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
			"--name", "Gold", "--price", "cheap", "--start", "2024-01-01", "--end", "2024-12-31", "--client", c.ID,
		})
		assert.Equal(t, cli.ExitDataErr, res.ExitCode())
	})

	for _, price := range []string{"inf", "+Inf", "-inf", "NaN"} {
		t.Run("non finite price "+price, func(t *testing.T) {
			res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
				"--name", "Gold", "--price", price, "--start", "2024-01-01", "--end", "2024-12-31", "--client", c.ID, "--json",
			})
			assert.Equal(t, cli.ExitDataErr, res.ExitCode())
			assert.Contains(t, res.Stdout, "INVALID_PRICE")
		})
	}

	t.Run("negative price and bad date", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
			"--name", "Gold", "--price", "-1", "--start", "01/01/2024", "--end", "2024-12-31", "--client", c.ID,
		})
		assert.Equal(t, cli.ExitValidation, res.ExitCode())
		assert.Contains(t, res.Stderr, "Price cannot be negative")
		assert.Contains(t, res.Stderr, "Start date must be YYYY-MM-DD")
	})

	assert.Empty(t, testApp.SubscriptionService.ListSubscriptions(context.Background()))
}

func TestUpdateSubscription_Price(t *testing.T) {
	ctx := context.Background()
	testApp, c := setup(t)
	id := createGold(t, testApp, c.ID)

	res := clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--price", "39.99"})
	require.NoError(t, res.Err)

	s, err := testApp.SubscriptionService.GetSubscription(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 39.99, s.Price, 1e-9)
	assert.Equal(t, "Gold", s.Name)
	assert.Equal(t, "2024-01-01", s.StartDate)
	assert.Equal(t, "2024-12-31", s.EndDate)
	assert.Equal(t, c.ID, s.ClientID)

	res = clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--price", "inf"})
	assert.Equal(t, cli.ExitDataErr, res.ExitCode())
	s, err = testApp.SubscriptionService.GetSubscription(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 39.99, s.Price, 1e-9)
}

func TestListSubscriptions(t *testing.T) {
	testApp, c := setup(t)
	id := createGold(t, testApp, c.ID)
	createGold(t, testApp, "other")

	res := clitest.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Found 2 subscriptions")
	assert.Contains(t, res.Stdout, "- Alice")
	assert.Contains(t, res.Stdout, "- Unknown Client")

	res = clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--client", c.ID, "--quiet"})
	require.NoError(t, res.Err)
	assert.Equal(t, id+"\n", res.Stdout)
}

func TestShowSubscription(t *testing.T) {
	testApp, c := setup(t)
	id := createGold(t, testApp, c.ID)

	res := clitest.ExecuteCLICommand(t, testApp, ShowCmd(), []string{id})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Gold")
	assert.Contains(t, res.Stdout, "$49.99")
	assert.Contains(t, res.Stdout, "Alice")

	res = clitest.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"missing", "--json"})
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
	out := clitest.ParseJSON(t, res.Stdout)
	assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", out["error"].(map[string]any)["code"])
}

func TestDeleteSubscription(t *testing.T) {
	ctx := context.Background()
	testApp, c := setup(t)
	id := createGold(t, testApp, c.ID)

	res := clitest.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{id, "--json"})
	require.NoError(t, res.Err)
	assert.Empty(t, testApp.SubscriptionService.ListSubscriptions(ctx))
}

func TestSubscriptionReminders(t *testing.T) {
	ctx := context.Background()
	testApp, c := setup(t)
	id := createGold(t, testApp, c.ID)

	testApp.ReminderService.CreateReminder(ctx, reminderservice.CreateReminderRequest{
		SubscriptionID: id,
		Interval:       models.IntervalWeek,
		Channels:       models.Channels{models.ChannelEmail},
		Message:        "Renew soon",
	})

	res := clitest.ExecuteCLICommand(t, testApp, RemindersCmd(), []string{id})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Gold (Alice) has 1 reminders")
	assert.Contains(t, res.Stdout, "every week via email")
}

func TestStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Contains(t, status(models.Subscription{EndDate: "2024-06-11"}, now), "10 days left")
	assert.Contains(t, status(models.Subscription{EndDate: "2024-06-01"}, now), "ends today")
	assert.Contains(t, status(models.Subscription{EndDate: "2024-05-30"}, now), "expired 2 days ago")
	assert.Contains(t, status(models.Subscription{EndDate: "soon"}, now), "unknown end date")
}
