package reminder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/atelier/internal/app"
	"github.com/thenoetrevino/atelier/internal/cli"
	"github.com/thenoetrevino/atelier/internal/models"
	clientservice "github.com/thenoetrevino/atelier/internal/services/client"
	subscriptionservice "github.com/thenoetrevino/atelier/internal/services/subscription"
	clitest "github.com/thenoetrevino/atelier/internal/testutil/cli"
)

func setup(t *testing.T) (*app.App, models.Subscription) {
	t.Helper()
	ctx := context.Background()
	_, testApp := clitest.SetupCLITest(t)
	c := testApp.ClientService.CreateClient(ctx, clientservice.CreateClientRequest{
		Name: "Alice", Email: "a@x.io", Phone: "555", BoutiqueID: "b1",
	})
	s := testApp.SubscriptionService.CreateSubscription(ctx, subscriptionservice.CreateSubscriptionRequest{
		Name: "Gold", Price: 49.99, StartDate: "2024-01-01", EndDate: "2024-12-31", ClientID: c.ID,
	})
	return testApp, s
}

func createWeekly(t *testing.T, testApp *app.App, subscriptionID string) string {
	t.Helper()
	res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
		"--subscription", subscriptionID, "--interval", "week", "--channel", "email",
		"--message", "Renew **soon**", "--quiet",
	})
	require.NoError(t, res.Err)
	return strings.TrimSpace(res.Stdout)
}

func TestCreateReminder(t *testing.T) {
	testApp, s := setup(t)

	res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
		"--subscription", s.ID, "--interval", "month", "--channel", "sms,email", "--message", "hi",
	})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Reminder created for Gold (Alice)")

	reminders := testApp.ReminderService.GetRemindersBySubscription(context.Background(), s.ID)
	require.Len(t, reminders, 1)
	assert.Equal(t, models.IntervalMonth, reminders[0].Interval)
	assert.Equal(t, models.Channels{models.ChannelSMS, models.ChannelEmail}, reminders[0].Channels)
}

func TestCreateReminder_Validation(t *testing.T) {
	testApp, s := setup(t)

	res := clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
		"--subscription", s.ID, "--interval", "year", "--message", "hi",
	})
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	assert.Contains(t, res.Stderr, "Please select an interval")
	assert.Contains(t, res.Stderr, "Select at least one channel")

	res = clitest.ExecuteCLICommand(t, testApp, CreateCmd(), []string{
		"--subscription", s.ID, "--interval", "day", "--channel", "fax", "--message", "hi",
	})
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	assert.Contains(t, res.Stderr, "Channels must be sms or email")

	assert.Empty(t, testApp.ReminderService.ListReminders(context.Background()))
}

func TestUpdateReminder_ToggleChannel(t *testing.T) {
	ctx := context.Background()
	testApp, s := setup(t)
	id := createWeekly(t, testApp, s.ID)

	res := clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--toggle-channel", "sms"})
	require.NoError(t, res.Err)
	r, err := testApp.ReminderService.GetReminder(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, models.Channels{models.ChannelEmail, models.ChannelSMS}, r.Channels)

	res = clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--toggle-channel", "email", "--json"})
	require.NoError(t, res.Err)
	clitest.DecodeJSON(t, res.Stdout, "reminder", &r)
	assert.Equal(t, models.Channels{models.ChannelSMS}, r.Channels)

	// removing the last channel is rejected and leaves the record alone
	res = clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id, "--toggle-channel", "sms"})
	assert.Equal(t, cli.ExitValidation, res.ExitCode())
	r, err = testApp.ReminderService.GetReminder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Channels{models.ChannelSMS}, r.Channels)
}

func TestUpdateReminder_Fields(t *testing.T) {
	ctx := context.Background()
	testApp, s := setup(t)
	id := createWeekly(t, testApp, s.ID)

	res := clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{
		id, "--interval", "day", "--channels", "sms", "--message", "Tomorrow",
	})
	require.NoError(t, res.Err)

	r, err := testApp.ReminderService.GetReminder(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.IntervalDay, r.Interval)
	assert.Equal(t, models.Channels{models.ChannelSMS}, r.Channels)
	assert.Equal(t, "Tomorrow", r.Message)
	assert.Equal(t, s.ID, r.SubscriptionID)

	res = clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{id})
	assert.Equal(t, cli.ExitUsage, res.ExitCode())

	res = clitest.ExecuteCLICommand(t, testApp, UpdateCmd(), []string{"missing", "--message", "x"})
	assert.Equal(t, cli.ExitNotFound, res.ExitCode())
}

func TestShowReminder(t *testing.T) {
	testApp, s := setup(t)
	id := createWeekly(t, testApp, s.ID)

	res := clitest.ExecuteCLICommand(t, testApp, ShowCmd(), []string{id})
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Gold (Alice)")
	assert.Contains(t, res.Stdout, "Message")
	assert.Contains(t, res.Stdout, "soon")
}

func TestListAndDeleteReminders(t *testing.T) {
	ctx := context.Background()
	testApp, s := setup(t)
	id := createWeekly(t, testApp, s.ID)

	// orphaned reminders stay listed
	require.NoError(t, testApp.SubscriptionService.DeleteSubscription(ctx, s.ID))

	res := clitest.ExecuteCLICommand(t, testApp, ListCmd(), nil)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Unknown Subscription - every week via email")

	res = clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"--subscription", s.ID, "--quiet"})
	require.NoError(t, res.Err)
	assert.Equal(t, id+"\n", res.Stdout)

	res = clitest.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{id, "--quiet"})
	require.NoError(t, res.Err)
	assert.Empty(t, testApp.ReminderService.ListReminders(ctx))
}
