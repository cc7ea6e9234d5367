package models

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Channel Tests
// ============================================================================

func TestChannels_Toggle(t *testing.T) {
	channels := Channels{ChannelEmail}

	channels = channels.Toggle(ChannelSMS)
	assert.ElementsMatch(t, Channels{ChannelEmail, ChannelSMS}, channels)

	channels = channels.Toggle(ChannelEmail)
	assert.Equal(t, Channels{ChannelSMS}, channels)

	channels = channels.Toggle(ChannelSMS)
	assert.Empty(t, channels)
}

func TestChannels_ToggleDoesNotMutateReceiver(t *testing.T) {
	original := Channels{ChannelEmail, ChannelSMS}
	_ = original.Toggle(ChannelEmail)
	_ = original[:1].Toggle(ChannelSMS)

	assert.Equal(t, Channels{ChannelEmail, ChannelSMS}, original)

	spare := make(Channels, 1, 2)
	spare[0] = ChannelEmail
	_ = spare.Toggle(ChannelSMS)
	assert.Equal(t, Channels{ChannelEmail, ""}, spare[:2])
}

func TestChannels_ToggleRemovesDuplicates(t *testing.T) {
	channels := Channels{ChannelSMS, ChannelEmail, ChannelSMS}
	assert.Equal(t, Channels{ChannelEmail}, channels.Toggle(ChannelSMS))
}

func TestChannels_ContainsAndString(t *testing.T) {
	channels := Channels{ChannelEmail, ChannelSMS}
	assert.True(t, channels.Contains(ChannelSMS))
	assert.False(t, Channels{}.Contains(ChannelSMS))
	assert.Equal(t, "email, sms", channels.String())
}

func TestReminder_Clone(t *testing.T) {
	r := Reminder{ID: "r1", Channels: Channels{ChannelEmail}}
	c := r.Clone()
	c.Channels[0] = ChannelSMS

	assert.Equal(t, ChannelEmail, r.Channels[0])
}

// ============================================================================
// Subscription Tests
// ============================================================================

func TestSubscription_DaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate string
		want    int
		wantErr bool
	}{
		{name: "future", endDate: "2026-03-20", want: 10},
		{name: "today", endDate: "2026-03-10", want: 0},
		{name: "lapsed", endDate: "2026-03-01", want: -9},
		{name: "malformed", endDate: "03/20/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subscription{EndDate: tt.endDate}.DaysRemaining(now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscription_DaysRemainingAcrossDST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		endDate string
		want    int
	}{
		// clocks spring forward on 2024-03-10
		{name: "spring forward", now: time.Date(2024, 3, 5, 9, 0, 0, 0, newYork), endDate: "2024-03-12", want: 7},
		{name: "spring forward lapsed", now: time.Date(2024, 3, 12, 9, 0, 0, 0, newYork), endDate: "2024-03-05", want: -7},
		// clocks fall back on 2024-11-03
		{name: "fall back", now: time.Date(2024, 11, 1, 23, 30, 0, 0, newYork), endDate: "2024-11-04", want: 3},
		{name: "day after change", now: time.Date(2024, 3, 10, 23, 0, 0, 0, newYork), endDate: "2024-03-11", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subscription{EndDate: tt.endDate}.DaysRemaining(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// Persisted Layout Tests
// ============================================================================

func TestJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Client{ID: "c1", Name: "A. Dupont", Email: "a@x.com", Phone: "555-1", BoutiqueID: "b1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c1","name":"A. Dupont","email":"a@x.com","phone":"555-1","boutiqueId":"b1"}`, string(data))

	data, err = json.Marshal(Reminder{ID: "r1", SubscriptionID: "s1", Interval: IntervalWeek, Channels: Channels{ChannelSMS}, Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"r1","subscriptionId":"s1","interval":"week","channels":["sms"],"message":"hi"}`, string(data))
}
