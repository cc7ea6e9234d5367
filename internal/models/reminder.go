package models

import "strings"

// Interval is how often a reminder should repeat
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// Intervals lists every supported interval in display order
func Intervals() []Interval {
	return []Interval{IntervalDay, IntervalWeek, IntervalMonth}
}

// Channel is a delivery medium for a reminder
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Channels is an order-insignificant set of delivery channels.
// Duplicates are not prevented at the store level.
type Channels []Channel

// Contains reports whether ch is present
func (c Channels) Contains(ch Channel) bool {
	for _, existing := range c {
		if existing == ch {
			return true
		}
	}
	return false
}

// Toggle returns a new set with ch removed when present, appended when absent
func (c Channels) Toggle(ch Channel) Channels {
	if !c.Contains(ch) {
		return append(c.Clone(), ch)
	}
	out := make(Channels, 0, len(c))
	for _, existing := range c {
		if existing != ch {
			out = append(out, existing)
		}
	}
	return out
}

// Clone returns an independent copy
func (c Channels) Clone() Channels {
	if c == nil {
		return nil
	}
	out := make(Channels, len(c))
	copy(out, c)
	return out
}

// String renders the channels as a comma separated list
func (c Channels) String() string {
	parts := make([]string, len(c))
	for i, ch := range c {
		parts[i] = string(ch)
	}
	return strings.Join(parts, ", ")
}

// Reminder is a renewal reminder configured for a subscription.
// Reminders are stored only; nothing dispatches them.
type Reminder struct {
	ID             string   `json:"id"`
	SubscriptionID string   `json:"subscriptionId"`
	Interval       Interval `json:"interval"`
	Channels       Channels `json:"channels"`
	Message        string   `json:"message"`
}

// GetID returns the reminder identifier
func (r Reminder) GetID() string {
	return r.ID
}

// Clone returns a copy that shares no mutable state with r
func (r Reminder) Clone() Reminder {
	r.Channels = r.Channels.Clone()
	return r
}
