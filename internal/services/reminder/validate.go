package reminder

import (
	"github.com/thenoetrevino/atelier/internal/models"
	"github.com/thenoetrevino/atelier/internal/validation"
)

var messages = validation.Messages{
	"subscriptionId.required": "Subscription is required",
	"interval":                "Please select an interval",
	"channels.min":            "Select at least one channel",
	"channels.oneof":          "Channels must be sms or email",
	"message.required":        "Message is required",
}

// Validate checks a create request before it reaches the store
func Validate(req CreateReminderRequest) validation.Errors {
	return validation.Struct(req, messages)
}

// ValidateUpdate checks the record that would result from applying req to existing
func ValidateUpdate(existing models.Reminder, req UpdateReminderRequest) validation.Errors {
	merged := ApplyUpdate(existing, req)
	return Validate(CreateReminderRequest{
		SubscriptionID: merged.SubscriptionID,
		Interval:       merged.Interval,
		Channels:       merged.Channels,
		Message:        merged.Message,
	})
}
