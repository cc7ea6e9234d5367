package subscription

import (
	"github.com/thenoetrevino/atelier/internal/models"
	"github.com/thenoetrevino/atelier/internal/validation"
)

var messages = validation.Messages{
	"name.required":      "Name is required",
	"price.finite":       "Price must be a finite number",
	"price.gte":          "Price cannot be negative",
	"startDate.required": "Start date is required",
	"startDate.datetime": "Start date must be YYYY-MM-DD",
	"endDate.required":   "End date is required",
	"endDate.datetime":   "End date must be YYYY-MM-DD",
	"clientId.required":  "Client is required",
}

// Validate checks a create request before it reaches the store
func Validate(req CreateSubscriptionRequest) validation.Errors {
	return validation.Struct(req, messages)
}

// ValidateUpdate checks the record that would result from applying req to existing
func ValidateUpdate(existing models.Subscription, req UpdateSubscriptionRequest) validation.Errors {
	merged := ApplyUpdate(existing, req)
	return Validate(CreateSubscriptionRequest{
		Name:      merged.Name,
		Price:     merged.Price,
		StartDate: merged.StartDate,
		EndDate:   merged.EndDate,
		ClientID:  merged.ClientID,
	})
}
