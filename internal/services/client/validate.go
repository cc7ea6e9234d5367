package client

import (
	"github.com/thenoetrevino/atelier/internal/models"
	"github.com/thenoetrevino/atelier/internal/validation"
)

var messages = validation.Messages{
	"name.required":       "Name is required",
	"email":               "Invalid email address",
	"phone.required":      "Phone number is required",
	"boutiqueId.required": "Boutique is required",
}

// Validate checks a create request before it reaches the store
func Validate(req CreateClientRequest) validation.Errors {
	return validation.Struct(req, messages)
}

// ValidateUpdate checks the record that would result from applying req to existing
func ValidateUpdate(existing models.Client, req UpdateClientRequest) validation.Errors {
	merged := ApplyUpdate(existing, req)
	return Validate(CreateClientRequest{
		Name:       merged.Name,
		Email:      merged.Email,
		Phone:      merged.Phone,
		BoutiqueID: merged.BoutiqueID,
	})
}
