package boutique

import (
	"github.com/thenoetrevino/atelier/internal/models"
	"github.com/thenoetrevino/atelier/internal/validation"
)

var messages = validation.Messages{
	"name.required":       "Name is required",
	"address.required":    "Address is required",
	"businessId.required": "Business ID is required",
}

// Validate checks a create request before it reaches the store
func Validate(req CreateBoutiqueRequest) validation.Errors {
	return validation.Struct(req, messages)
}

// ValidateUpdate checks the record that would result from applying req to existing
func ValidateUpdate(existing models.Boutique, req UpdateBoutiqueRequest) validation.Errors {
	merged := ApplyUpdate(existing, req)
	return Validate(CreateBoutiqueRequest{
		Name:       merged.Name,
		Address:    merged.Address,
		BusinessID: merged.BusinessID,
	})
}
