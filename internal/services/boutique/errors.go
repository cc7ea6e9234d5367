package boutique

import "errors"

// Domain errors for boutique service
var (
	ErrBoutiqueNotFound = errors.New("boutique not found")
)
