package subscription

import "errors"

// Domain errors for subscription service
var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
