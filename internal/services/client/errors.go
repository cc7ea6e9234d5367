package client

import "errors"

// Domain errors for client service
var (
	ErrClientNotFound = errors.New("client not found")
)
