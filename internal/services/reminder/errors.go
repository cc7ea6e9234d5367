package reminder

import "errors"

// Domain errors for reminder service
var (
	ErrReminderNotFound = errors.New("reminder not found")
)
