package database

import "errors"

// ErrSlotNotFound is returned when nothing has been saved under a key yet
var ErrSlotNotFound = errors.New("slot not found")
