package repository

import "errors"

// ErrCorrupt is returned when the store file exists but cannot be parsed
// as a JSON array of contact messages.
var ErrCorrupt = errors.New("store file corrupt")
