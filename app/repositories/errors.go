package repositories

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// translate it to a 404-class response.
var ErrNotFound = errors.New("record not found")
