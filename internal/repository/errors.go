package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Callers wrap
// it with entity context ("phase: not found") and the HTTP layer maps it to
// a 404.
var ErrNotFound = errors.New("not found")
