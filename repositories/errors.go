package repositories

import "errors"

// ErrNotFound is returned by all repositories when a lookup matches no
// row. Services translate it into their own typed errors.
var ErrNotFound = errors.New("record not found")
