package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrLastAdmin is returned when a delete would leave no admin account.
var ErrLastAdmin = errors.New("cannot delete the last admin user")
