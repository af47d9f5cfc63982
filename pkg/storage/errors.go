package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when creating a record whose key is already taken.
var ErrAlreadyExists = errors.New("record already exists")

// ErrConflict is returned when a conditional write fails, e.g. because another
// session mutated the same wallet or inventory item concurrently.
var ErrConflict = errors.New("conditional write failed: state changed concurrently")
