package model

import "errors"

// ErrNotFound is returned by storage adapters when a referenced document
// does not exist. Services translate it into their own domain errors.
var ErrNotFound = errors.New("document not found")
