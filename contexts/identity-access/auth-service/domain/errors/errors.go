package errors

import "errors"

var (
	ErrNotAuthorized  = errors.New("not authorized")
	ErrInvalidRequest = errors.New("invalid request")
)
