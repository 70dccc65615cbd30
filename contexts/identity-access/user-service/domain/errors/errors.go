package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUserNotFound   = errors.New("user doesn't exists")
	ErrRoleNotFound   = errors.New("role doesn't exists")
	ErrUserExists     = errors.New("user exists")
	ErrNoUsers        = errors.New("no users")
	ErrNotAuthorized  = errors.New("not authorized")
)
