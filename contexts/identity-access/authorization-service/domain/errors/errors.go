package errors

import "errors"

var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrRoleNotFound  = errors.New("role not found")
	ErrInvalidRoleID = errors.New("invalid role id")
	ErrRoleRefEmpty  = errors.New("role id or role name required")
)
