package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrListNotFound   = errors.New("shopping list doesn't exists")
	ErrItemNotFound   = errors.New("shopping list item doesn't exists")
	ErrNoItems        = errors.New("no shopping list items")
)
