package errors

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrListExists           = errors.New("shopping list exists")
	ErrListNotFound         = errors.New("shopping list doesn't exists")
	ErrOwnerNotFound        = errors.New("user doesn't exists")
	ErrContributorsNotFound = errors.New("contributors doesn't exists")
	ErrNoShoppingLists      = errors.New("no shopping lists")
)
