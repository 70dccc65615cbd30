package ports

import (
	"context"

	"shoppinglist/internal/shared/model"
)

// ListUpdate carries the patchable list fields. Name empty means
// unchanged; AllowedUsers nil means unchanged, non-nil replaces the set.
type ListUpdate struct {
	Name         string
	AllowedUsers []string
}

// Repository is the shoppingList collection boundary.
type Repository interface {
	ShoppingListExistsByName(ctx context.Context, name string) (bool, error)
	ShoppingListExists(ctx context.Context, shoppingListID string) (bool, error)
	InsertShoppingList(ctx context.Context, list model.ShoppingList) (model.ShoppingList, error)
	FindShoppingListByID(ctx context.Context, shoppingListID string) (model.ShoppingList, error)
	ListShoppingLists(ctx context.Context) ([]model.ShoppingList, error)
	ListShoppingListsByOwner(ctx context.Context, userID string) ([]model.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, shoppingListID string, update ListUpdate) error
	DeleteShoppingList(ctx context.Context, shoppingListID string) error
	PushAllowedUser(ctx context.Context, shoppingListID string, userID string) error
	PullAllowedUser(ctx context.Context, shoppingListID string, userID string) error
}

// UserStore covers the cross-entity reads and the owner back-reference
// mutations list operations need.
type UserStore interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	FindUsersByIDs(ctx context.Context, userIDs []string) ([]model.User, error)
	PushUserShoppingList(ctx context.Context, userID string, shoppingListID string) error
	PullUserShoppingList(ctx context.Context, userID string, shoppingListID string) error
}

// ItemStore resolves item ids for the populated list projection.
type ItemStore interface {
	FindShoppingListItemsByIDs(ctx context.Context, itemIDs []string) ([]model.ShoppingListItem, error)
}
