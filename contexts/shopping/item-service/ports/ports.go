package ports

import (
	"context"

	"shoppinglist/internal/shared/model"
)

// ItemUpdate carries the patchable item fields. Name empty means
// unchanged; Status nil means unchanged.
type ItemUpdate struct {
	Name   string
	Status *bool
}

// Repository is the shoppingListItem collection boundary.
type Repository interface {
	InsertShoppingListItems(ctx context.Context, items []model.ShoppingListItem) ([]model.ShoppingListItem, error)
	FindShoppingListItemsByList(ctx context.Context, shoppingListID string) ([]model.ShoppingListItem, error)
	FindShoppingListItem(ctx context.Context, shoppingListID string, itemID string) (model.ShoppingListItem, error)
	FindShoppingListItemsByIDs(ctx context.Context, itemIDs []string) ([]model.ShoppingListItem, error)
	UpdateShoppingListItem(ctx context.Context, shoppingListID string, itemID string, update ItemUpdate) error
	DeleteShoppingListItems(ctx context.Context, itemIDs []string) error
}

// ListStore covers the owning list's existence check and item-set
// back-reference mutations.
type ListStore interface {
	ShoppingListExists(ctx context.Context, shoppingListID string) (bool, error)
	PushShoppingListItems(ctx context.Context, shoppingListID string, itemIDs []string) error
	PullShoppingListItem(ctx context.Context, shoppingListID string, itemID string) error
}
