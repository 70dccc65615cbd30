package ports

import (
	"context"

	"shoppinglist/internal/shared/model"
)

// Repository covers the read-only lookups policy checks depend on. Lookups
// for absent documents return the store's not-found error; the application
// layer decides whether that means Denied or NotFound.
type Repository interface {
	FindRoleByID(ctx context.Context, roleID string) (model.Role, error)
	FindRoleByName(ctx context.Context, name string) (model.Role, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	FindShoppingListByID(ctx context.Context, shoppingListID string) (model.ShoppingList, error)
}
