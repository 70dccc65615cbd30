package ports

import (
	"context"

	"shoppinglist/internal/shared/model"
)

// UserUpdate carries the patchable user fields. Empty strings mean
// "unchanged"; Password is expected pre-hashed.
type UserUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleID    string
}

// Repository is the user collection boundary.
type Repository interface {
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, user model.User) (model.User, error)
	FindUserByID(ctx context.Context, userID string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, userID string, update UserUpdate) error
	DeleteUser(ctx context.Context, userID string) error
	FindShoppingListsByIDs(ctx context.Context, listIDs []string) ([]model.ShoppingList, error)
}

// CascadeStore covers the cross-entity point mutations the user-deletion
// cascade issues. Each call is independent; none is transactional with the
// user delete.
type CascadeStore interface {
	FindShoppingListsByOwner(ctx context.Context, userID string) ([]model.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, shoppingListID string) error
	DeleteShoppingListItems(ctx context.Context, itemIDs []string) error
	PullAllowedUser(ctx context.Context, shoppingListID string, userID string) error
}

// RoleResolver is satisfied by the authorization-service's application
// service; user-service never reads the role collection directly.
type RoleResolver interface {
	ResolveRole(ctx context.Context, roleID string, roleName string) (model.Role, error)
}
