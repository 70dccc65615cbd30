package ports

import (
	"context"

	"shoppinglist/internal/shared/model"
)

// Repository is the single read login depends on.
type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (model.User, error)
}
