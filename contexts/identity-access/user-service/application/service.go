package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	authapp "shoppinglist/contexts/identity-access/auth-service/application"
	"shoppinglist/contexts/identity-access/user-service/domain/entities"
	domainerrors "shoppinglist/contexts/identity-access/user-service/domain/errors"
	"shoppinglist/contexts/identity-access/user-service/ports"
	"shoppinglist/internal/shared/model"
)

// NewUser carries the fields accepted on registration and admin creation.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	RoleID    string
}

// Service implements user lifecycle operations.
type Service struct {
	Repo    ports.Repository
	Cascade ports.CascadeStore
	Roles   ports.RoleResolver
	Logger  *slog.Logger
}

// Register creates a user on the public endpoint. The seeded "user" role is
// always assigned; the caller cannot pick one.
func (s Service) Register(ctx context.Context, input NewUser) error {
	exists, err := s.Repo.UserExistsByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrUserExists
	}

	role, err := s.Roles.ResolveRole(ctx, "", model.RoleUser)
	if err != nil {
		return err
	}
	input.RoleID = role.ID
	return s.insert(ctx, input, "user_registered")
}

// Create creates a user with an explicit role. Admin-only at the boundary;
// the referenced role must exist.
func (s Service) Create(ctx context.Context, input NewUser) error {
	exists, err := s.Repo.UserExistsByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrUserExists
	}

	if _, err := s.Roles.ResolveRole(ctx, input.RoleID, ""); err != nil {
		return domainerrors.ErrRoleNotFound
	}
	return s.insert(ctx, input, "user_created")
}

func (s Service) insert(ctx context.Context, input NewUser, event string) error {
	hash, err := authapp.HashPassword(input.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user, err := s.Repo.InsertUser(ctx, model.User{
		ID:        model.NewID(),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     normalizeEmail(input.Email),
		Password:  hash,
		RoleID:    input.RoleID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("user stored",
		"event", event,
		"module", "identity-access/user-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return nil
}

// List returns all users. Admin callers get the full records; everyone else
// gets them stripped of role and list references. An empty result is the
// NoContent condition at the boundary.
func (s Service) List(ctx context.Context, callerRoleID string) ([]model.User, bool, error) {
	role, err := s.Roles.ResolveRole(ctx, callerRoleID, "")
	if err != nil {
		return nil, false, err
	}
	admin := role.Name == model.RoleAdmin

	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(users) == 0 {
		return nil, admin, domainerrors.ErrNoUsers
	}
	if !admin {
		for i := range users {
			users[i] = restrict(users[i])
		}
	}
	return users, admin, nil
}

// Get returns one user with the same role-dependent projection as List.
func (s Service) Get(ctx context.Context, userID string, callerRoleID string) (model.User, bool, error) {
	role, err := s.Roles.ResolveRole(ctx, callerRoleID, "")
	if err != nil {
		return model.User{}, false, err
	}
	admin := role.Name == model.RoleAdmin

	user, err := s.Repo.FindUserByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, admin, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, admin, err
	}
	if !admin {
		user = restrict(user)
	}
	return user, admin, nil
}

// PopulateLists resolves a user's shoppingLists ids to full records for the
// admin projection.
func (s Service) PopulateLists(ctx context.Context, user model.User) ([]model.ShoppingList, error) {
	if len(user.ShoppingLists) == 0 {
		return nil, nil
	}
	return s.Repo.FindShoppingListsByIDs(ctx, user.ShoppingLists)
}

// Update patches a user. A role change rides along only for admin actors;
// anyone else sending roleId is rejected outright.
func (s Service) Update(ctx context.Context, userID string, update ports.UserUpdate, isAdmin bool) error {
	if _, err := s.Repo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return domainerrors.ErrUserNotFound
		}
		return err
	}

	if update.RoleID != "" {
		if !isAdmin {
			return domainerrors.ErrNotAuthorized
		}
		role, err := s.Roles.ResolveRole(ctx, update.RoleID, "")
		if err != nil {
			return domainerrors.ErrRoleNotFound
		}
		update.RoleID = role.ID
	}

	if update.Password != "" {
		hash, err := authapp.HashPassword(update.Password)
		if err != nil {
			return err
		}
		update.Password = hash
	}
	update.Email = normalizeEmail(update.Email)

	return s.Repo.UpdateUser(ctx, userID, update)
}

// Delete removes a user and runs the cascade over dependent data. The
// cascade is best-effort: the result lists each attempted step, and a step
// failure never undoes the user delete.
func (s Service) Delete(ctx context.Context, userID string) (entities.CascadeResult, error) {
	user, err := s.Repo.FindUserByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return entities.CascadeResult{}, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return entities.CascadeResult{}, err
	}

	if err := s.Repo.DeleteUser(ctx, userID); err != nil {
		return entities.CascadeResult{}, err
	}

	result := s.runCascade(ctx, user)
	if failed := result.Failed(); len(failed) > 0 {
		ResolveLogger(s.Logger).Warn("user deletion cascade left residue",
			"event", "user_cascade_incomplete",
			"module", "identity-access/user-service",
			"layer", "application",
			"user_id", userID,
			"failed_steps", len(failed),
		)
	}
	return result, nil
}

func restrict(user model.User) model.User {
	user.RoleID = ""
	user.ShoppingLists = nil
	return user
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
