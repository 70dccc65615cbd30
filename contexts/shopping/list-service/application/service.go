package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "shoppinglist/contexts/shopping/list-service/domain/errors"
	"shoppinglist/contexts/shopping/list-service/ports"
	"shoppinglist/internal/shared/model"
)

// PopulatedList is a shopping list with its item and contributor ids
// resolved to records, the projection the read endpoints return.
type PopulatedList struct {
	List         model.ShoppingList
	Items        []model.ShoppingListItem
	AllowedUsers []model.User
}

// Service implements shopping list lifecycle operations.
type Service struct {
	Repo   ports.Repository
	Users  ports.UserStore
	Items  ports.ItemStore
	Logger *slog.Logger
}

// Create stores a new list owned by userID and appends its id to the
// owner's shoppingLists set. List names are unique across all users.
func (s Service) Create(ctx context.Context, name string, allowedUsers []string, userID string) error {
	name = strings.TrimSpace(name)

	exists, err := s.Repo.ShoppingListExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domainerrors.ErrListExists
	}

	ownerExists, err := s.Users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ownerExists {
		return domainerrors.ErrOwnerNotFound
	}

	if err := s.checkContributors(ctx, allowedUsers); err != nil {
		return err
	}

	now := time.Now().UTC()
	list, err := s.Repo.InsertShoppingList(ctx, model.ShoppingList{
		ID:           model.NewID(),
		Name:         name,
		UserID:       userID,
		AllowedUsers: allowedUsers,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	if err := s.Users.PushUserShoppingList(ctx, userID, list.ID); err != nil {
		ResolveLogger(s.Logger).Warn("owner back-reference not updated",
			"event", "list_owner_push_failed",
			"module", "shopping/list-service",
			"layer", "application",
			"shopping_list_id", list.ID,
			"user_id", userID,
			"error", err.Error(),
		)
	}

	ResolveLogger(s.Logger).Info("shopping list created",
		"event", "list_created",
		"module", "shopping/list-service",
		"layer", "application",
		"shopping_list_id", list.ID,
		"user_id", userID,
	)
	return nil
}

// AddAllowedUser grants a user access to the list. The set is a raw push:
// the source never deduplicated it and neither do we.
func (s Service) AddAllowedUser(ctx context.Context, shoppingListID string, userID string) error {
	exists, err := s.Repo.ShoppingListExists(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrListNotFound
	}

	userExists, err := s.Users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !userExists {
		return domainerrors.ErrOwnerNotFound
	}

	return s.Repo.PushAllowedUser(ctx, shoppingListID, userID)
}

// ListAll returns every list, populated. Empty is the NoContent condition.
func (s Service) ListAll(ctx context.Context) ([]PopulatedList, error) {
	lists, err := s.Repo.ListShoppingLists(ctx)
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, lists)
}

// ListByOwner returns the lists owned by userID, populated.
func (s Service) ListByOwner(ctx context.Context, userID string) ([]PopulatedList, error) {
	exists, err := s.Users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrOwnerNotFound
	}

	lists, err := s.Repo.ListShoppingListsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, lists)
}

// Get returns one list, populated.
func (s Service) Get(ctx context.Context, shoppingListID string) (PopulatedList, error) {
	list, err := s.Repo.FindShoppingListByID(ctx, shoppingListID)
	if errors.Is(err, model.ErrNotFound) {
		return PopulatedList{}, domainerrors.ErrListNotFound
	}
	if err != nil {
		return PopulatedList{}, err
	}
	return s.populate(ctx, list)
}

// Update patches name and/or replaces the allowed-user set.
func (s Service) Update(ctx context.Context, shoppingListID string, update ports.ListUpdate) error {
	exists, err := s.Repo.ShoppingListExists(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrListNotFound
	}

	if update.AllowedUsers != nil {
		if err := s.checkContributors(ctx, update.AllowedUsers); err != nil {
			return err
		}
	}
	update.Name = strings.TrimSpace(update.Name)
	return s.Repo.UpdateShoppingList(ctx, shoppingListID, update)
}

// RemoveAllowedUser revokes one user's access. Removing an id that is not
// present succeeds: the underlying pull is a no-op.
func (s Service) RemoveAllowedUser(ctx context.Context, shoppingListID string, allowedUserID string) error {
	exists, err := s.Repo.ShoppingListExists(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrListNotFound
	}
	return s.Repo.PullAllowedUser(ctx, shoppingListID, allowedUserID)
}

// Delete removes the list and detaches it from its owner's shoppingLists
// set. Items referencing the list are left in place, orphaned; this
// asymmetry with the user-deletion cascade is inherited behavior.
func (s Service) Delete(ctx context.Context, shoppingListID string) error {
	list, err := s.Repo.FindShoppingListByID(ctx, shoppingListID)
	if errors.Is(err, model.ErrNotFound) {
		return domainerrors.ErrListNotFound
	}
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteShoppingList(ctx, shoppingListID); err != nil {
		return err
	}

	if err := s.Users.PullUserShoppingList(ctx, list.UserID, shoppingListID); err != nil {
		ResolveLogger(s.Logger).Warn("owner back-reference not removed",
			"event", "list_owner_pull_failed",
			"module", "shopping/list-service",
			"layer", "application",
			"shopping_list_id", shoppingListID,
			"user_id", list.UserID,
			"error", err.Error(),
		)
	}
	return nil
}

// checkContributors verifies that a non-empty allowed-user set references
// at least one existing user, matching the source's contributor check.
func (s Service) checkContributors(ctx context.Context, allowedUsers []string) error {
	if len(allowedUsers) == 0 {
		return nil
	}
	found, err := s.Users.FindUsersByIDs(ctx, allowedUsers)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return domainerrors.ErrContributorsNotFound
	}
	return nil
}

func (s Service) populateAll(ctx context.Context, lists []model.ShoppingList) ([]PopulatedList, error) {
	if len(lists) == 0 {
		return nil, domainerrors.ErrNoShoppingLists
	}
	out := make([]PopulatedList, 0, len(lists))
	for _, list := range lists {
		populated, err := s.populate(ctx, list)
		if err != nil {
			return nil, err
		}
		out = append(out, populated)
	}
	return out, nil
}

func (s Service) populate(ctx context.Context, list model.ShoppingList) (PopulatedList, error) {
	populated := PopulatedList{List: list}

	if len(list.ShoppingListItems) > 0 {
		items, err := s.Items.FindShoppingListItemsByIDs(ctx, list.ShoppingListItems)
		if err != nil {
			return PopulatedList{}, err
		}
		populated.Items = items
	}
	if len(list.AllowedUsers) > 0 {
		users, err := s.Users.FindUsersByIDs(ctx, list.AllowedUsers)
		if err != nil {
			return PopulatedList{}, err
		}
		populated.AllowedUsers = users
	}
	return populated, nil
}
