package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "shoppinglist/contexts/shopping/item-service/domain/errors"
	"shoppinglist/contexts/shopping/item-service/ports"
	"shoppinglist/internal/shared/model"
)

// NewItem carries the fields accepted per item on batch creation.
type NewItem struct {
	Name   string
	Status bool
}

// Service implements shopping list item lifecycle operations.
type Service struct {
	Repo   ports.Repository
	Lists  ports.ListStore
	Logger *slog.Logger
}

// CreateBatch stores the given items attached to the list and appends
// their ids to the list's item set in one push.
func (s Service) CreateBatch(ctx context.Context, shoppingListID string, inputs []NewItem) error {
	exists, err := s.Lists.ShoppingListExists(ctx, shoppingListID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrListNotFound
	}

	now := time.Now().UTC()
	items := make([]model.ShoppingListItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, model.ShoppingListItem{
			ID:             model.NewID(),
			Name:           strings.TrimSpace(input.Name),
			Status:         input.Status,
			ShoppingListID: shoppingListID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	stored, err := s.Repo.InsertShoppingListItems(ctx, items)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(stored))
	for _, item := range stored {
		ids = append(ids, item.ID)
	}
	if err := s.Lists.PushShoppingListItems(ctx, shoppingListID, ids); err != nil {
		ResolveLogger(s.Logger).Warn("list item set not updated",
			"event", "item_push_failed",
			"module", "shopping/item-service",
			"layer", "application",
			"shopping_list_id", shoppingListID,
			"error", err.Error(),
		)
	}
	return nil
}

// ListByList returns the items of one list. Empty is the NoContent
// condition at the boundary.
func (s Service) ListByList(ctx context.Context, shoppingListID string) ([]model.ShoppingListItem, error) {
	exists, err := s.Lists.ShoppingListExists(ctx, shoppingListID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrListNotFound
	}

	items, err := s.Repo.FindShoppingListItemsByList(ctx, shoppingListID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrNoItems
	}
	return items, nil
}

// Get returns one item scoped by its list.
func (s Service) Get(ctx context.Context, shoppingListID string, itemID string) (model.ShoppingListItem, error) {
	item, err := s.Repo.FindShoppingListItem(ctx, shoppingListID, itemID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ShoppingListItem{}, domainerrors.ErrItemNotFound
	}
	return item, err
}

// Update patches one item scoped by its list.
func (s Service) Update(ctx context.Context, shoppingListID string, itemID string, update ports.ItemUpdate) error {
	if _, err := s.Repo.FindShoppingListItem(ctx, shoppingListID, itemID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return domainerrors.ErrItemNotFound
		}
		return err
	}
	update.Name = strings.TrimSpace(update.Name)
	return s.Repo.UpdateShoppingListItem(ctx, shoppingListID, itemID, update)
}

// DeleteBatch removes the matching items and pulls each deleted id from
// the list's item set. Ids that match nothing are skipped; a batch that
// matches nothing at all is NotFound.
func (s Service) DeleteBatch(ctx context.Context, shoppingListID string, itemIDs []string) error {
	matched, err := s.Repo.FindShoppingListItemsByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return domainerrors.ErrItemNotFound
	}

	ids := make([]string, 0, len(matched))
	for _, item := range matched {
		ids = append(ids, item.ID)
	}
	if err := s.Repo.DeleteShoppingListItems(ctx, ids); err != nil {
		return err
	}

	for _, id := range ids {
		if err := s.Lists.PullShoppingListItem(ctx, shoppingListID, id); err != nil {
			ResolveLogger(s.Logger).Warn("deleted item id not pulled from list",
				"event", "item_pull_failed",
				"module", "shopping/item-service",
				"layer", "application",
				"shopping_list_id", shoppingListID,
				"item_id", id,
				"error", err.Error(),
			)
		}
	}
	return nil
}
