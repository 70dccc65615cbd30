package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	application "shoppinglist/contexts/shopping/item-service/application"
	domainerrors "shoppinglist/contexts/shopping/item-service/domain/errors"
	"shoppinglist/contexts/shopping/item-service/ports"
	httptransport "shoppinglist/contexts/shopping/item-service/transport/http"
	"shoppinglist/internal/shared/model"
)

// Handler maps HTTP DTOs to the item application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateHandler(ctx context.Context, shoppingListID string, request httptransport.CreateItemsRequest) error {
	if !model.IsValidID(shoppingListID) || len(request.Items) == 0 {
		return domainerrors.ErrInvalidRequest
	}
	inputs := make([]application.NewItem, 0, len(request.Items))
	for _, item := range request.Items {
		if !validItemName(item.Name) || item.Status == nil {
			return domainerrors.ErrInvalidRequest
		}
		inputs = append(inputs, application.NewItem{Name: item.Name, Status: *item.Status})
	}
	return h.Service.CreateBatch(ctx, shoppingListID, inputs)
}

func (h Handler) ListHandler(ctx context.Context, shoppingListID string) (httptransport.ListItemsResponse, error) {
	if !model.IsValidID(shoppingListID) {
		return httptransport.ListItemsResponse{}, domainerrors.ErrInvalidRequest
	}
	items, err := h.Service.ListByList(ctx, shoppingListID)
	if err != nil {
		return httptransport.ListItemsResponse{}, err
	}

	out := make([]httptransport.ShoppingListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toItemDTO(item))
	}
	return httptransport.ListItemsResponse{Items: out}, nil
}

func (h Handler) GetHandler(ctx context.Context, shoppingListID string, itemID string) (httptransport.ShoppingListItemDTO, error) {
	if !model.IsValidID(shoppingListID) || !model.IsValidID(itemID) {
		return httptransport.ShoppingListItemDTO{}, domainerrors.ErrInvalidRequest
	}
	item, err := h.Service.Get(ctx, shoppingListID, itemID)
	if err != nil {
		return httptransport.ShoppingListItemDTO{}, err
	}
	return toItemDTO(item), nil
}

func (h Handler) UpdateHandler(ctx context.Context, shoppingListID string, itemID string, request httptransport.UpdateItemRequest) error {
	if !model.IsValidID(shoppingListID) || !model.IsValidID(itemID) {
		return domainerrors.ErrInvalidRequest
	}
	if request.Name != "" && !validItemName(request.Name) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Update(ctx, shoppingListID, itemID, ports.ItemUpdate{
		Name:   request.Name,
		Status: request.Status,
	})
}

func (h Handler) DeleteHandler(ctx context.Context, shoppingListID string, request httptransport.DeleteItemsRequest) error {
	if !model.IsValidID(shoppingListID) || len(request.IDs) == 0 {
		return domainerrors.ErrInvalidRequest
	}
	for _, id := range request.IDs {
		if !model.IsValidID(id) {
			return domainerrors.ErrInvalidRequest
		}
	}
	return h.Service.DeleteBatch(ctx, shoppingListID, request.IDs)
}

func toItemDTO(item model.ShoppingListItem) httptransport.ShoppingListItemDTO {
	return httptransport.ShoppingListItemDTO{
		ID:             item.ID,
		Name:           item.Name,
		Status:         item.Status,
		ShoppingListID: item.ShoppingListID,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func validItemName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= 4 && len(trimmed) <= 255
}
