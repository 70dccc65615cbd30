package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	application "shoppinglist/contexts/shopping/list-service/application"
	domainerrors "shoppinglist/contexts/shopping/list-service/domain/errors"
	"shoppinglist/contexts/shopping/list-service/ports"
	httptransport "shoppinglist/contexts/shopping/list-service/transport/http"
	"shoppinglist/internal/shared/model"
)

// Handler maps HTTP DTOs to the shopping list application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateHandler(ctx context.Context, request httptransport.CreateShoppingListRequest, userID string) error {
	if !validListName(request.Name, 2) || !validIDs(request.AllowedUsers) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Create(ctx, request.Name, request.AllowedUsers, userID)
}

func (h Handler) AddAllowedUserHandler(ctx context.Context, shoppingListID string, request httptransport.AddAllowedUserRequest) error {
	if !model.IsValidID(shoppingListID) || !model.IsValidID(request.UserID) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.AddAllowedUser(ctx, shoppingListID, request.UserID)
}

func (h Handler) ListAllHandler(ctx context.Context) (httptransport.ListShoppingListsResponse, error) {
	lists, err := h.Service.ListAll(ctx)
	if err != nil {
		return httptransport.ListShoppingListsResponse{}, err
	}
	return toListResponse(lists), nil
}

func (h Handler) ListByOwnerHandler(ctx context.Context, userID string) (httptransport.ListShoppingListsResponse, error) {
	if !model.IsValidID(userID) {
		return httptransport.ListShoppingListsResponse{}, domainerrors.ErrInvalidRequest
	}
	lists, err := h.Service.ListByOwner(ctx, userID)
	if err != nil {
		return httptransport.ListShoppingListsResponse{}, err
	}
	return toListResponse(lists), nil
}

func (h Handler) GetHandler(ctx context.Context, shoppingListID string) (httptransport.ShoppingListDTO, error) {
	if !model.IsValidID(shoppingListID) {
		return httptransport.ShoppingListDTO{}, domainerrors.ErrInvalidRequest
	}
	list, err := h.Service.Get(ctx, shoppingListID)
	if err != nil {
		return httptransport.ShoppingListDTO{}, err
	}
	return toListDTO(list), nil
}

func (h Handler) UpdateHandler(ctx context.Context, shoppingListID string, request httptransport.UpdateShoppingListRequest) error {
	if !model.IsValidID(shoppingListID) || !validListName(request.Name, 4) || !validIDs(request.AllowedUsers) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Update(ctx, shoppingListID, ports.ListUpdate{
		Name:         request.Name,
		AllowedUsers: request.AllowedUsers,
	})
}

func (h Handler) RemoveAllowedUserHandler(ctx context.Context, shoppingListID string, request httptransport.RemoveAllowedUserRequest) error {
	if !model.IsValidID(shoppingListID) || !model.IsValidID(request.AllowedUserID) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.RemoveAllowedUser(ctx, shoppingListID, request.AllowedUserID)
}

func (h Handler) DeleteHandler(ctx context.Context, shoppingListID string) error {
	if !model.IsValidID(shoppingListID) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Delete(ctx, shoppingListID)
}

func toListResponse(lists []application.PopulatedList) httptransport.ListShoppingListsResponse {
	items := make([]httptransport.ShoppingListDTO, 0, len(lists))
	for _, list := range lists {
		items = append(items, toListDTO(list))
	}
	return httptransport.ListShoppingListsResponse{ShoppingLists: items}
}

func toListDTO(populated application.PopulatedList) httptransport.ShoppingListDTO {
	dto := httptransport.ShoppingListDTO{
		ID:                populated.List.ID,
		Name:              populated.List.Name,
		UserID:            populated.List.UserID,
		ShoppingListItems: []httptransport.ShoppingListItemDTO{},
		AllowedUsers:      []httptransport.AllowedUserDTO{},
		CreatedAt:         populated.List.CreatedAt,
		UpdatedAt:         populated.List.UpdatedAt,
	}
	for _, item := range populated.Items {
		dto.ShoppingListItems = append(dto.ShoppingListItems, httptransport.ShoppingListItemDTO{
			ID:             item.ID,
			Name:           item.Name,
			Status:         item.Status,
			ShoppingListID: item.ShoppingListID,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
		})
	}
	for _, user := range populated.AllowedUsers {
		dto.AllowedUsers = append(dto.AllowedUsers, httptransport.AllowedUserDTO{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		})
	}
	return dto
}

func validListName(name string, minLen int) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= minLen && len(trimmed) <= 255
}

func validIDs(ids []string) bool {
	for _, id := range ids {
		if !model.IsValidID(id) {
			return false
		}
	}
	return true
}
