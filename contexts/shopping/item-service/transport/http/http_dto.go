package httptransport

import "time"

type NewItemDTO struct {
	Name   string `json:"name"`
	Status *bool  `json:"status"`
}

type CreateItemsRequest struct {
	Items []NewItemDTO `json:"items"`
}

type UpdateItemRequest struct {
	Name   string `json:"name"`
	Status *bool  `json:"status"`
}

type DeleteItemsRequest struct {
	IDs []string `json:"ids"`
}

type ShoppingListItemDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         bool      `json:"status"`
	ShoppingListID string    `json:"shoppingListId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ListItemsResponse struct {
	Items []ShoppingListItemDTO `json:"items"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
