package httptransport

import "time"

type CreateShoppingListRequest struct {
	Name         string   `json:"name"`
	AllowedUsers []string `json:"allowedUsers"`
}

type UpdateShoppingListRequest struct {
	Name         string   `json:"name"`
	AllowedUsers []string `json:"allowedUsers"`
}

type AddAllowedUserRequest struct {
	UserID string `json:"userId"`
}

type RemoveAllowedUserRequest struct {
	AllowedUserID string `json:"allowedUserId"`
}

type AllowedUserDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ShoppingListItemDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Status         bool      `json:"status"`
	ShoppingListID string    `json:"shoppingListId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ShoppingListDTO is the populated wire shape: item and contributor ids
// resolved to records.
type ShoppingListDTO struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	UserID            string                `json:"userId"`
	ShoppingListItems []ShoppingListItemDTO `json:"shoppingListItems"`
	AllowedUsers      []AllowedUserDTO      `json:"allowedUsers"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

type ListShoppingListsResponse struct {
	ShoppingLists []ShoppingListDTO `json:"shoppingLists"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
