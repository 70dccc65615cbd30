package httptransport

import "time"

type RegisterUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    string `json:"roleId"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    string `json:"roleId"`
}

type RoleDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ShoppingListSummaryDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// UserDTO is the wire shape for user reads. Role and shopping-list fields
// are only present on the admin projection.
type UserDTO struct {
	ID            string                   `json:"id"`
	FirstName     string                   `json:"firstName"`
	LastName      string                   `json:"lastName"`
	Email         string                   `json:"email"`
	RoleID        string                   `json:"roleId,omitempty"`
	Role          *RoleDTO                 `json:"role,omitempty"`
	ShoppingLists []ShoppingListSummaryDTO `json:"shoppingLists,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

type ListUsersResponse struct {
	Users []UserDTO `json:"users"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
