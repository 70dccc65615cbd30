package httptransport

import "time"

// RoleDTO is the wire shape for role reads.
type RoleDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListRolesResponse struct {
	Roles []RoleDTO `json:"roles"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
