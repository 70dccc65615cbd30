package httpadapter

import (
	"context"
	"log/slog"

	application "shoppinglist/contexts/identity-access/authorization-service/application"
	httptransport "shoppinglist/contexts/identity-access/authorization-service/transport/http"
	"shoppinglist/internal/shared/model"
)

// Handler maps HTTP DTOs to the authorization application service. Policy
// checks themselves are consumed directly by the platform route guard; the
// handler only carries the role read endpoints.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListRolesHandler returns every seeded role.
func (h Handler) ListRolesHandler(ctx context.Context) (httptransport.ListRolesResponse, error) {
	roles, err := h.Service.ListRoles(ctx)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("http list roles failed",
			"event", "authz_http_list_roles_failed",
			"module", "identity-access/authorization-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.ListRolesResponse{}, err
	}

	items := make([]httptransport.RoleDTO, 0, len(roles))
	for _, role := range roles {
		items = append(items, toRoleDTO(role))
	}
	return httptransport.ListRolesResponse{Roles: items}, nil
}

// GetRoleHandler resolves one role by id.
func (h Handler) GetRoleHandler(ctx context.Context, roleID string) (httptransport.RoleDTO, error) {
	role, err := h.Service.ResolveRole(ctx, roleID, "")
	if err != nil {
		return httptransport.RoleDTO{}, err
	}
	return toRoleDTO(role), nil
}

func toRoleDTO(role model.Role) httptransport.RoleDTO {
	return httptransport.RoleDTO{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}
