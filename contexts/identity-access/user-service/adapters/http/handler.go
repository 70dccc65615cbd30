package httpadapter

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	application "shoppinglist/contexts/identity-access/user-service/application"
	"shoppinglist/contexts/identity-access/user-service/domain/entities"
	domainerrors "shoppinglist/contexts/identity-access/user-service/domain/errors"
	"shoppinglist/contexts/identity-access/user-service/ports"
	httptransport "shoppinglist/contexts/identity-access/user-service/transport/http"
	"shoppinglist/internal/shared/model"
)

// Handler maps HTTP DTOs to the user application service and applies the
// request-shape validation the source enforced per route.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, request httptransport.RegisterUserRequest) error {
	if !validName(request.FirstName) || !validName(request.LastName) {
		return domainerrors.ErrInvalidRequest
	}
	if !validEmail(request.Email) || len(request.Password) < 4 {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Register(ctx, application.NewUser{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
	})
}

func (h Handler) CreateHandler(ctx context.Context, request httptransport.CreateUserRequest) error {
	if !validName(request.FirstName) || !validName(request.LastName) {
		return domainerrors.ErrInvalidRequest
	}
	if !validEmail(request.Email) || len(request.Password) < 4 || !model.IsValidID(request.RoleID) {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.Create(ctx, application.NewUser{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
		RoleID:    request.RoleID,
	})
}

func (h Handler) ListHandler(ctx context.Context, callerRoleID string) (httptransport.ListUsersResponse, error) {
	users, admin, err := h.Service.List(ctx, callerRoleID)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}

	roleNames := map[string]string{}
	items := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, h.toUserDTO(ctx, user, admin, roleNames))
	}
	return httptransport.ListUsersResponse{Users: items}, nil
}

func (h Handler) GetHandler(ctx context.Context, userID string, callerRoleID string) (httptransport.UserDTO, error) {
	if !model.IsValidID(userID) {
		return httptransport.UserDTO{}, domainerrors.ErrInvalidRequest
	}
	user, admin, err := h.Service.Get(ctx, userID, callerRoleID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return h.toUserDTO(ctx, user, admin, map[string]string{}), nil
}

func (h Handler) UpdateHandler(ctx context.Context, userID string, request httptransport.UpdateUserRequest, isAdmin bool) error {
	if !model.IsValidID(userID) {
		return domainerrors.ErrInvalidRequest
	}
	if request.FirstName != "" && !validName(request.FirstName) {
		return domainerrors.ErrInvalidRequest
	}
	if request.LastName != "" && !validName(request.LastName) {
		return domainerrors.ErrInvalidRequest
	}
	if request.Email != "" && !validEmail(request.Email) {
		return domainerrors.ErrInvalidRequest
	}
	if request.Password != "" && len(request.Password) < 4 {
		return domainerrors.ErrInvalidRequest
	}
	if request.RoleID != "" && !model.IsValidID(request.RoleID) {
		return domainerrors.ErrInvalidRequest
	}

	return h.Service.Update(ctx, userID, ports.UserUpdate{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  request.Password,
		RoleID:    request.RoleID,
	}, isAdmin)
}

func (h Handler) DeleteHandler(ctx context.Context, userID string) (entities.CascadeResult, error) {
	if !model.IsValidID(userID) {
		return entities.CascadeResult{}, domainerrors.ErrInvalidRequest
	}
	return h.Service.Delete(ctx, userID)
}

// toUserDTO renders the role-dependent projection. Role names are resolved
// per role id at most once per request.
func (h Handler) toUserDTO(ctx context.Context, user model.User, admin bool, roleNames map[string]string) httptransport.UserDTO {
	dto := httptransport.UserDTO{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if !admin {
		return dto
	}

	dto.RoleID = user.RoleID
	if user.RoleID != "" {
		name, seen := roleNames[user.RoleID]
		if !seen {
			if role, err := h.Service.Roles.ResolveRole(ctx, user.RoleID, ""); err == nil {
				name = role.Name
			}
			roleNames[user.RoleID] = name
		}
		if name != "" {
			dto.Role = &httptransport.RoleDTO{ID: user.RoleID, Name: name}
		}
	}

	lists, err := h.Service.PopulateLists(ctx, user)
	if err != nil {
		application.ResolveLogger(h.Logger).Warn("user list population failed",
			"event", "user_http_populate_failed",
			"module", "identity-access/user-service",
			"layer", "transport",
			"user_id", user.ID,
			"error", err.Error(),
		)
	}
	for _, list := range lists {
		dto.ShoppingLists = append(dto.ShoppingLists, httptransport.ShoppingListSummaryDTO{
			ID:     list.ID,
			Name:   list.Name,
			UserID: list.UserID,
		})
	}
	return dto
}

func validName(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) >= 2 && len(trimmed) <= 255
}

func validEmail(value string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(value))
	return err == nil
}
