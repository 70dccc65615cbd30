package httpadapter

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	application "shoppinglist/contexts/identity-access/auth-service/application"
	domainerrors "shoppinglist/contexts/identity-access/auth-service/domain/errors"
	httptransport "shoppinglist/contexts/identity-access/auth-service/transport/http"
)

// Handler maps HTTP DTOs to the auth application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// LoginHandler validates the request shape and issues a token.
func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	email := strings.TrimSpace(request.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return httptransport.LoginResponse{}, domainerrors.ErrInvalidRequest
	}
	if len(request.Password) < 4 {
		return httptransport.LoginResponse{}, domainerrors.ErrInvalidRequest
	}

	token, err := h.Service.Login(ctx, email, request.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{Response: token}, nil
}
