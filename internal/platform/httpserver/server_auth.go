package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	autherrors "shoppinglist/contexts/identity-access/auth-service/domain/errors"
	authhttp "shoppinglist/contexts/identity-access/auth-service/transport/http"
)

func writeAuthError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{Message: message})
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrNotAuthorized):
		writeAuthError(w, http.StatusUnauthorized, err.Error())
	default:
		writeAuthError(w, http.StatusBadRequest, err.Error())
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
