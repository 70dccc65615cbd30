package httpserver

import (
	"errors"
	"net/http"

	authzerrors "shoppinglist/contexts/identity-access/authorization-service/domain/errors"
	authzhttp "shoppinglist/contexts/identity-access/authorization-service/transport/http"
	"shoppinglist/internal/shared/model"
)

func writeRoleError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, authzhttp.ErrorResponse{Message: message})
}

func writeRoleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrNotAuthorized):
		writeRoleError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, authzerrors.ErrRoleNotFound):
		writeRoleError(w, http.StatusNotFound, err.Error())
	default:
		writeRoleError(w, http.StatusBadRequest, err.Error())
	}
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	resp, err := s.authorization.Handler.ListRolesHandler(r.Context())
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	roleID := r.PathValue("roleId")
	if !model.IsValidID(roleID) {
		writeRoleError(w, http.StatusBadRequest, "roleId must be a valid id")
		return
	}
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	resp, err := s.authorization.Handler.GetRoleHandler(r.Context(), roleID)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
