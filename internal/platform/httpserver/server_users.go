package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	usererrors "shoppinglist/contexts/identity-access/user-service/domain/errors"
	userhttp "shoppinglist/contexts/identity-access/user-service/transport/http"
	"shoppinglist/internal/shared/model"
)

func writeUserError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, userhttp.ErrorResponse{Message: message})
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usererrors.ErrNotAuthorized):
		writeUserError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usererrors.ErrUserNotFound),
		errors.Is(err, usererrors.ErrRoleNotFound):
		writeUserError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usererrors.ErrUserExists):
		writeUserError(w, http.StatusConflict, err.Error())
	case errors.Is(err, usererrors.ErrNoUsers):
		w.WriteHeader(http.StatusNoContent)
	default:
		writeUserError(w, http.StatusBadRequest, err.Error())
	}
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req userhttp.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.users.Handler.RegisterHandler(r.Context(), req); err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User successfully registered")
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	var req userhttp.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.users.Handler.CreateHandler(r.Context(), req); err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User successfully created")
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCurrentUser(w, r)
	if !ok {
		return
	}

	resp, err := s.users.Handler.ListHandler(r.Context(), caller.identity.RoleID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !model.IsValidID(userID) {
		writeUserError(w, http.StatusBadRequest, "userId must be a valid id")
		return
	}
	caller, ok := s.requireCurrentUser(w, r)
	if !ok {
		return
	}

	resp, err := s.users.Handler.GetHandler(r.Context(), userID, caller.identity.RoleID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !model.IsValidID(userID) {
		writeUserError(w, http.StatusBadRequest, "userId must be a valid id")
		return
	}
	caller, ok := s.requireOwnerOrAdmin(w, r, userID, "")
	if !ok {
		return
	}

	var req userhttp.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.users.Handler.UpdateHandler(r.Context(), userID, req, caller.admin); err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User successfully updated")
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !model.IsValidID(userID) {
		writeUserError(w, http.StatusBadRequest, "userId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, userID, ""); !ok {
		return
	}

	result, err := s.users.Handler.DeleteHandler(r.Context(), userID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	if !result.Clean() {
		s.logger.Warn("user delete cascade left references behind",
			"event", "user_delete_cascade_incomplete",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"user_id", userID,
			"failed_steps", len(result.Failed()),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}
