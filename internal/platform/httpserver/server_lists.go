package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	listerrors "shoppinglist/contexts/shopping/list-service/domain/errors"
	listhttp "shoppinglist/contexts/shopping/list-service/transport/http"
	"shoppinglist/internal/shared/model"
)

func writeListError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, listhttp.ErrorResponse{Message: message})
}

func writeListDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listerrors.ErrListExists):
		writeListError(w, http.StatusConflict, err.Error())
	case errors.Is(err, listerrors.ErrListNotFound),
		errors.Is(err, listerrors.ErrOwnerNotFound),
		errors.Is(err, listerrors.ErrContributorsNotFound):
		writeListError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, listerrors.ErrNoShoppingLists):
		w.WriteHeader(http.StatusNoContent)
	default:
		writeListError(w, http.StatusBadRequest, err.Error())
	}
}

func (s *Server) handleCreateShoppingList(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.requireCurrentUser(w, r)
	if !ok {
		return
	}

	var req listhttp.CreateShoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.lists.Handler.CreateHandler(r.Context(), req, caller.identity.UserID); err != nil {
		writeListDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Shopping list successfully created")
}

func (s *Server) handleListShoppingLists(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	resp, err := s.lists.Handler.ListAllHandler(r.Context())
	if err != nil {
		writeListDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListShoppingListsByOwner(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if !model.IsValidID(userID) {
		writeListError(w, http.StatusBadRequest, "userId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, userID, ""); !ok {
		return
	}

	resp, err := s.lists.Handler.ListByOwnerHandler(r.Context(), userID)
	if err != nil {
		writeListDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetShoppingList(w http.ResponseWriter, r *http.Request) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeListError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	resp, err := s.lists.Handler.GetHandler(r.Context(), shoppingListID)
	if err != nil {
		writeListDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateShoppingList(w http.ResponseWriter, r *http.Request) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeListError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, "", shoppingListID); !ok {
		return
	}

	var req listhttp.UpdateShoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.lists.Handler.UpdateHandler(r.Context(), shoppingListID, req); err != nil {
		writeListDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Shopping list successfully updated")
}

func (s *Server) handleDeleteShoppingList(w http.ResponseWriter, r *http.Request) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeListError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, "", shoppingListID); !ok {
		return
	}

	if err := s.lists.Handler.DeleteHandler(r.Context(), shoppingListID); err != nil {
		writeListDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddAllowedUser(w http.ResponseWriter, r *http.Request) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeListError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, "", shoppingListID); !ok {
		return
	}

	var req listhttp.AddAllowedUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.lists.Handler.AddAllowedUserHandler(r.Context(), shoppingListID, req); err != nil {
		writeListDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "User successfully added to shopping list")
}

func (s *Server) handleRemoveAllowedUser(w http.ResponseWriter, r *http.Request) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeListError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return
	}
	if _, ok := s.requireOwnerOrAdmin(w, r, "", shoppingListID); !ok {
		return
	}

	var req listhttp.RemoveAllowedUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeListError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.lists.Handler.RemoveAllowedUserHandler(r.Context(), shoppingListID, req); err != nil {
		writeListDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
