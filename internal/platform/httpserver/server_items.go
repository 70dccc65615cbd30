package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	itemerrors "shoppinglist/contexts/shopping/item-service/domain/errors"
	itemhttp "shoppinglist/contexts/shopping/item-service/transport/http"
	"shoppinglist/internal/shared/model"
)

func writeItemError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, itemhttp.ErrorResponse{Message: message})
}

func writeItemDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, itemerrors.ErrListNotFound),
		errors.Is(err, itemerrors.ErrItemNotFound):
		writeItemError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, itemerrors.ErrNoItems):
		w.WriteHeader(http.StatusNoContent)
	default:
		writeItemError(w, http.StatusBadRequest, err.Error())
	}
}

// itemRouteIDs validates the list (and optionally item) path parameters
// shared by every item route.
func itemRouteIDs(w http.ResponseWriter, r *http.Request, withItem bool) (string, string, bool) {
	shoppingListID := r.PathValue("shoppingListId")
	if !model.IsValidID(shoppingListID) {
		writeItemError(w, http.StatusBadRequest, "shoppingListId must be a valid id")
		return "", "", false
	}
	if !withItem {
		return shoppingListID, "", true
	}
	itemID := r.PathValue("itemId")
	if !model.IsValidID(itemID) {
		writeItemError(w, http.StatusBadRequest, "itemId must be a valid id")
		return "", "", false
	}
	return shoppingListID, itemID, true
}

func (s *Server) handleCreateItems(w http.ResponseWriter, r *http.Request) {
	shoppingListID, _, ok := itemRouteIDs(w, r, false)
	if !ok {
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	var req itemhttp.CreateItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeItemError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.items.Handler.CreateHandler(r.Context(), shoppingListID, req); err != nil {
		writeItemDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Shopping list items successfully created")
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	shoppingListID, _, ok := itemRouteIDs(w, r, false)
	if !ok {
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	resp, err := s.items.Handler.ListHandler(r.Context(), shoppingListID)
	if err != nil {
		writeItemDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	shoppingListID, itemID, ok := itemRouteIDs(w, r, true)
	if !ok {
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	resp, err := s.items.Handler.GetHandler(r.Context(), shoppingListID, itemID)
	if err != nil {
		writeItemDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	shoppingListID, itemID, ok := itemRouteIDs(w, r, true)
	if !ok {
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	var req itemhttp.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeItemError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.items.Handler.UpdateHandler(r.Context(), shoppingListID, itemID, req); err != nil {
		writeItemDomainError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Shopping list item successfully updated")
}

func (s *Server) handleDeleteItems(w http.ResponseWriter, r *http.Request) {
	shoppingListID, _, ok := itemRouteIDs(w, r, false)
	if !ok {
		return
	}
	if _, ok := s.requireAllowed(w, r, shoppingListID); !ok {
		return
	}

	var req itemhttp.DeleteItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeItemError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	if err := s.items.Handler.DeleteHandler(r.Context(), shoppingListID, req); err != nil {
		writeItemDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
