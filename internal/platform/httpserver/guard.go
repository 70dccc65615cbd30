package httpserver

import (
	"net/http"

	authzentities "shoppinglist/contexts/identity-access/authorization-service/domain/entities"
)

// actor is the authenticated caller attached to a guarded request.
type actor struct {
	identity authzentities.Identity
	admin    bool
}

// authenticate resolves the bearer token into an identity. Every guarded
// route starts here; a missing or bad token is a 401 regardless of the
// authorization mode behind it.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (authzentities.Identity, bool) {
	token := r.Header.Get("Authorization")
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "not authorized")
		return authzentities.Identity{}, false
	}

	tokenIdentity, err := s.auth.Tokens.Verify(token)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "not authorized")
		return authzentities.Identity{}, false
	}

	return authzentities.Identity{
		UserID: tokenIdentity.UserID,
		RoleID: tokenIdentity.RoleID,
	}, true
}

// requireCurrentUser gates routes that only need a valid token.
func (s *Server) requireCurrentUser(w http.ResponseWriter, r *http.Request) (actor, bool) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return actor{}, false
	}

	decision, err := s.authorization.Checks.CheckAdmin(r.Context(), identity)
	if err != nil {
		// Non-admins are still current users; only a failed role lookup
		// with no granted decision means the token references a dead role.
		return actor{identity: identity}, true
	}
	return actor{identity: identity, admin: decision.Admin()}, true
}

// requireAdmin gates admin-only routes.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (actor, bool) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return actor{}, false
	}

	decision, err := s.authorization.Checks.CheckAdmin(r.Context(), identity)
	if err != nil || !decision.Granted() {
		writeMessage(w, http.StatusUnauthorized, "not authorized")
		return actor{}, false
	}
	return actor{identity: identity, admin: true}, true
}

// requireOwnerOrAdmin gates routes where the caller must own the target
// resource or be an admin. Exactly one of ownerUserID / shoppingListID is
// set, depending on which path parameter identifies the owner.
func (s *Server) requireOwnerOrAdmin(
	w http.ResponseWriter,
	r *http.Request,
	ownerUserID string,
	shoppingListID string,
) (actor, bool) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return actor{}, false
	}

	decision, err := s.authorization.Checks.CheckOwnerOrAdmin(r.Context(), identity, ownerUserID, shoppingListID)
	if err != nil || !decision.Granted() {
		writeMessage(w, http.StatusUnauthorized, "not authorized")
		return actor{}, false
	}
	return actor{identity: identity, admin: decision.Admin()}, true
}

// requireAllowed gates list-scoped routes open to the owner, admins and
// users on the list's allow-list.
func (s *Server) requireAllowed(w http.ResponseWriter, r *http.Request, shoppingListID string) (actor, bool) {
	identity, ok := s.authenticate(w, r)
	if !ok {
		return actor{}, false
	}

	decision, err := s.authorization.Checks.CheckAllowed(r.Context(), identity, shoppingListID)
	if err != nil || !decision.Granted() {
		writeMessage(w, http.StatusUnauthorized, "not authorized")
		return actor{}, false
	}
	return actor{identity: identity, admin: decision.Admin()}, true
}
