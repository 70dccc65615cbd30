package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"shoppinglist/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "shoppinglist/contexts/identity-access/authorization-service/domain/errors"
	"shoppinglist/contexts/identity-access/authorization-service/ports"
	"shoppinglist/internal/shared/model"
)

// Service evaluates per-route policy checks over a verified identity.
// It holds no state: every decision is recomputed from the store.
type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

// ResolveRole fetches a role by id or by name, preferring id. Exactly one
// reference is expected; with neither given the call fails outright.
func (s Service) ResolveRole(ctx context.Context, roleID string, roleName string) (model.Role, error) {
	roleID = strings.TrimSpace(roleID)
	roleName = strings.TrimSpace(roleName)

	switch {
	case roleID != "":
		role, err := s.Repo.FindRoleByID(ctx, roleID)
		if errors.Is(err, model.ErrNotFound) {
			return model.Role{}, domainerrors.ErrRoleNotFound
		}
		return role, err
	case roleName != "":
		role, err := s.Repo.FindRoleByName(ctx, roleName)
		if errors.Is(err, model.ErrNotFound) {
			return model.Role{}, domainerrors.ErrRoleNotFound
		}
		return role, err
	default:
		return model.Role{}, domainerrors.ErrRoleRefEmpty
	}
}

// ListRoles returns all seeded roles.
func (s Service) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.Repo.ListRoles(ctx)
}

// CheckAdmin succeeds iff the identity's role resolves to "admin".
func (s Service) CheckAdmin(ctx context.Context, identity entities.Identity) (entities.Decision, error) {
	role, err := s.ResolveRole(ctx, identity.RoleID, "")
	if err != nil {
		return s.deny(identity, "is_admin", err)
	}
	if role.Name != model.RoleAdmin {
		return s.deny(identity, "is_admin", nil)
	}
	return entities.DecisionAllowedAsAdmin, nil
}

// CheckOwnerOrAdmin resolves the role first: an admin passes with the
// elevated decision before any list lookup, so an admin is never blocked by
// a missing list. A non-admin passes when ownerUserID matches the identity,
// or when the referenced shopping list exists and is owned by the identity.
// A missing list is a denial, not a fault.
func (s Service) CheckOwnerOrAdmin(
	ctx context.Context,
	identity entities.Identity,
	ownerUserID string,
	ownerShoppingListID string,
) (entities.Decision, error) {
	role, err := s.ResolveRole(ctx, identity.RoleID, "")
	if err != nil {
		return s.deny(identity, "is_owner_or_admin", err)
	}
	if role.Name == model.RoleAdmin {
		return entities.DecisionAllowedAsAdmin, nil
	}

	if ownerUserID != "" && ownerUserID == identity.UserID {
		return entities.DecisionAllowed, nil
	}

	if ownerShoppingListID != "" {
		list, err := s.Repo.FindShoppingListByID(ctx, ownerShoppingListID)
		if err != nil {
			return s.deny(identity, "is_owner_or_admin", err)
		}
		if list.UserID == identity.UserID {
			return entities.DecisionAllowed, nil
		}
	}

	return s.deny(identity, "is_owner_or_admin", nil)
}

// CheckAllowed first applies owner-or-admin semantics on the list alone;
// failing that, the identity must appear in the list's allowedUsers set.
func (s Service) CheckAllowed(
	ctx context.Context,
	identity entities.Identity,
	shoppingListID string,
) (entities.Decision, error) {
	decision, err := s.CheckOwnerOrAdmin(ctx, identity, "", shoppingListID)
	if err == nil && decision.Granted() {
		return decision, nil
	}

	list, err := s.Repo.FindShoppingListByID(ctx, shoppingListID)
	if err != nil {
		return s.deny(identity, "is_allowed", err)
	}
	if model.HasID(list.AllowedUsers, identity.UserID) {
		return entities.DecisionAllowed, nil
	}
	return s.deny(identity, "is_allowed", nil)
}

// deny folds every failure path into NotAuthorized, as the boundary maps
// all check failures to 401. Lookup errors are logged, not surfaced.
func (s Service) deny(identity entities.Identity, check string, cause error) (entities.Decision, error) {
	logger := ResolveLogger(s.Logger)
	if cause != nil {
		logger.Warn("authorization check failed on lookup",
			"event", "authz_check_lookup_failed",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"check", check,
			"user_id", identity.UserID,
			"error", cause.Error(),
		)
	} else {
		logger.Debug("authorization check denied",
			"event", "authz_check_denied",
			"module", "identity-access/authorization-service",
			"layer", "application",
			"check", check,
			"user_id", identity.UserID,
		)
	}
	return entities.DecisionDenied, domainerrors.ErrNotAuthorized
}
