package application

import (
	"context"

	"shoppinglist/contexts/identity-access/user-service/domain/entities"
	"shoppinglist/internal/shared/model"
)

// runCascade performs the dependent-data cleanup after a user delete. All
// ids were captured from the user document before it was removed, so no
// step depends on the user still existing:
//
//  1. delete every shopping list the user owned, and the items each of
//     those lists referenced
//  2. pull the user from allowedUsers of every list id in the user's own
//     shoppingLists set (which may include lists owned by others)
//
// Steps run sequentially and independently. Failures are recorded and
// skipped over; re-running against already-deleted ids is a no-op.
func (s Service) runCascade(ctx context.Context, user model.User) entities.CascadeResult {
	var result entities.CascadeResult
	record := func(name string, target string, err error) {
		result.Steps = append(result.Steps, entities.CascadeStep{Name: name, Target: target, Err: err})
		if err != nil {
			ResolveLogger(s.Logger).Warn("cascade step failed",
				"event", "user_cascade_step_failed",
				"module", "identity-access/user-service",
				"layer", "application",
				"step", name,
				"target", target,
				"error", err.Error(),
			)
		}
	}

	owned, err := s.Cascade.FindShoppingListsByOwner(ctx, user.ID)
	record("find_owned_lists", user.ID, err)

	for _, list := range owned {
		record("delete_owned_list", list.ID, s.Cascade.DeleteShoppingList(ctx, list.ID))
		if len(list.ShoppingListItems) > 0 {
			record("delete_list_items", list.ID, s.Cascade.DeleteShoppingListItems(ctx, list.ShoppingListItems))
		}
	}

	for _, listID := range user.ShoppingLists {
		record("pull_allowed_user", listID, s.Cascade.PullAllowedUser(ctx, listID, user.ID))
	}

	return result
}
