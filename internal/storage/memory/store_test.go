package memory

import (
	"context"
	"testing"

	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/seed"
)

func TestResetReplacesDataset(t *testing.T) {
	store := NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset: %v", err)
	}

	users, err := store.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != len(fixture.Users) {
		t.Fatalf("expected %d users, got %d", len(fixture.Users), len(users))
	}

	admin, err := store.FindUserByEmail(context.Background(), seed.AdminEmail)
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if admin.RoleID == "" {
		t.Fatal("expected admin role id to be set")
	}
}

func TestFindUserByEmailUnknownAddress(t *testing.T) {
	store := NewStore()
	if err := store.Reset(context.Background(), seed.Dummy()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := store.FindUserByEmail(context.Background(), "nobody@example.com"); err != model.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPullAllowedUserIsIdempotent(t *testing.T) {
	store := NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset: %v", err)
	}

	list := fixture.Lists[0]
	target := list.AllowedUsers[0]
	for i := 0; i < 2; i++ {
		if err := store.PullAllowedUser(context.Background(), list.ID, target); err != nil {
			t.Fatalf("pull %d: %v", i, err)
		}
	}

	got, err := store.FindShoppingListByID(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	if model.HasID(got.AllowedUsers, target) {
		t.Fatal("expected allowed user to be removed")
	}
}

func TestFindShoppingListItemScopedToList(t *testing.T) {
	store := NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset: %v", err)
	}

	item := fixture.Items[0]
	if _, err := store.FindShoppingListItem(context.Background(), item.ShoppingListID, item.ID); err != nil {
		t.Fatalf("expected item in its own list, got %v", err)
	}

	other := fixture.Lists[len(fixture.Lists)-1]
	if other.ID == item.ShoppingListID {
		t.Fatal("fixture needs an unrelated list")
	}
	if _, err := store.FindShoppingListItem(context.Background(), other.ID, item.ID); err != model.ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign list, got %v", err)
	}
}

func TestClonesDoNotAliasStoredSlices(t *testing.T) {
	store := NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset: %v", err)
	}

	list := fixture.Lists[0]
	got, err := store.FindShoppingListByID(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	if len(got.AllowedUsers) == 0 {
		t.Fatal("fixture list needs allowed users")
	}
	got.AllowedUsers[0] = "mutated"

	again, err := store.FindShoppingListByID(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("find list again: %v", err)
	}
	if again.AllowedUsers[0] == "mutated" {
		t.Fatal("stored slice was aliased by the returned copy")
	}
}
