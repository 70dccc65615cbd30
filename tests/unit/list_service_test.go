package unit

import (
	"context"
	"errors"
	"testing"

	listerrors "shoppinglist/contexts/shopping/list-service/domain/errors"
	listports "shoppinglist/contexts/shopping/list-service/ports"
	"shoppinglist/internal/shared/model"
)

func TestCreateListDuplicateName(t *testing.T) {
	m := newModules(t)
	simple := m.Fixture.Users[1]

	err := m.Lists.Service.Create(context.Background(), "test01", nil, simple.ID)
	if !errors.Is(err, listerrors.ErrListExists) {
		t.Fatalf("expected ErrListExists, got %v", err)
	}
}

func TestCreateListUnknownOwner(t *testing.T) {
	m := newModules(t)

	err := m.Lists.Service.Create(context.Background(), "orphaned", nil, model.NewID())
	if !errors.Is(err, listerrors.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestCreateListUnknownContributors(t *testing.T) {
	m := newModules(t)
	simple := m.Fixture.Users[1]

	err := m.Lists.Service.Create(context.Background(), "errands", []string{model.NewID()}, simple.ID)
	if !errors.Is(err, listerrors.ErrContributorsNotFound) {
		t.Fatalf("expected ErrContributorsNotFound, got %v", err)
	}
}

func TestGetListPopulates(t *testing.T) {
	m := newModules(t)
	list01 := m.Fixture.Lists[0]

	populated, err := m.Lists.Service.Get(context.Background(), list01.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(populated.Items) != 3 {
		t.Fatalf("expected 3 populated items, got %d", len(populated.Items))
	}
	if len(populated.AllowedUsers) != 2 {
		t.Fatalf("expected 2 populated allowed users, got %d", len(populated.AllowedUsers))
	}
}

func TestListAllEmptyStore(t *testing.T) {
	m := newModules(t)
	for _, list := range m.Fixture.Lists {
		if err := m.Store.DeleteShoppingList(context.Background(), list.ID); err != nil {
			t.Fatalf("clear lists: %v", err)
		}
	}

	if _, err := m.Lists.Service.ListAll(context.Background()); !errors.Is(err, listerrors.ErrNoShoppingLists) {
		t.Fatalf("expected ErrNoShoppingLists, got %v", err)
	}
}

func TestUpdateListReplacesAllowedUsers(t *testing.T) {
	m := newModules(t)
	list01 := m.Fixture.Lists[0]
	other := m.Fixture.Users[2]

	err := m.Lists.Service.Update(context.Background(), list01.ID, listports.ListUpdate{
		AllowedUsers: []string{other.ID},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := m.Store.FindShoppingListByID(context.Background(), list01.ID)
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	if len(stored.AllowedUsers) != 1 || stored.AllowedUsers[0] != other.ID {
		t.Fatalf("expected the allow-list replaced, got %v", stored.AllowedUsers)
	}
}

func TestRemoveAllowedUserTwice(t *testing.T) {
	m := newModules(t)
	list01 := m.Fixture.Lists[0]
	other := m.Fixture.Users[2]

	for i := 0; i < 2; i++ {
		if err := m.Lists.Service.RemoveAllowedUser(context.Background(), list01.ID, other.ID); err != nil {
			t.Fatalf("remove %d failed: %v", i, err)
		}
	}
}

func TestDeleteListKeepsItems(t *testing.T) {
	m := newModules(t)
	list03 := m.Fixture.Lists[2]
	simple := m.Fixture.Users[1]

	if err := m.Lists.Service.Delete(context.Background(), list03.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The list is gone and detached from its owner, but its item records
	// survive as orphans.
	if _, err := m.Store.FindShoppingListByID(context.Background(), list03.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected the list gone, got %v", err)
	}
	owner, err := m.Store.FindUserByID(context.Background(), simple.ID)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	if model.HasID(owner.ShoppingLists, list03.ID) {
		t.Fatal("expected the list detached from its owner")
	}
	items, err := m.Store.FindShoppingListItemsByList(context.Background(), list03.ID)
	if err != nil {
		t.Fatalf("find items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the orphaned item to survive, got %d items", len(items))
	}
}
