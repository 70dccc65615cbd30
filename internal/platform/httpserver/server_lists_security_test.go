package httpserver

import (
	"context"
	"net/http"
	"testing"

	"shoppinglist/internal/storage/seed"
)

func TestGetShoppingListAsAllowedUser(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	// test01 is admin-owned but has the caller on its allow-list.
	rr := doJSON(server, http.MethodGet, "/api/shopping-list/"+fixture.Lists[0].ID, token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetShoppingListAsUnrelatedUser(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	// test03 is owned by another user and has no allow-list entries.
	rr := doJSON(server, http.MethodGet, "/api/shopping-list/"+fixture.Lists[2].ID, token, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListAllShoppingListsRequiresAdmin(t *testing.T) {
	server, _, _ := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	rr := doJSON(server, http.MethodGet, "/api/shopping-lists", token, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateShoppingListDuplicateName(t *testing.T) {
	server, _, _ := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	rr := doJSON(server, http.MethodPost, "/api/shopping-list", token, `{"name":"test01"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateShoppingListAttachesToOwner(t *testing.T) {
	server, store, fixture := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	rr := doJSON(server, http.MethodPost, "/api/shopping-list", token, `{"name":"errands"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	owner, err := store.FindUserByID(context.Background(), fixture.Users[1].ID)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	if len(owner.ShoppingLists) != len(fixture.Users[1].ShoppingLists)+1 {
		t.Fatalf("expected the new list on the owner, got %v", owner.ShoppingLists)
	}
}

func TestRemoveAllowedUserIsIdempotent(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	body := `{"allowedUserId":"` + fixture.Users[2].ID + `"}`
	for i := 0; i < 2; i++ {
		rr := doJSON(server, http.MethodDelete, "/api/shopping-list/"+fixture.Lists[0].ID+"/remove-user", token, body)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("call %d: expected 204, got %d body=%s", i, rr.Code, rr.Body.String())
		}
	}
}

func TestAddAllowedUserRequiresOwnerOrAdmin(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	body := `{"userId":"` + fixture.Users[2].ID + `"}`
	rr := doJSON(server, http.MethodPost, "/api/shopping-list/"+fixture.Lists[2].ID+"/add-user", token, body)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAddAllowedUserGrantsAccess(t *testing.T) {
	server, _, fixture := newTestServer(t)
	ownerToken := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)
	otherToken := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	list := fixture.Lists[2]
	rr := doJSON(server, http.MethodGet, "/api/shopping-list/"+list.ID, otherToken, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before granting, got %d", rr.Code)
	}

	body := `{"userId":"` + fixture.Users[2].ID + `"}`
	rr = doJSON(server, http.MethodPost, "/api/shopping-list/"+list.ID+"/add-user", ownerToken, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(server, http.MethodGet, "/api/shopping-list/"+list.ID, otherToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after granting, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestDeleteShoppingListLeavesItemsBehind(t *testing.T) {
	server, store, fixture := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	before := store.CountItems()
	list := fixture.Lists[2]
	rr := doJSON(server, http.MethodDelete, "/api/shopping-list/"+list.ID, token, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	// List deletion detaches the list from its owner but does not touch the
	// item collection. The records stay behind, unlike the user-deletion
	// cascade.
	if got := store.CountItems(); got != before {
		t.Fatalf("expected item count to stay at %d, got %d", before, got)
	}

	owner, err := store.FindUserByID(context.Background(), fixture.Users[1].ID)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	for _, id := range owner.ShoppingLists {
		if id == list.ID {
			t.Fatal("expected the deleted list to be detached from its owner")
		}
	}
}
