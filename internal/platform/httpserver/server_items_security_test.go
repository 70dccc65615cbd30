package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/seed"
)

func TestCreateItemsAsAllowedUser(t *testing.T) {
	server, store, fixture := newTestServer(t)
	token := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	list := fixture.Lists[0]
	body := `{"items":[{"name":"oat milk","status":false},{"name":"coffee beans","status":true}]}`
	rr := doJSON(server, http.MethodPost, "/api/shopping-list/"+list.ID+"/items", token, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	got, err := store.FindShoppingListByID(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	if len(got.ShoppingListItems) != len(list.ShoppingListItems)+2 {
		t.Fatalf("expected the new item ids on the list, got %v", got.ShoppingListItems)
	}
}

func TestCreateItemsRequiresAccess(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.OtherEmail, seed.OtherPassword)

	body := `{"items":[{"name":"oat milk","status":false}]}`
	rr := doJSON(server, http.MethodPost, "/api/shopping-list/"+fixture.Lists[2].ID+"/items", token, body)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateItemsRequiresStatus(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	body := `{"items":[{"name":"oat milk"}]}`
	rr := doJSON(server, http.MethodPost, "/api/shopping-list/"+fixture.Lists[0].ID+"/items", token, body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListItems(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	rr := doJSON(server, http.MethodGet, "/api/shopping-list/"+fixture.Lists[0].ID+"/items", token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 seeded items, got %d", len(resp.Items))
	}
}

func TestGetItemAcrossLists(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	// Item lives on test02; asking for it under test01 is a miss.
	item := fixture.Items[3]
	rr := doJSON(server, http.MethodGet, "/api/shopping-list/"+fixture.Lists[0].ID+"/item/"+item.ID, token, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateItemStatus(t *testing.T) {
	server, store, fixture := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	item := fixture.Items[0]
	rr := doJSON(server, http.MethodPatch,
		"/api/shopping-list/"+item.ShoppingListID+"/item/"+item.ID, token, `{"status":true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	got, err := store.FindShoppingListItem(context.Background(), item.ShoppingListID, item.ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if !got.Status {
		t.Fatal("expected status to flip to true")
	}
}

func TestDeleteItemsPullsFromList(t *testing.T) {
	server, store, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	list := fixture.Lists[0]
	victims := []string{fixture.Items[0].ID, fixture.Items[1].ID}
	body := `{"ids":["` + victims[0] + `","` + victims[1] + `"]}`
	rr := doJSON(server, http.MethodDelete, "/api/shopping-list/"+list.ID+"/items", token, body)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}

	got, err := store.FindShoppingListByID(context.Background(), list.ID)
	if err != nil {
		t.Fatalf("find list: %v", err)
	}
	for _, id := range victims {
		if model.HasID(got.ShoppingListItems, id) {
			t.Fatalf("expected item %s to be pulled from the list", id)
		}
	}
	if _, err := store.FindShoppingListItem(context.Background(), list.ID, victims[0]); err != model.ErrNotFound {
		t.Fatalf("expected the item record to be deleted, got %v", err)
	}
}

func TestDeleteUnknownItems(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	body := `{"ids":["` + model.NewID() + `"]}`
	rr := doJSON(server, http.MethodDelete, "/api/shopping-list/"+fixture.Lists[0].ID+"/items", token, body)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
