package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"shoppinglist/internal/storage/seed"
)

func TestListRolesRequiresAdmin(t *testing.T) {
	server, _, _ := newTestServer(t)
	token := loginAs(t, server, seed.SimpleEmail, seed.SimplePassword)

	rr := doJSON(server, http.MethodGet, "/api/roles", token, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListRolesAsAdmin(t *testing.T) {
	server, _, _ := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	rr := doJSON(server, http.MethodGet, "/api/roles", token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Roles []struct {
			Name string `json:"name"`
		} `json:"roles"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode roles: %v", err)
	}
	if len(resp.Roles) != 2 {
		t.Fatalf("expected 2 seeded roles, got %d", len(resp.Roles))
	}
}

func TestGetRoleAsAdmin(t *testing.T) {
	server, _, fixture := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	rr := doJSON(server, http.MethodGet, "/api/role/"+fixture.Roles[0].ID, token, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestGetRoleRejectsMalformedID(t *testing.T) {
	server, _, _ := newTestServer(t)
	token := loginAs(t, server, seed.AdminEmail, seed.AdminPassword)

	rr := doJSON(server, http.MethodGet, "/api/role/bogus", token, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
