package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	auth "shoppinglist/contexts/identity-access/auth-service"
	authorization "shoppinglist/contexts/identity-access/authorization-service"
	user "shoppinglist/contexts/identity-access/user-service"
	shoppinglistitem "shoppinglist/contexts/shopping/item-service"
	shoppinglistmodule "shoppinglist/contexts/shopping/list-service"
	"shoppinglist/internal/storage/memory"
	"shoppinglist/internal/storage/seed"
)

func newTestServer(t *testing.T) (*Server, *memory.Store, seed.Fixture) {
	t.Helper()

	store := memory.NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authorizationModule := authorization.NewModule(authorization.Dependencies{
		Repository: store,
		Logger:     logger,
	})
	authModule := auth.NewModule(auth.Dependencies{
		Repository: store,
		Secret:     []byte("test-secret"),
		Logger:     logger,
	})
	userModule := user.NewModule(user.Dependencies{
		Repository: store,
		Cascade:    store,
		Roles:      authorizationModule.Checks,
		Logger:     logger,
	})
	listModule := shoppinglistmodule.NewModule(shoppinglistmodule.Dependencies{
		Repository: store,
		Users:      store,
		Items:      store,
		Logger:     logger,
	})
	itemModule := shoppinglistitem.NewModule(shoppinglistitem.Dependencies{
		Repository: store,
		Lists:      store,
		Logger:     logger,
	})

	server := New(
		authModule,
		authorizationModule,
		userModule,
		listModule,
		itemModule,
		store,
		"test",
		logger,
		":0",
	)
	return server, store, fixture
}

func loginAs(t *testing.T, server *Server, email string, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login as %s: expected 200, got %d body=%s", email, rr.Code, rr.Body.String())
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Response == "" {
		t.Fatal("expected a token in the login response")
	}
	return resp.Response
}

func doJSON(server *Server, method string, path string, token string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}
