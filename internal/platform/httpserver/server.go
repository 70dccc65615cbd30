package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	auth "shoppinglist/contexts/identity-access/auth-service"
	authorization "shoppinglist/contexts/identity-access/authorization-service"
	user "shoppinglist/contexts/identity-access/user-service"
	shoppinglistitem "shoppinglist/contexts/shopping/item-service"
	shoppinglistmodule "shoppinglist/contexts/shopping/list-service"
	_ "shoppinglist/internal/platform/httpserver/docs"
	"shoppinglist/internal/storage/seed"
)

// SeedStore loads a fixture into the backing store. Only wired when the
// dummy-seed endpoint is enabled for the environment.
type SeedStore interface {
	Reset(ctx context.Context, fixture seed.Fixture) error
}

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	env    string

	auth          auth.Module
	authorization authorization.Module
	users         user.Module
	lists         shoppinglistmodule.Module
	items         shoppinglistitem.Module
	store         SeedStore
}

func New(
	authModule auth.Module,
	authorizationModule authorization.Module,
	userModule user.Module,
	listModule shoppinglistmodule.Module,
	itemModule shoppinglistitem.Module,
	store SeedStore,
	env string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		env:           env,
		auth:          authModule,
		authorization: authorizationModule,
		users:         userModule,
		lists:         listModule,
		items:         itemModule,
		store:         store,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler wraps the mux with the request-id middleware. Tests exercise it
// the same way the listener does.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set("X-Request-Id", requestID)
		}
		w.Header().Set("X-Request-Id", requestID)
		s.mux.ServeHTTP(w, r)
	})
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/login", s.handleLogin)

	s.mux.HandleFunc("POST /api/user/register", s.handleRegisterUser)
	s.mux.HandleFunc("POST /api/user/create", s.handleCreateUser)
	s.mux.HandleFunc("GET /api/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/user/{userId}", s.handleGetUser)
	s.mux.HandleFunc("PATCH /api/user/{userId}", s.handleUpdateUser)
	s.mux.HandleFunc("DELETE /api/user/{userId}", s.handleDeleteUser)

	s.mux.HandleFunc("GET /api/roles", s.handleListRoles)
	s.mux.HandleFunc("GET /api/role/{roleId}", s.handleGetRole)

	s.mux.HandleFunc("POST /api/shopping-list", s.handleCreateShoppingList)
	s.mux.HandleFunc("GET /api/shopping-lists", s.handleListShoppingLists)
	s.mux.HandleFunc("GET /api/shopping-lists/{userId}", s.handleListShoppingListsByOwner)
	s.mux.HandleFunc("GET /api/shopping-list/{shoppingListId}", s.handleGetShoppingList)
	s.mux.HandleFunc("PATCH /api/shopping-list/{shoppingListId}", s.handleUpdateShoppingList)
	s.mux.HandleFunc("DELETE /api/shopping-list/{shoppingListId}", s.handleDeleteShoppingList)
	s.mux.HandleFunc("POST /api/shopping-list/{shoppingListId}/add-user", s.handleAddAllowedUser)
	s.mux.HandleFunc("DELETE /api/shopping-list/{shoppingListId}/remove-user", s.handleRemoveAllowedUser)

	s.mux.HandleFunc("POST /api/shopping-list/{shoppingListId}/items", s.handleCreateItems)
	s.mux.HandleFunc("GET /api/shopping-list/{shoppingListId}/items", s.handleListItems)
	s.mux.HandleFunc("GET /api/shopping-list/{shoppingListId}/item/{itemId}", s.handleGetItem)
	s.mux.HandleFunc("PATCH /api/shopping-list/{shoppingListId}/item/{itemId}", s.handleUpdateItem)
	s.mux.HandleFunc("DELETE /api/shopping-list/{shoppingListId}/items", s.handleDeleteItems)

	s.mux.HandleFunc("POST /api/dummy-seed", s.handleDummySeed)
}

// messageResponse is the success body for write operations, matching the
// message shape error responses use.
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
