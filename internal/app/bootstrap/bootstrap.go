package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	auth "shoppinglist/contexts/identity-access/auth-service"
	authorization "shoppinglist/contexts/identity-access/authorization-service"
	user "shoppinglist/contexts/identity-access/user-service"
	shoppinglistitem "shoppinglist/contexts/shopping/item-service"
	shoppinglistmodule "shoppinglist/contexts/shopping/list-service"
	"shoppinglist/internal/platform/config"
	"shoppinglist/internal/platform/db"
	"shoppinglist/internal/platform/httpserver"
	mongostore "shoppinglist/internal/storage/mongo"
	"shoppinglist/internal/storage/seed"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server *httpserver.Server
	mongo  *db.Mongo
	logger *slog.Logger
}

// SeederApp wipes the store and loads the dummy fixture, then exits.
type SeederApp struct {
	store  *mongostore.Store
	mongo  *db.Mongo
	logger *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	mongo, err := db.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	store := mongostore.NewStore(mongo.Database)
	if err := store.EnsureBaseline(context.Background()); err != nil {
		_ = mongo.Close()
		return nil, err
	}

	authorizationModule := authorization.NewModule(authorization.Dependencies{
		Repository: store,
		Logger:     logger,
	})
	authModule := auth.NewModule(auth.Dependencies{
		Repository: store,
		Secret:     []byte(cfg.JWTSecret),
		TokenTTL:   cfg.JWTTTL,
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

	server := httpserver.New(
		authModule,
		authorizationModule,
		userModule,
		listModule,
		itemModule,
		store,
		cfg.Env,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server: server,
		mongo:  mongo,
		logger: logger,
	}, nil
}

func BuildSeeder() (*SeederApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "seeder")

	mongo, err := db.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	return &SeederApp{
		store:  mongostore.NewStore(mongo.Database),
		mongo:  mongo,
		logger: logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.mongo != nil {
		return a.mongo.Close()
	}
	return nil
}

func (s *SeederApp) Run(ctx context.Context) error {
	if err := s.store.Reset(ctx, seed.Dummy()); err != nil {
		return err
	}
	s.logger.Info("dummy data loaded",
		"event", "bootstrap_seed_completed",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return nil
}

func (s *SeederApp) Close() error {
	if s.mongo != nil {
		return s.mongo.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
