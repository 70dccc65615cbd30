package auth

import (
	"log/slog"
	"time"

	httpadapter "shoppinglist/contexts/identity-access/auth-service/adapters/http"
	"shoppinglist/contexts/identity-access/auth-service/application"
	"shoppinglist/contexts/identity-access/auth-service/ports"
)

// Module is the auth-service composition root. Tokens holds the verifier
// used by the platform route guard on every protected request.
type Module struct {
	Tokens  application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Secret     []byte
	TokenTTL   time.Duration
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:     deps.Repository,
		Secret:   deps.Secret,
		TokenTTL: deps.TokenTTL,
		Logger:   deps.Logger,
	}
	return Module{
		Tokens: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
