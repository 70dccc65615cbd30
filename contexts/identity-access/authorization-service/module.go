package authorization

import (
	"log/slog"

	httpadapter "shoppinglist/contexts/identity-access/authorization-service/adapters/http"
	"shoppinglist/contexts/identity-access/authorization-service/application"
	"shoppinglist/contexts/identity-access/authorization-service/ports"
)

// Module is the authorization-service composition root exposed to runtime
// wiring. Checks holds the policy service the platform route guard calls.
type Module struct {
	Checks  application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

// NewModule wires the policy checks and the role transport handler.
func NewModule(deps Dependencies) Module {
	checks := application.Service{
		Repo:   deps.Repository,
		Logger: deps.Logger,
	}
	return Module{
		Checks: checks,
		Handler: httpadapter.Handler{
			Service: checks,
			Logger:  deps.Logger,
		},
	}
}
