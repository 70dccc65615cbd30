package user

import (
	"log/slog"

	httpadapter "shoppinglist/contexts/identity-access/user-service/adapters/http"
	"shoppinglist/contexts/identity-access/user-service/application"
	"shoppinglist/contexts/identity-access/user-service/ports"
)

// Module is the user-service composition root.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule. Roles is
// wired to the authorization-service's application service.
type Dependencies struct {
	Repository ports.Repository
	Cascade    ports.CascadeStore
	Roles      ports.RoleResolver
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:    deps.Repository,
		Cascade: deps.Cascade,
		Roles:   deps.Roles,
		Logger:  deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
