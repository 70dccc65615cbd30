package shoppinglist

import (
	"log/slog"

	httpadapter "shoppinglist/contexts/shopping/list-service/adapters/http"
	"shoppinglist/contexts/shopping/list-service/application"
	"shoppinglist/contexts/shopping/list-service/ports"
)

// Module is the list-service composition root.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Users      ports.UserStore
	Items      ports.ItemStore
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Users:  deps.Users,
		Items:  deps.Items,
		Logger: deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}
