package shoppinglistitem

import (
	"log/slog"

	httpadapter "shoppinglist/contexts/shopping/item-service/adapters/http"
	"shoppinglist/contexts/shopping/item-service/application"
	"shoppinglist/contexts/shopping/item-service/ports"
)

// Module is the item-service composition root.
type Module struct {
	Service application.Service
	Handler httpadapter.Handler
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Lists      ports.ListStore
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Lists:  deps.Lists,
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
