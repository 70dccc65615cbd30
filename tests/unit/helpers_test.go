package unit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	auth "shoppinglist/contexts/identity-access/auth-service"
	authorization "shoppinglist/contexts/identity-access/authorization-service"
	authzentities "shoppinglist/contexts/identity-access/authorization-service/domain/entities"
	user "shoppinglist/contexts/identity-access/user-service"
	shoppinglistitem "shoppinglist/contexts/shopping/item-service"
	shoppinglistmodule "shoppinglist/contexts/shopping/list-service"
	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/memory"
	"shoppinglist/internal/storage/seed"
)

// modules bundles every composition root over one seeded memory store.
type modules struct {
	Store   *memory.Store
	Fixture seed.Fixture

	Auth  auth.Module
	Authz authorization.Module
	Users user.Module
	Lists shoppinglistmodule.Module
	Items shoppinglistitem.Module
}

func newModules(t *testing.T) modules {
	t.Helper()

	store := memory.NewStore()
	fixture := seed.Dummy()
	if err := store.Reset(context.Background(), fixture); err != nil {
		t.Fatalf("reset store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authz := authorization.NewModule(authorization.Dependencies{
		Repository: store,
		Logger:     logger,
	})
	return modules{
		Store:   store,
		Fixture: fixture,
		Auth: auth.NewModule(auth.Dependencies{
			Repository: store,
			Secret:     []byte("unit-test-secret"),
			Logger:     logger,
		}),
		Authz: authz,
		Users: user.NewModule(user.Dependencies{
			Repository: store,
			Cascade:    store,
			Roles:      authz.Checks,
			Logger:     logger,
		}),
		Lists: shoppinglistmodule.NewModule(shoppinglistmodule.Dependencies{
			Repository: store,
			Users:      store,
			Items:      store,
			Logger:     logger,
		}),
		Items: shoppinglistitem.NewModule(shoppinglistitem.Dependencies{
			Repository: store,
			Lists:      store,
			Logger:     logger,
		}),
	}
}

// Fixture identities by role in the seeded dataset.
func (m modules) admin() authzentities.Identity  { return identityOf(m.Fixture.Users[0]) }
func (m modules) simple() authzentities.Identity { return identityOf(m.Fixture.Users[1]) }
func (m modules) other() authzentities.Identity  { return identityOf(m.Fixture.Users[2]) }

func identityOf(u model.User) authzentities.Identity {
	return authzentities.Identity{UserID: u.ID, RoleID: u.RoleID}
}
