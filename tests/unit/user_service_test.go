package unit

import (
	"context"
	"errors"
	"testing"

	userapp "shoppinglist/contexts/identity-access/user-service/application"
	usererrors "shoppinglist/contexts/identity-access/user-service/domain/errors"
	userports "shoppinglist/contexts/identity-access/user-service/ports"
	"shoppinglist/internal/shared/model"
	"shoppinglist/internal/storage/seed"
)

func TestRegisterAssignsUserRole(t *testing.T) {
	m := newModules(t)

	err := m.Users.Service.Register(context.Background(), userapp.NewUser{
		FirstName: "Fresh",
		LastName:  "Account",
		Email:     "fresh@example.com",
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	stored, err := m.Store.FindUserByEmail(context.Background(), "fresh@example.com")
	if err != nil {
		t.Fatalf("find registered user: %v", err)
	}
	if stored.RoleID != m.Fixture.Roles[1].ID {
		t.Fatalf("expected the seeded user role, got %s", stored.RoleID)
	}
	if stored.Password == "secret" {
		t.Fatal("expected the password to be hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m := newModules(t)

	err := m.Users.Service.Register(context.Background(), userapp.NewUser{
		FirstName: "Dup",
		LastName:  "Account",
		Email:     seed.AdminEmail,
		Password:  "secret",
	})
	if !errors.Is(err, usererrors.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	m := newModules(t)

	err := m.Users.Service.Create(context.Background(), userapp.NewUser{
		FirstName: "Made",
		LastName:  "Account",
		Email:     "made@example.com",
		Password:  "secret",
		RoleID:    model.NewID(),
	})
	if !errors.Is(err, usererrors.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestListProjectionFlag(t *testing.T) {
	m := newModules(t)

	users, admin, err := m.Users.Service.List(context.Background(), m.Fixture.Users[0].RoleID)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if !admin {
		t.Fatal("expected the admin flag")
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].RoleID == "" {
		t.Fatal("expected role ids in the admin projection")
	}

	users, admin, err = m.Users.Service.List(context.Background(), m.Fixture.Users[1].RoleID)
	if err != nil {
		t.Fatalf("user list failed: %v", err)
	}
	if admin {
		t.Fatal("expected the non-admin flag")
	}
	for _, u := range users {
		if u.RoleID != "" || u.ShoppingLists != nil {
			t.Fatalf("expected stripped records for non-admins, got %+v", u)
		}
	}
}

func TestUpdateRoleChangeRequiresAdmin(t *testing.T) {
	m := newModules(t)
	simple := m.Fixture.Users[1]

	err := m.Users.Service.Update(context.Background(), simple.ID,
		userports.UserUpdate{RoleID: m.Fixture.Roles[0].ID}, false)
	if !errors.Is(err, usererrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}

	err = m.Users.Service.Update(context.Background(), simple.ID,
		userports.UserUpdate{RoleID: m.Fixture.Roles[0].ID}, true)
	if err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}

	stored, err := m.Store.FindUserByID(context.Background(), simple.ID)
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.RoleID != m.Fixture.Roles[0].ID {
		t.Fatalf("expected the new role id, got %s", stored.RoleID)
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	m := newModules(t)

	if _, err := m.Users.Service.Delete(context.Background(), model.NewID()); !errors.Is(err, usererrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserCascadeSteps(t *testing.T) {
	m := newModules(t)
	simple := m.Fixture.Users[1]
	list01 := m.Fixture.Lists[0]
	list03 := m.Fixture.Lists[2]

	result, err := m.Users.Service.Delete(context.Background(), simple.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !result.Clean() {
		t.Fatalf("expected a clean cascade, failed steps: %+v", result.Failed())
	}

	if _, err := m.Store.FindUserByID(context.Background(), simple.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected the user gone, got %v", err)
	}
	if _, err := m.Store.FindShoppingListByID(context.Background(), list03.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected the owned list gone, got %v", err)
	}
	items, err := m.Store.FindShoppingListItemsByList(context.Background(), list03.ID)
	if err != nil {
		t.Fatalf("find items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected the owned list's items gone, got %d", len(items))
	}

	shared, err := m.Store.FindShoppingListByID(context.Background(), list01.ID)
	if err != nil {
		t.Fatalf("find shared list: %v", err)
	}
	if model.HasID(shared.AllowedUsers, simple.ID) {
		t.Fatal("expected the deleted user pulled from the shared list's allow-list")
	}
}

func TestDeleteUserCascadeIsBestEffort(t *testing.T) {
	m := newModules(t)
	admin := m.Fixture.Users[0]

	// The admin references both owned lists through shoppingLists; deleting
	// the admin removes those lists, and the follow-up allow-list pulls hit
	// already-deleted lists without failing the cascade.
	result, err := m.Users.Service.Delete(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !result.Clean() {
		t.Fatalf("expected pulls on deleted lists to be clean no-ops, failed steps: %+v", result.Failed())
	}
}
