package unit

import (
	"context"
	"errors"
	"testing"

	autherrors "shoppinglist/contexts/identity-access/auth-service/domain/errors"
	"shoppinglist/internal/storage/seed"
)

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	m := newModules(t)

	token, err := m.Auth.Tokens.Login(context.Background(), seed.SimpleEmail, seed.SimplePassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	identity, err := m.Auth.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	simple := m.Fixture.Users[1]
	if identity.UserID != simple.ID {
		t.Fatalf("expected user id %s, got %s", simple.ID, identity.UserID)
	}
	if identity.RoleID != simple.RoleID {
		t.Fatalf("expected role id %s, got %s", simple.RoleID, identity.RoleID)
	}
}

func TestVerifyAcceptsOptionalBearerPrefix(t *testing.T) {
	m := newModules(t)

	token, err := m.Auth.Tokens.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := m.Auth.Tokens.Verify("Bearer " + token); err != nil {
		t.Fatalf("verify with prefix failed: %v", err)
	}
	if _, err := m.Auth.Tokens.Verify(token); err != nil {
		t.Fatalf("verify without prefix failed: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	m := newModules(t)

	if _, err := m.Auth.Tokens.Login(context.Background(), seed.SimpleEmail, "nope"); !errors.Is(err, autherrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newModules(t)

	token, err := m.Auth.Tokens.Login(context.Background(), seed.AdminEmail, seed.AdminPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Auth.Tokens.Verify(tampered); !errors.Is(err, autherrors.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for a tampered token, got %v", err)
	}
}
