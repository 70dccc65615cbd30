package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"shoppinglist/contexts/identity-access/auth-service/domain/entities"
	domainerrors "shoppinglist/contexts/identity-access/auth-service/domain/errors"
	"shoppinglist/contexts/identity-access/auth-service/ports"
)

// Claims is the signed token payload: user id and role id, matching what
// the route guard needs to run policy checks without a user lookup.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies bearer tokens.
type Service struct {
	Repo     ports.Repository
	Secret   []byte
	TokenTTL time.Duration
	Logger   *slog.Logger
}

// Login checks the password for the given email and returns a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s Service) Login(ctx context.Context, email string, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", domainerrors.ErrInvalidRequest
	}

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		ResolveLogger(s.Logger).Debug("login rejected for unknown email",
			"event", "auth_login_unknown_email",
			"module", "identity-access/auth-service",
			"layer", "application",
			"email", email,
		)
		return "", domainerrors.ErrNotAuthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domainerrors.ErrNotAuthorized
	}

	now := time.Now().UTC()
	claims := Claims{
		ID:   user.ID,
		Role: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL())),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", err
	}

	ResolveLogger(s.Logger).Info("user logged in",
		"event", "auth_login_succeeded",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return token, nil
}

// Verify validates a bearer token and extracts the identity claims. The
// "Bearer " prefix is optional, as the source system accepted both shapes.
func (s Service) Verify(token string) (entities.TokenIdentity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return entities.TokenIdentity{}, domainerrors.ErrNotAuthorized
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return entities.TokenIdentity{}, domainerrors.ErrNotAuthorized
	}

	return entities.TokenIdentity{UserID: claims.ID, RoleID: claims.Role}, nil
}

func (s Service) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.TokenTTL
}

// HashPassword is the single place passwords are hashed, so user-service
// writes and seeded fixtures stay in agreement on the cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
