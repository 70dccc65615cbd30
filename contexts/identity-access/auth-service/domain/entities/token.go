package entities

// TokenIdentity is the claim set a verified bearer token yields.
type TokenIdentity struct {
	UserID string
	RoleID string
}
